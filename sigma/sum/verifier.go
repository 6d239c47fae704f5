package sum

import (
	"bdlop-commitments/challenge"
	"bdlop-commitments/commitment"
	"bdlop-commitments/entropy"
	"bdlop-commitments/params"
	"bdlop-commitments/rq"
)

// Verifier holds the state shared across proof runs.
type Verifier struct {
	Src    *entropy.Source
	Params *params.Params
	Ring   *rq.Ring
	Key    commitment.Key
}

// NewVerifier builds a Verifier sharing the same commitment key as its
// prover counterpart.
func NewVerifier(src *entropy.Source, p *params.Params, r *rq.Ring, key commitment.Key) *Verifier {
	return &Verifier{Src: src, Params: p, Ring: r, Key: key}
}

// GenerateChallenge splits every c_i and c' at row Nrows, samples d, and
// carries gs, ts, t', u forward.
func (v *Verifier) GenerateChallenge(c Commitment) (VerificationContext, challenge.Challenge) {
	c1s := make([]rq.Mat, len(c.Cs))
	c2s := make([]rq.Mat, len(c.Cs))
	for i, ci := range c.Cs {
		c1s[i], c2s[i] = ci.Split(v.Params)
	}
	c1p, c2p := c.Cp.Split(v.Params)
	ch := challenge.Sample(v.Src, v.Params, v.Ring)
	return VerificationContext{
		C1s: c1s, C2s: c2s, C1p: c1p, C2p: c2p,
		Gs: c.Gs, Ts: c.Ts, Tp: c.Tp, U: c.U, D: ch.D,
	}, ch
}

// Verify checks the norm bounds on every z_i and z', the per-index
// equations A1*z_i == t_i + c1_i*d and A1*z' == t' + c1'*d, and the
// aggregate equation
// sum(g_i*(A2*z_i)) - A2*z' == (sum(g_i*c2_i) - c2')*d + u.
// The count check rejects if |zs| disagrees with either |ts| or |cs|
// (|cs| is taken as len(ctx.C1s), derived one-to-one from the c_i).
func (v *Verifier) Verify(resp Response, ctx VerificationContext) bool {
	if len(resp.Zs) != len(ctx.Ts) || len(resp.Zs) != len(ctx.C1s) {
		return false
	}

	for _, z := range resp.Zs {
		if !commitment.VerifyConstraintHolds(v.Params, v.Ring, z) {
			return false
		}
	}
	if !commitment.VerifyConstraintHolds(v.Params, v.Ring, resp.Zp) {
		return false
	}

	for i := range resp.Zs {
		lhs := v.Key.A1.Dot(resp.Zs[i])
		rhs := v.Ring.MatFromVec(ctx.Ts[i]).Add(ctx.C1s[i].ComponentwiseMul(ctx.D))
		if !lhs.Equal(rhs) {
			return false
		}
	}

	lhsP := v.Key.A1.Dot(resp.Zp)
	rhsP := v.Ring.MatFromVec(ctx.Tp).Add(ctx.C1p.ComponentwiseMul(ctx.D))
	if !lhsP.Equal(rhsP) {
		return false
	}

	l := v.Params.L
	lhsAcc := v.Ring.NewMatWith(l, 1, func(i, j int) rq.Elt { return v.Ring.Zero() })
	rhsAcc := v.Ring.NewMatWith(l, 1, func(i, j int) rq.Elt { return v.Ring.Zero() })
	for i := range resp.Zs {
		lhsAcc = lhsAcc.Add(v.Key.A2.Dot(resp.Zs[i]).ComponentwiseMul(ctx.Gs[i]))
		rhsAcc = rhsAcc.Add(ctx.C2s[i].ComponentwiseMul(ctx.Gs[i]))
	}
	lhs := lhsAcc.Sub(v.Key.A2.Dot(resp.Zp))
	rhs := rhsAcc.Sub(ctx.C2p).ComponentwiseMul(ctx.D).Add(ctx.U)
	return lhs.Equal(rhs)
}
