package linear

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

// GenerateChallenge splits both c and c' at row Nrows, samples d, and
// carries g, t, t', u forward.
func (v *Verifier) GenerateChallenge(c Commitment) (VerificationContext, challenge.Challenge) {
	c1, c2 := c.C.Split(v.Params)
	c1p, c2p := c.Cp.Split(v.Params)
	ch := challenge.Sample(v.Src, v.Params, v.Ring)
	return VerificationContext{
		C1: c1, C2: c2, C1p: c1p, C2p: c2p,
		G: c.G, T: c.T, Tp: c.Tp, U: c.U, D: ch.D,
	}, ch
}

// Verify checks the norm bounds on z and z', then the three equations
// A1*z == t + c1*d, A1*z' == t' + c1'*d, and
// g*(A2*z) - A2*z' == (g*c2 - c2')*d + u. All must hold.
func (v *Verifier) Verify(resp Response, ctx VerificationContext) bool {
	if !commitment.VerifyConstraintHolds(v.Params, v.Ring, resp.Z) {
		return false
	}
	if !commitment.VerifyConstraintHolds(v.Params, v.Ring, resp.Zp) {
		return false
	}

	lhs1 := v.Key.A1.Dot(resp.Z)
	rhs1 := v.Ring.MatFromVec(ctx.T).Add(ctx.C1.ComponentwiseMul(ctx.D))
	if !lhs1.Equal(rhs1) {
		return false
	}

	lhs2 := v.Key.A1.Dot(resp.Zp)
	rhs2 := v.Ring.MatFromVec(ctx.Tp).Add(ctx.C1p.ComponentwiseMul(ctx.D))
	if !lhs2.Equal(rhs2) {
		return false
	}

	lhs3 := v.Key.A2.Dot(resp.Z).ComponentwiseMul(ctx.G).Sub(v.Key.A2.Dot(resp.Zp))
	rhs3 := ctx.C2.ComponentwiseMul(ctx.G).Sub(ctx.C2p).ComponentwiseMul(ctx.D).Add(ctx.U)
	return lhs3.Equal(rhs3)
}
