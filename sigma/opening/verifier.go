package opening

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

// GenerateChallenge splits c at row Nrows, samples a fresh challenge d
// from C, and carries (c1, t, d) forward.
func (v *Verifier) GenerateChallenge(c Commitment) (VerificationContext, challenge.Challenge) {
	c1, _ := c.C.Split(v.Params)
	ch := challenge.Sample(v.Src, v.Params, v.Ring)
	return VerificationContext{C1: c1, T: c.T, D: ch.D}, ch
}

// Verify rejects if z exceeds the response norm bound, otherwise checks
// A1*z == t + c1*d.
func (v *Verifier) Verify(resp Response, ctx VerificationContext) bool {
	if !commitment.VerifyConstraintHolds(v.Params, v.Ring, resp.Z) {
		return false
	}
	lhs := v.Key.A1.Dot(resp.Z)
	rhs := v.Ring.MatFromVec(ctx.T).Add(ctx.C1.ComponentwiseMul(ctx.D))
	return lhs.Equal(rhs)
}
