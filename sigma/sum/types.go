// Package sum implements the sum-relation Sigma protocol, a
// generalisation of the linear-relation proof: for public scalars
// g_0,...,g_{V-1}, the prover knows openings of x_0,...,x_{V-1} and also
// an opening of x' = sum(g_i * x_i).
package sum

import (
	"bdlop-commitments/commitment"
	"bdlop-commitments/rq"
)

// Commitment is the first message, {c', {c_i}, gs, t', {t_i}, u}.
type Commitment struct {
	Cp commitment.Commitment
	Cs []commitment.Commitment
	Gs []rq.Elt
	Tp []rq.Elt
	Ts [][]rq.Elt
	U  rq.Mat
}

// ResponseContext is the prover's private state between Commit and
// CreateResponse. Single-use; discard after the run.
type ResponseContext struct {
	Openings []commitment.Opening
	OpeningP commitment.Opening
	Ys       []rq.Mat
	Yp       rq.Mat
}

// Response is the third message, {zs, z'}.
type Response struct {
	Zs []rq.Mat
	Zp rq.Mat
}

// VerificationContext is the verifier's private state between
// GenerateChallenge and Verify. Single-use; discard after the run.
type VerificationContext struct {
	C1s []rq.Mat
	C2s []rq.Mat
	C1p rq.Mat
	C2p rq.Mat
	Gs  []rq.Elt
	Ts  [][]rq.Elt
	Tp  []rq.Elt
	U   rq.Mat
	D   rq.Elt
}
