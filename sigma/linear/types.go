// Package linear implements the linear-relation Sigma protocol: the
// prover knows openings of c (to x) and c' (to x') such that x' = g*x
// for a public scalar g.
package linear

import (
	"bdlop-commitments/commitment"
	"bdlop-commitments/rq"
)

// Commitment is the first message, {c, c', g, t, t', u}.
type Commitment struct {
	C  commitment.Commitment
	Cp commitment.Commitment
	G  rq.Elt
	T  []rq.Elt
	Tp []rq.Elt
	U  rq.Mat
}

// ResponseContext is the prover's private state between Commit and
// CreateResponse. Single-use; discard after the run.
type ResponseContext struct {
	Opening  commitment.Opening
	OpeningP commitment.Opening
	Y        rq.Mat
	Yp       rq.Mat
}

// Response is the third message, {z, z'}.
type Response struct {
	Z  rq.Mat
	Zp rq.Mat
}

// VerificationContext is the verifier's private state between
// GenerateChallenge and Verify. Single-use; discard after the run.
type VerificationContext struct {
	C1  rq.Mat
	C2  rq.Mat
	C1p rq.Mat
	C2p rq.Mat
	G   rq.Elt
	T   []rq.Elt
	Tp  []rq.Elt
	U   rq.Mat
	D   rq.Elt
}
