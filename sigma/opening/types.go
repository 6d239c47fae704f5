// Package opening implements the proof-of-opening Sigma protocol: the
// prover knows (x, r) such that a commitment c opens to x, and proves it
// in three messages (commit, challenge, response) without revealing x
// or r.
package opening

import (
	"bdlop-commitments/commitment"
	"bdlop-commitments/rq"
)

// Commitment is the first message, {c, t}, sent to the verifier.
type Commitment struct {
	C commitment.Commitment
	T []rq.Elt
}

// ResponseContext is the prover's private state between Commit and
// CreateResponse: it owns the opening and the masking randomness y.
// Single-use; discard after the run.
type ResponseContext struct {
	Opening commitment.Opening
	Y       rq.Mat
}

// Response is the third message, {z}.
type Response struct {
	Z rq.Mat
}

// VerificationContext is the verifier's private state between
// GenerateChallenge and Verify: c1, t and the sampled challenge d.
// Single-use; discard after the run.
type VerificationContext struct {
	C1 rq.Mat
	T  []rq.Elt
	D  rq.Elt
}
