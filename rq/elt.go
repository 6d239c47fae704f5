package rq

import "github.com/tuneinsight/lattigo/v4/ring"

// Elt is a single element of R_q, stored permanently in NTT domain so
// that Ring.Mul is a cheap pointwise product for its whole lifetime.
// Coefficient-domain views are produced on demand by Ring.Coeffs.
//
// Elt is a value type: copying it copies the reference to an immutable
// underlying polynomial, never aliasing across Ring operations (every
// Ring method allocates a fresh output polynomial).
type Elt struct {
	ring *Ring
	poly *ring.Poly
}
