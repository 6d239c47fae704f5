// Package sampler implements the random samplers used by the commitment
// scheme and its proofs: uniform bounded, rounded-normal, and the sparse
// ±1 challenge-set sampler with its difference set.
package sampler

import (
	"bdlop-commitments/entropy"
	"bdlop-commitments/rq"
)

// UniformBounded draws a ring element whose N coefficients are i.i.d.
// uniform on the inclusive integer range [-bound, bound].
func UniformBounded(src *entropy.Source, r *rq.Ring, bound int64) rq.Elt {
	if bound < 0 {
		panic("sampler: UniformBounded requires bound >= 0")
	}
	coeffs := make([]int64, r.N())
	for i := range coeffs {
		coeffs[i] = src.SampleUniform(-bound, bound)
	}
	return r.FromCoeffs(coeffs)
}
