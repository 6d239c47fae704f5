// Package norms implements the 1-norm, 2-norm, and infinity-norm over
// ring-element coefficients. norm_2 widens the squared-sum intermediate
// to a big.Int: 32-bit-class coefficients squared and summed over N up to
// ~2048 overflow a 64-bit accumulator.
package norms

import (
	"math/big"

	"bdlop-commitments/rq"
)

// Norm1 returns sum(|p_i|).
func Norm1(r *rq.Ring, e rq.Elt) int64 {
	var sum int64
	for _, c := range r.Coeffs(e) {
		sum += abs64(c)
	}
	return sum
}

// NormInf returns max(|p_i|).
func NormInf(r *rq.Ring, e rq.Elt) int64 {
	var max int64
	for _, c := range r.Coeffs(e) {
		if a := abs64(c); a > max {
			max = a
		}
	}
	return max
}

// Norm2 returns floor(sqrt(sum(p_i^2))).
func Norm2(r *rq.Ring, e rq.Elt) int64 {
	sum := new(big.Int)
	term := new(big.Int)
	for _, c := range r.Coeffs(e) {
		term.SetInt64(c)
		term.Mul(term, term)
		sum.Add(sum, term)
	}
	return new(big.Int).Sqrt(sum).Int64()
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
