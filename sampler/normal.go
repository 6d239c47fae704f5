package sampler

import (
	"math"

	"bdlop-commitments/entropy"
	"bdlop-commitments/rq"
)

// smallestPositive guards the Box-Muller log() against a zero draw.
const smallestPositive = 1e-300

// Normal draws a ring element whose N coefficients are i.i.d. samples
// from the continuous Gaussian N(mean, stdDev^2), rounded to the nearest
// integer. The proofs always call this with mean=0, stdDev=sigma.
func Normal(src *entropy.Source, r *rq.Ring, mean, stdDev float64) rq.Elt {
	coeffs := make([]int64, r.N())
	for i := range coeffs {
		coeffs[i] = roundToInt(mean + stdDev*standardNormal(src))
	}
	return r.FromCoeffs(coeffs)
}

// standardNormal returns one N(0,1) sample via the Box-Muller transform,
// driven entirely by the entropy Source so that every sampler in this
// package draws from the one stream and keyed runs reproduce exactly.
func standardNormal(src *entropy.Source) float64 {
	u1 := src.Float64()
	if u1 <= 0 {
		u1 = smallestPositive
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func roundToInt(v float64) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return int64(v - 0.5)
}
