package sampler

import (
	"bdlop-commitments/entropy"
	"bdlop-commitments/rq"
)

// ChallengeSet draws a ring element with exactly kappa coefficients set to
// +-1 (a fair coin chooses each sign) at randomly permuted positions, and
// every other coefficient zero. Guarantees norm_1 == kappa and
// norm_inf == 1.
func ChallengeSet(src *entropy.Source, r *rq.Ring, kappa int) rq.Elt {
	n := r.N()
	if kappa < 0 || kappa > n {
		panic("sampler: ChallengeSet requires 0 <= kappa <= N")
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	src.Shuffle(n, func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	coeffs := make([]int64, n)
	for i := 0; i < kappa; i++ {
		sign := int64(1)
		if !src.SampleBool() {
			sign = -1
		}
		coeffs[positions[i]] = sign
	}
	return r.FromCoeffs(coeffs)
}

// ChallengeDifference samples two ChallengeSet draws until they differ
// and returns their difference: every coefficient lies in [-2, 2] and the
// result is non-zero. Invertibility in R_q is a theorem of the scheme,
// relied upon here without re-verification.
func ChallengeDifference(src *entropy.Source, r *rq.Ring, kappa int) rq.Elt {
	for {
		c1 := ChallengeSet(src, r, kappa)
		c2 := ChallengeSet(src, r, kappa)
		if r.Equal(c1, c2) {
			continue
		}
		return r.Sub(c1, c2)
	}
}
