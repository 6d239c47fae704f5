// Package challenge implements sampling from the challenge space C and
// its difference set Cbar, shared by all three Sigma protocols'
// verifiers.
package challenge

import (
	"bdlop-commitments/entropy"
	"bdlop-commitments/params"
	"bdlop-commitments/rq"
	"bdlop-commitments/sampler"
)

// Challenge is the verifier's random coin d, drawn from
// C = {c in R_q : ||c||_inf = 1, ||c||_1 = kappa}.
type Challenge struct {
	D rq.Elt
}

// Sample draws a fresh challenge from C.
func Sample(src *entropy.Source, p *params.Params, r *rq.Ring) Challenge {
	return Challenge{D: sampler.ChallengeSet(src, r, p.Kappa)}
}

// Difference draws a fresh element of
// Cbar = {c - c' : c, c' in C, c != c'}. Every element of Cbar is
// invertible in R_q (a theorem of the scheme, relied upon but not
// re-verified). The three protocols' happy paths never need it; it backs
// f-randomized openings.
func Difference(src *entropy.Source, p *params.Params, r *rq.Ring) rq.Elt {
	return sampler.ChallengeDifference(src, r, p.Kappa)
}
