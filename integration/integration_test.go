// Package integration exercises all three Sigma protocols together
// against a shared commitment key and entropy source, the way a real
// caller would use this module.
package integration

import (
	"math/big"
	"testing"

	"bdlop-commitments/commitment"
	"bdlop-commitments/entropy"
	"bdlop-commitments/params"
	"bdlop-commitments/rq"
	"bdlop-commitments/sigma/linear"
	"bdlop-commitments/sigma/opening"
	"bdlop-commitments/sigma/sum"
)

// TestHundredRandomIterations runs 100 iterations with varying x, g and
// gs over a small ring; every opening, linear, and sum proof must verify.
func TestHundredRandomIterations(t *testing.T) {
	src, err := entropy.New()
	if err != nil {
		t.Fatalf("entropy.New: %v", err)
	}
	p, err := params.New(big.NewInt(12289), 1, 1, 3, 1, 4, 16)
	if err != nil {
		t.Fatalf("params.New: %v", err)
	}
	r, err := p.Ring()
	if err != nil {
		t.Fatalf("Ring: %v", err)
	}
	key := commitment.GenerateKey(src, p, r)

	openProver := opening.NewProver(src, p, r, key)
	openVerifier := opening.NewVerifier(src, p, r, key)
	linProver := linear.NewProver(src, p, r, key)
	linVerifier := linear.NewVerifier(src, p, r, key)
	sumProver := sum.NewProver(src, p, r, key)
	sumVerifier := sum.NewVerifier(src, p, r, key)

	for iter := 0; iter < 100; iter++ {
		base := int64(iter%7 + 1)
		x := []rq.Elt{r.FromCoeffs([]int64{base, base + 1, base + 2, base + 3})}
		g := r.FromCoeffs([]int64{base + 4, base + 5})

		octx, ocomm, err := openProver.Commit(x)
		if err != nil {
			t.Fatalf("iter %d: open commit: %v", iter, err)
		}
		ovctx, och := openVerifier.GenerateChallenge(ocomm)
		oresp := openProver.CreateResponse(octx, och.D)
		if !openVerifier.Verify(oresp, ovctx) {
			t.Fatalf("iter %d: open proof failed to verify", iter)
		}

		lctx, lcomm, err := linProver.Commit(g, x)
		if err != nil {
			t.Fatalf("iter %d: linear commit: %v", iter, err)
		}
		lvctx, lch := linVerifier.GenerateChallenge(lcomm)
		lresp := linProver.CreateResponse(lctx, lch.D)
		if !linVerifier.Verify(lresp, lvctx) {
			t.Fatalf("iter %d: linear proof failed to verify", iter)
		}

		xs := [][]rq.Elt{
			{r.FromCoeffs([]int64{base, base + 1, base + 2, base + 3})},
			{r.FromCoeffs([]int64{base + 6, base + 7, base + 8, base + 9})},
		}
		gs := []rq.Elt{r.FromCoeffs([]int64{base}), r.FromCoeffs([]int64{base + 1})}
		sctx, scomm, err := sumProver.Commit(gs, xs)
		if err != nil {
			t.Fatalf("iter %d: sum commit: %v", iter, err)
		}
		svctx, sch := sumVerifier.GenerateChallenge(scomm)
		sresp := sumProver.CreateResponse(sctx, sch.D)
		if !sumVerifier.Verify(sresp, svctx) {
			t.Fatalf("iter %d: sum proof failed to verify", iter)
		}
	}
}
