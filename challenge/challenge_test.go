package challenge

import (
	"math/big"
	"testing"

	"bdlop-commitments/entropy"
	"bdlop-commitments/norms"
	"bdlop-commitments/params"
)

func testParams(t *testing.T) *params.Params {
	t.Helper()
	p, err := params.New(big.NewInt(12289), 1, 1, 3, 1, 8, 64)
	if err != nil {
		t.Fatalf("params.New: %v", err)
	}
	return p
}

func TestSampleIsInC(t *testing.T) {
	src, err := entropy.New()
	if err != nil {
		t.Fatalf("entropy.New: %v", err)
	}
	p := testParams(t)
	r, err := p.Ring()
	if err != nil {
		t.Fatalf("Ring: %v", err)
	}
	ch := Sample(src, p, r)
	if got := norms.Norm1(r, ch.D); got != int64(p.Kappa) {
		t.Fatalf("challenge norm_1 = %d, want %d", got, p.Kappa)
	}
	if got := norms.NormInf(r, ch.D); got != 1 {
		t.Fatalf("challenge norm_inf = %d, want 1", got)
	}
}

func TestDifferenceIsInCbar(t *testing.T) {
	src, err := entropy.New()
	if err != nil {
		t.Fatalf("entropy.New: %v", err)
	}
	p := testParams(t)
	r, err := p.Ring()
	if err != nil {
		t.Fatalf("Ring: %v", err)
	}
	zero := r.Zero()
	d := Difference(src, p, r)
	if r.Equal(d, zero) {
		t.Fatalf("difference must be non-zero")
	}
	for _, c := range r.Coeffs(d) {
		if c < -2 || c > 2 {
			t.Fatalf("difference coefficient out of [-2,2]: %d", c)
		}
	}
}
