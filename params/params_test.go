package params

import (
	"math/big"
	"testing"
)

func TestSigmaFormula(t *testing.T) {
	// b=1, kappa=36, k=3, N=1024 => sigma = 1*11*36*floor(sqrt(3072)) = 21780.
	p := &Params{Q: big.NewInt(12289), B: 1, N: 1024, Nrows: 1, K: 3, L: 1, Kappa: 36}
	if got := p.Sigma(); got != 21780 {
		t.Fatalf("sigma: got %d want 21780", got)
	}
}

func TestDefaultPreset(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if p.B != 1 || p.N != 1024 || p.K != 3 || p.L != 1 || p.Kappa != 36 {
		t.Fatalf("unexpected default preset: %+v", p)
	}
}

func TestNewRejectsBadInvariants(t *testing.T) {
	q12289 := big.NewInt(12289)

	if _, err := New(big.NewInt(12), 1, 1, 3, 1, 4, 16); err == nil {
		t.Fatalf("expected rejection of non-prime q")
	}
	if _, err := New(q12289, 0, 1, 3, 1, 4, 16); err == nil {
		t.Fatalf("expected rejection of b < 1")
	}
	if _, err := New(q12289, 1, 3, 3, 1, 4, 16); err == nil {
		t.Fatalf("expected rejection of k > n violated (k==n)")
	}
	if _, err := New(q12289, 1, 1, 3, 2, 4, 16); err == nil {
		t.Fatalf("expected rejection of n >= l violated")
	}
	if _, err := New(q12289, 1, 1, 3, 1, 100, 16); err == nil {
		t.Fatalf("expected rejection of kappa > N")
	}
	if _, err := New(q12289, 1, 1, 3, 1, 4, 15); err == nil {
		t.Fatalf("expected rejection of non power-of-two N")
	}
}

func TestPrepareValueLengthCheck(t *testing.T) {
	p, err := New(big.NewInt(12289), 1, 1, 3, 1, 4, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r, err := p.Ring()
	if err != nil {
		t.Fatalf("Ring: %v", err)
	}
	if _, err := p.PrepareValue(r, [][]int64{{1, 2}, {3, 4}}); err == nil {
		t.Fatalf("expected length mismatch error (l=1, got 2 values)")
	}
	if _, err := p.PrepareValue(r, [][]int64{{1, 2, 3}}); err != nil {
		t.Fatalf("PrepareValue: %v", err)
	}
}
