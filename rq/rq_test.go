package rq

import "testing"

// testRing returns a small ring suitable for unit tests: N=16 keeps the
// per-coefficient loops short while still exercising NTT.
func testRing(t *testing.T) *Ring {
	t.Helper()
	r, err := NewRing(16, 12289)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	return r
}

func TestFromCoeffsRoundTrip(t *testing.T) {
	r := testRing(t)
	want := []int64{1, -2, 3, -4}
	e := r.FromCoeffs(want)
	got := r.Coeffs(e)
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("coeff %d: got %d want %d", i, got[i], w)
		}
	}
	for i := len(want); i < r.N(); i++ {
		if got[i] != 0 {
			t.Fatalf("coeff %d: expected zero padding, got %d", i, got[i])
		}
	}
}

func TestAddSubNeg(t *testing.T) {
	r := testRing(t)
	a := r.FromCoeffs([]int64{1, 2, 3})
	b := r.FromCoeffs([]int64{10, 20, 30})
	sum := r.Add(a, b)
	if got := r.Coeffs(sum)[1]; got != 22 {
		t.Fatalf("add: got %d want 22", got)
	}
	diff := r.Sub(b, a)
	if got := r.Coeffs(diff)[1]; got != 18 {
		t.Fatalf("sub: got %d want 18", got)
	}
	neg := r.Neg(a)
	if got := r.Coeffs(neg)[0]; got != -1 {
		t.Fatalf("neg: got %d want -1", got)
	}
}

func TestMulByOneIsIdentity(t *testing.T) {
	r := testRing(t)
	a := r.FromCoeffs([]int64{5, -7, 9})
	one := r.One()
	prod := r.Mul(a, one)
	if !r.Equal(a, prod) {
		t.Fatalf("a*1 should equal a")
	}
}

func TestMulReducesModXNplus1(t *testing.T) {
	r := testRing(t)
	// X^(N-1) * X = X^N = -1 (mod X^N+1).
	xnm1 := r.FromCoeffs(append(make([]int64, r.N()-1), 1))
	x := r.FromCoeffs([]int64{0, 1})
	got := r.Mul(xnm1, x)
	want := r.Neg(r.One())
	if !r.Equal(got, want) {
		t.Fatalf("X^(N-1)*X should equal -1 mod X^N+1")
	}
}

func TestMatDotAssociativeWithAddDistributing(t *testing.T) {
	r := testRing(t)
	a := r.NewMatWith(2, 2, func(i, j int) Elt { return r.FromCoeffs([]int64{int64(i + j + 1)}) })
	b := r.NewMatWith(2, 2, func(i, j int) Elt { return r.FromCoeffs([]int64{int64(i*2 + j + 3)}) })
	c := r.NewMatWith(2, 2, func(i, j int) Elt { return r.FromCoeffs([]int64{int64(i - j + 7)}) })

	// (A+B).Dot(C) == A.Dot(C).Add(B.Dot(C))
	lhs := a.Add(b).Dot(c)
	rhs := a.Dot(c).Add(b.Dot(c))
	if !lhs.Equal(rhs) {
		t.Fatalf("dot should distribute over add")
	}

	// A.Dot(B.Dot(C)) == (A.Dot(B)).Dot(C)
	lhs2 := a.Dot(b.Dot(c))
	rhs2 := a.Dot(b).Dot(c)
	if !lhs2.Equal(rhs2) {
		t.Fatalf("dot should be associative")
	}
}

func TestMatExtendAndSplitRoundTrip(t *testing.T) {
	r := testRing(t)
	top := r.NewMatWith(2, 3, func(i, j int) Elt { return r.FromCoeffs([]int64{int64(i + j)}) })
	bottom := r.NewMatWith(1, 3, func(i, j int) Elt { return r.FromCoeffs([]int64{int64(j - i)}) })

	stacked := top.ExtendRows(bottom)
	if rows, cols := stacked.Dim(); rows != 3 || cols != 3 {
		t.Fatalf("unexpected dims after extend_rows: %dx%d", rows, cols)
	}
	gotTop, gotBottom := stacked.SplitRows(2)
	if !gotTop.Equal(top) {
		t.Fatalf("split_rows should be left-inverse to extend_rows (top)")
	}
	if !gotBottom.Equal(bottom) {
		t.Fatalf("split_rows should be left-inverse to extend_rows (bottom)")
	}

	left := r.NewMatWith(2, 1, func(i, j int) Elt { return r.FromCoeffs([]int64{int64(i + 1)}) })
	right := r.NewMatWith(2, 2, func(i, j int) Elt { return r.FromCoeffs([]int64{int64(j + 10)}) })
	wide := left.ExtendCols(right)
	if rows, cols := wide.Dim(); rows != 2 || cols != 3 {
		t.Fatalf("unexpected dims after extend_cols: %dx%d", rows, cols)
	}
}

func TestOneDMatToVec(t *testing.T) {
	r := testRing(t)
	v := []Elt{r.FromCoeffs([]int64{1}), r.FromCoeffs([]int64{2}), r.FromCoeffs([]int64{3})}
	m := r.MatFromVec(v)
	got := m.OneDMatToVec()
	if len(got) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(got))
	}
	for i := range v {
		if !r.Equal(got[i], v[i]) {
			t.Fatalf("element %d mismatch", i)
		}
	}
}

func TestDimensionMismatchPanics(t *testing.T) {
	r := testRing(t)
	a := r.NewMatWith(2, 2, func(i, j int) Elt { return r.Zero() })
	b := r.NewMatWith(3, 3, func(i, j int) Elt { return r.Zero() })

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on dimension mismatch")
		}
	}()
	a.Add(b)
}

func TestIdentityMatrix(t *testing.T) {
	r := testRing(t)
	id := r.Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := r.Zero()
			if i == j {
				want = r.One()
			}
			if !r.Equal(id.At(i, j), want) {
				t.Fatalf("identity(%d,%d) mismatch", i, j)
			}
		}
	}
}
