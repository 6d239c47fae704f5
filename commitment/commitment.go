// Package commitment implements the BDLOP commitment scheme over R_q:
// key generation, Commit, and Verify, built on the Mat/Elt primitives of
// the rq package. GenerateKey lives here rather than on params.Params so
// that params does not have to import this package (see DESIGN.md).
package commitment

import (
	"fmt"

	"bdlop-commitments/entropy"
	"bdlop-commitments/norms"
	"bdlop-commitments/params"
	"bdlop-commitments/rq"
	"bdlop-commitments/sampler"
)

// Key is the public commitment key {A1, A2}. A1 is Nrows x K with left
// block I_Nrows and right block uniform over R_q; A2 is L x K with layout
// [0_{L x Nrows} | I_L | A2'] where A2' is uniform.
type Key struct {
	A1 rq.Mat
	A2 rq.Mat
}

// GenerateKey builds a fresh commitment key from the entropy source.
// Sampling proceeds row-major, left to right, so two keys generated from
// identically seeded sources are identical.
func GenerateKey(src *entropy.Source, p *params.Params, r *rq.Ring) Key {
	qHalf := int64(r.Q() / 2)

	a1 := r.NewMatWith(p.Nrows, p.K, func(i, j int) rq.Elt {
		if j < p.Nrows {
			if i == j {
				return r.One()
			}
			return r.Zero()
		}
		return sampler.UniformBounded(src, r, qHalf)
	})

	a2 := r.NewMatWith(p.L, p.K, func(i, j int) rq.Elt {
		switch {
		case j < p.Nrows:
			return r.Zero()
		case j < p.Nrows+p.L:
			if j-p.Nrows == i {
				return r.One()
			}
			return r.Zero()
		default:
			return sampler.UniformBounded(src, r, qHalf)
		}
	})

	return Key{A1: a1, A2: a2}
}

// stacked returns A = [A1; A2].
func (k Key) stacked() rq.Mat {
	return k.A1.ExtendRows(k.A2)
}

// Opening is the witness (x, r) for a commitment. F is nil in the common
// case; when set, Verify checks the f-randomized form of the commitment
// equation instead of the plain one. The three Sigma protocols never set
// it, but the knowledge extractor works with f-randomized openings, so
// both branches are kept.
type Opening struct {
	X []rq.Elt
	R rq.Mat
	F *rq.Elt
}

// Commitment is the stacked (Nrows+L) x 1 matrix c = [c1; c2].
type Commitment struct {
	C rq.Mat
}

// Split returns (c1, c2), c partitioned at row Nrows.
func (c Commitment) Split(p *params.Params) (c1, c2 rq.Mat) {
	return c.C.SplitRows(p.Nrows)
}

// CommitConstraintHolds reports whether every ring entry of R satisfies
// norm_2 <= 4*sigma*floor(sqrt(N)).
func CommitConstraintHolds(p *params.Params, r *rq.Ring, R rq.Mat) bool {
	bound := p.CommitBound()
	rows, cols := R.Dim()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if norms.Norm2(r, R.At(i, j)) > bound {
				return false
			}
		}
	}
	return true
}

// VerifyConstraintHolds reports whether every ring entry of Z satisfies
// norm_2 <= 2*sigma*floor(sqrt(N)).
func VerifyConstraintHolds(p *params.Params, r *rq.Ring, Z rq.Mat) bool {
	bound := p.VerifyBound()
	rows, cols := Z.Dim()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if norms.Norm2(r, Z.At(i, j)) > bound {
				return false
			}
		}
	}
	return true
}

// sampleR draws a fresh k x 1 matrix of uniform-in-[-b,b] ring elements,
// retrying until CommitConstraintHolds passes. Parameters are tuned so a
// single draw succeeds with overwhelming probability; the loop only
// guards the tail.
func sampleR(src *entropy.Source, p *params.Params, r *rq.Ring) rq.Mat {
	for {
		R := r.NewMatWith(p.K, 1, func(i, j int) rq.Elt {
			return sampler.UniformBounded(src, r, p.B)
		})
		if CommitConstraintHolds(p, r, R) {
			return R
		}
	}
}

// stackZeroAndX builds the (Nrows+L) x 1 matrix [0_Nrows; x].
func stackZeroAndX(p *params.Params, r *rq.Ring, x []rq.Elt) rq.Mat {
	zero := r.NewMatWith(p.Nrows, 1, func(i, j int) rq.Elt { return r.Zero() })
	xMat := r.MatFromVec(x)
	return zero.ExtendRows(xMat)
}

// Commit checks |x| = L, samples r under CommitConstraint, and returns
// c = A*r + [0;x] along with the opening (x, r).
func Commit(src *entropy.Source, p *params.Params, r *rq.Ring, key Key, x []rq.Elt) (Opening, Commitment, error) {
	if len(x) != p.L {
		return Opening{}, Commitment{}, fmt.Errorf("commitment: expected %d-length x, got %d", p.L, len(x))
	}
	R := sampleR(src, p, r)
	A := key.stacked()
	zVec := stackZeroAndX(p, r, x)
	c := A.Dot(R).Add(zVec)
	return Opening{X: x, R: R, F: nil}, Commitment{C: c}, nil
}

// Verify rejects if CommitConstraint fails on the opening's r, then checks
// the commitment equation: c == A*r + [0;x] when F is nil, and
// f*c == A*r + f*[0;x] otherwise.
func Verify(p *params.Params, r *rq.Ring, key Key, o Opening, c Commitment) bool {
	if !CommitConstraintHolds(p, r, o.R) {
		return false
	}
	A := key.stacked()
	zVec := stackZeroAndX(p, r, o.X)
	if o.F == nil {
		return c.C.Equal(A.Dot(o.R).Add(zVec))
	}
	lhs := c.C.ComponentwiseMul(*o.F)
	rhs := A.Dot(o.R).Add(zVec.ComponentwiseMul(*o.F))
	return lhs.Equal(rhs)
}
