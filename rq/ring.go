// Package rq implements the cyclotomic ring R_q = Z_q[X]/(X^N+1) and the
// matrices of ring elements used throughout the commitment scheme and its
// Sigma protocols. It is a thin, NTT-domain-only wrapper around
// github.com/tuneinsight/lattigo/v4/ring, which is the external ring
// collaborator: N a power of two, q a single-limb prime.
package rq

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// Ring is R_q for a fixed (N, q). Values are immutable once constructed;
// a *Ring may be shared freely across provers and verifiers.
type Ring struct {
	inner *ring.Ring
	q     uint64
	half  uint64
}

// NewRing builds R_q for the given ring degree N (a power of two) and
// single-limb modulus q.
func NewRing(n int, q uint64) (*Ring, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("rq: N must be a power of two, got %d", n)
	}
	inner, err := ring.NewRing(n, []uint64{q})
	if err != nil {
		return nil, fmt.Errorf("rq: %w", err)
	}
	return &Ring{inner: inner, q: q, half: q / 2}, nil
}

// N returns the ring degree.
func (r *Ring) N() int { return r.inner.N }

// Q returns the modulus.
func (r *Ring) Q() uint64 { return r.q }

// Zero returns the additive identity.
func (r *Ring) Zero() Elt {
	return Elt{ring: r, poly: r.inner.NewPoly()}
}

// One returns the multiplicative identity.
func (r *Ring) One() Elt {
	p := r.inner.NewPoly()
	p.Coeffs[0][0] = 1
	r.inner.NTT(p, p)
	return Elt{ring: r, poly: p}
}

// FromCoeffs builds a ring element from signed integer coefficients,
// zero-padded (or truncated) to N, centre-reduced modulo q.
func (r *Ring) FromCoeffs(coeffs []int64) Elt {
	p := r.inner.NewPoly()
	n := r.inner.N
	for i := 0; i < n && i < len(coeffs); i++ {
		p.Coeffs[0][i] = r.centerToMod(coeffs[i])
	}
	r.inner.NTT(p, p)
	return Elt{ring: r, poly: p}
}

// Coeffs returns the centred (signed, in [-q/2, q/2]) coefficients of e.
func (r *Ring) Coeffs(e Elt) []int64 {
	tmp := r.inner.NewPoly()
	r.inner.InvNTT(e.poly, tmp)
	out := make([]int64, r.inner.N)
	for i, c := range tmp.Coeffs[0] {
		out[i] = r.centerFromMod(c)
	}
	return out
}

// Add returns a + b.
func (r *Ring) Add(a, b Elt) Elt {
	out := r.inner.NewPoly()
	r.inner.Add(a.poly, b.poly, out)
	return Elt{ring: r, poly: out}
}

// Sub returns a - b.
func (r *Ring) Sub(a, b Elt) Elt {
	out := r.inner.NewPoly()
	r.inner.Sub(a.poly, b.poly, out)
	return Elt{ring: r, poly: out}
}

// Neg returns -a.
func (r *Ring) Neg(a Elt) Elt {
	out := r.inner.NewPoly()
	r.inner.Neg(a.poly, out)
	return Elt{ring: r, poly: out}
}

// Mul returns the ring product a*b mod X^N+1, a pointwise product since
// every Elt is kept in NTT form.
func (r *Ring) Mul(a, b Elt) Elt {
	out := r.inner.NewPoly()
	r.inner.MulCoeffs(a.poly, b.poly, out)
	return Elt{ring: r, poly: out}
}

// Equal reports whether a and b represent the same ring element.
func (r *Ring) Equal(a, b Elt) bool {
	return r.inner.Equal(a.poly, b.poly)
}

func (r *Ring) centerToMod(v int64) uint64 {
	m := int64(r.q)
	v %= m
	if v < 0 {
		v += m
	}
	return uint64(v)
}

func (r *Ring) centerFromMod(c uint64) int64 {
	if c > r.half {
		return int64(c) - int64(r.q)
	}
	return int64(c)
}
