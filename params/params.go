// Package params implements the immutable parameter tuple (q, b, n, k, l,
// kappa) of the commitment scheme, its derived quantities (sigma and the
// norm bounds), and the value/scalar preparation helpers. Commitment-key
// generation lives in the commitment package, which depends on this one.
package params

import (
	"fmt"
	"math/big"

	"bdlop-commitments/rq"
)

// Params is the tuple (q, b, n, k, l, kappa); immutable once constructed.
// N is the ring degree; Nrows is the tuple's "n" component, the row count
// of the identity block of A1 and of the zero block atop A2. The two are
// distinct quantities and are kept under distinct names.
type Params struct {
	Q     *big.Int
	B     int64
	N     int
	Nrows int
	K     int
	L     int
	Kappa int
}

// New validates and constructs Params. Requirements: N a power of two;
// q prime with q ≡ 1 (mod 2N), so the ring back-end's negacyclic NTT
// exists for this modulus (see DESIGN.md for the trade-off against the
// two-factor splitting congruence); b >= 1; k > n >= l; kappa <= N.
func New(q *big.Int, b int64, n, k, l, kappa, ringN int) (*Params, error) {
	if ringN <= 0 || ringN&(ringN-1) != 0 {
		return nil, fmt.Errorf("params: N must be a power of two, got %d", ringN)
	}
	if q == nil || !q.ProbablyPrime(20) {
		return nil, fmt.Errorf("params: q must be prime")
	}
	mod := new(big.Int).Mod(q, big.NewInt(int64(2*ringN)))
	if mod.Int64() != 1 {
		return nil, fmt.Errorf("params: q must be congruent to 1 (mod %d), got q mod %d = %d", 2*ringN, 2*ringN, mod.Int64())
	}
	if b < 1 {
		return nil, fmt.Errorf("params: b must be >= 1")
	}
	if !(k > n && n >= l) {
		return nil, fmt.Errorf("params: require k > n >= l, got k=%d n=%d l=%d", k, n, l)
	}
	if kappa < 0 || kappa > ringN {
		return nil, fmt.Errorf("params: kappa must be in [0, N], got kappa=%d N=%d", kappa, ringN)
	}
	return &Params{Q: new(big.Int).Set(q), B: b, N: ringN, Nrows: n, K: k, L: l, Kappa: kappa}, nil
}

// Default returns the standard preset: b=1, n=1, k=3, l=1, kappa=36,
// N=1024, over a ~32-bit NTT-friendly prime.
func Default() (*Params, error) {
	q, ok := new(big.Int).SetString("3515314177", 10)
	if !ok {
		return nil, fmt.Errorf("params: bad default modulus literal")
	}
	return New(q, 1, 1, 3, 1, 36, 1024)
}

// Sigma returns the masking standard deviation
// sigma = b * 11*kappa * floor(sqrt(k*N)).
func (p *Params) Sigma() int64 {
	return p.B * 11 * int64(p.Kappa) * isqrt(int64(p.K)*int64(p.N))
}

// CommitBound returns 4*sigma*floor(sqrt(N)), the per-entry norm_2 bound
// on the commitment randomness r.
func (p *Params) CommitBound() int64 {
	return 4 * p.Sigma() * isqrt(int64(p.N))
}

// VerifyBound returns 2*sigma*floor(sqrt(N)), the per-entry norm_2 bound
// on a protocol response z.
func (p *Params) VerifyBound() int64 {
	return 2 * p.Sigma() * isqrt(int64(p.N))
}

// Ring builds the R_q these parameters describe.
func (p *Params) Ring() (*rq.Ring, error) {
	if !p.Q.IsUint64() {
		return nil, fmt.Errorf("params: q does not fit a single 64-bit RNS limb")
	}
	return rq.NewRing(p.N, p.Q.Uint64())
}

// PrepareValue wraps l integer-coefficient lists into ring elements,
// zero-padded to N. The outer list length must equal l.
func (p *Params) PrepareValue(r *rq.Ring, values [][]int64) ([]rq.Elt, error) {
	if len(values) != p.L {
		return nil, fmt.Errorf("params: expected %d values, got %d", p.L, len(values))
	}
	out := make([]rq.Elt, p.L)
	for i, v := range values {
		out[i] = r.FromCoeffs(v)
	}
	return out, nil
}

// PrepareScalar wraps a single integer-coefficient list as a ring element.
func (p *Params) PrepareScalar(r *rq.Ring, value []int64) rq.Elt {
	return r.FromCoeffs(value)
}

// isqrt returns floor(sqrt(v)) via Newton's method on int64s (v is at
// most k*N here, far below the range where widening would be needed).
func isqrt(v int64) int64 {
	if v < 0 {
		panic("params: isqrt of negative value")
	}
	if v == 0 {
		return 0
	}
	x := v
	for {
		y := (x + v/x) / 2
		if y >= x {
			return x
		}
		x = y
	}
}
