// Package entropy provides the randomness capability object passed to
// every sampler: uniform integers on an inclusive range, fair coin flips,
// and Fisher-Yates shuffles, all driven off a single underlying stream.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Source wraps a lattigo PRNG stream behind a small sampling surface.
// Two Sources built from the same key produce identical draw sequences.
type Source struct {
	prng utils.PRNG
}

// New creates a Source backed by a fresh cryptographic PRNG.
func New() (*Source, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("entropy: %w", err)
	}
	return &Source{prng: prng}, nil
}

// NewKeyed creates a Source whose stream is deterministic given key,
// for reproducible vectors.
func NewKeyed(key []byte) (*Source, error) {
	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		return nil, fmt.Errorf("entropy: %w", err)
	}
	return &Source{prng: prng}, nil
}

// SampleUniform returns a uniform int64 in the inclusive range [lo, hi].
func (s *Source) SampleUniform(lo, hi int64) int64 {
	if hi < lo {
		panic("entropy: SampleUniform requires hi >= lo")
	}
	span := uint64(hi-lo) + 1
	if span == 0 {
		panic("entropy: SampleUniform range too large")
	}
	return lo + int64(s.uniformBelow(span))
}

// SampleBool returns a fair coin flip.
func (s *Source) SampleBool() bool {
	return s.uniformBelow(2) == 1
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements via swap.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(s.uniformBelow(uint64(i) + 1))
		swap(i, j)
	}
}

// Float64 returns a uniform float in [0, 1), used by the Normal sampler's
// Box-Muller transform.
func (s *Source) Float64() float64 {
	const mantissaBits = 53
	v := s.uniformBelow(uint64(1) << mantissaBits)
	return float64(v) / float64(uint64(1)<<mantissaBits)
}

// uniformBelow draws a uniform value in [0, n) from the PRNG stream,
// rejection-sampling against a threshold to avoid modulo bias, and
// falling back to crypto/rand if the stream errors out.
func (s *Source) uniformBelow(n uint64) uint64 {
	if n == 0 {
		panic("entropy: uniformBelow requires n > 0")
	}
	buf := make([]byte, 8)
	maxUint64 := ^uint64(0)
	threshold := (maxUint64 / n) * n
	for {
		if _, err := io.ReadFull(s.prng, buf); err != nil {
			v, fbErr := rand.Int(rand.Reader, new(big.Int).SetUint64(n))
			if fbErr != nil {
				panic(fmt.Errorf("entropy: prng and crypto/rand fallback both failed: %v / %v", err, fbErr))
			}
			return v.Uint64()
		}
		word := binary.LittleEndian.Uint64(buf)
		if word < threshold {
			return word % n
		}
	}
}
