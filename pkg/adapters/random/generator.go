// Package random provides TargetGenerator implementations.
//
// Generator seeds a PCG source from crypto/rand on every draw, which suits a
// session that asks for exactly one value. Fixed and NewSeeded exist for
// deterministic runs.
package random

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/aretw0/guess/pkg/domain"
)

// Generator draws uniformly distributed values from a freshly seeded PRNG.
type Generator struct {
	entropy io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy replaces crypto/rand as the seed source.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
	}
}

// New returns a Generator seeded from crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{entropy: crand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a value in [low, high].
func (g *Generator) Generate(ctx context.Context, low, high int) (int, error) {
	if err := checkRange(low, high); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrEntropySource, err)
	}

	seed1, seed2, err := readSeed(g.entropy)
	if err != nil {
		return 0, err
	}
	return draw(rand.New(rand.NewPCG(seed1, seed2)), low, high), nil
}

// Seeded draws from a deterministic PCG stream. Not safe for concurrent use.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a reproducible generator.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns the next value of the stream in [low, high].
func (s *Seeded) Generate(_ context.Context, low, high int) (int, error) {
	if err := checkRange(low, high); err != nil {
		return 0, err
	}
	return draw(s.rng, low, high), nil
}

// Fixed always produces the same target.
type Fixed int

// Generate returns f, or ErrInvalidRange when f falls outside [low, high].
func (f Fixed) Generate(_ context.Context, low, high int) (int, error) {
	if err := checkRange(low, high); err != nil {
		return 0, err
	}
	if int(f) < low || int(f) > high {
		return 0, fmt.Errorf("%w: fixed target %d outside [%d, %d]", domain.ErrInvalidRange, int(f), low, high)
	}
	return int(f), nil
}

func checkRange(low, high int) error {
	if low > high {
		return fmt.Errorf("%w: low %d > high %d", domain.ErrInvalidRange, low, high)
	}
	return nil
}

func readSeed(r io.Reader) (uint64, uint64, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: read random seed: %w", domain.ErrEntropySource, err)
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}

// draw maps a uniform uint64 onto [low, high] using wrapping unsigned
// arithmetic, so the full int range does not overflow.
func draw(rng *rand.Rand, low, high int) int {
	span := uint64(high) - uint64(low) + 1
	if span == 0 {
		return int(rng.Uint64())
	}
	return int(uint64(low) + rng.Uint64N(span))
}
