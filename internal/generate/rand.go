package generate

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Rand is the randomness source the generator draws from. Tests inject a
// seeded source for reproducible ledgers; production callers use NewRand.
type Rand interface {
	// Float64 returns a uniform variate in [0,1).
	Float64() float64
	// Intn returns a uniform int in [0,n).
	Intn(n int) int
}

// NewSeededRand returns a deterministic source. The same seed always yields
// the same draw sequence, which is what makes generated ledgers reproducible.
func NewSeededRand(seed int64) Rand {
	return mrand.New(mrand.NewSource(seed))
}

// NewRand returns a source seeded from the OS entropy pool.
func NewRand() Rand {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// Entropy read failures are effectively impossible on supported
		// platforms; a constant seed still produces a valid ledger.
		return NewSeededRand(1)
	}
	return NewSeededRand(int64(binary.LittleEndian.Uint64(b[:])))
}

// uniform returns a variate in [min, max).
func uniform(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
