package montyhall

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource abstract

type RandomSource interface {
	IntN(n int) int // [0, n)
}

// Replicable RNG (e.g. Monte Carlo)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int { return s.r.IntN(n) }

// RandomSeed reads 64 bits from crypto/rand; falls back to math/rand/v2.
func RandomSeed() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

// DefaultRNG is a PCG generator with a crypto-random seed.
func DefaultRNG() RandomSource { return NewSeededRNG(RandomSeed()) }

// workerSeed derives the PCG seed for worker i; worker 0 keeps the base seed
// so a single-worker parallel run matches the sequential one.
func workerSeed(seed uint64, i int) uint64 {
	return seed + uint64(i)*0x9e3779b97f4a7c15
}
