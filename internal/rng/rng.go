package rng

// Generator provides a simple random number.
// Production code uses Crypto; tests inject a seeded *math/rand.Rand, which
// also satisfies this interface, for deterministic draws.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
