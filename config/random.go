package config

import "math/rand"

// Randomizer samples jittered election timeouts from a validated
// Config using an injected random source, so tests can pin the stream
// with a fixed seed. A Randomizer is only as safe for concurrent use
// as its source; give each goroutine its own, or use
// Config.RandElectionTimeout which draws from the locked global source.
type Randomizer struct {
	rng *rand.Rand
}

func NewRandomizer(src rand.Source) *Randomizer {
	return &Randomizer{rng: rand.New(src)}
}

// NextElectionTimeout draws a timeout uniformly from
// [ElectionTimeoutMin, ElectionTimeoutMax) in milliseconds. Each call
// is independent. The config must have passed validation, which
// guarantees a non-empty window.
func (r *Randomizer) NextElectionTimeout(c *Config) uint64 {
	return c.ElectionTimeoutMin + uint64(r.rng.Int63n(int64(c.ElectionTimeoutMax-c.ElectionTimeoutMin)))
}

// RandElectionTimeout is NextElectionTimeout backed by the package
// global math/rand source, which is internally locked and therefore
// safe to call from any number of election timers concurrently.
func (c *Config) RandElectionTimeout() uint64 {
	return c.ElectionTimeoutMin + uint64(rand.Int63n(int64(c.ElectionTimeoutMax-c.ElectionTimeoutMin)))
}
