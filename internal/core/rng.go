package core

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// RNG is a thin convenience wrapper for deterministic seeding. It is backed
// by golang.org/x/exp/rand so gonum's distributions can draw from the same
// source.
type RNG struct {
	src rand.Source
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewSource(uint64(seed))
	return &RNG{src: src, r: rand.New(src)}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// Normal draws from a normal distribution with the given mean and stddev.
func (r *RNG) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

// Uniform draws from a uniform distribution over [min, max).
func (r *RNG) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: r.src}.Rand()
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
