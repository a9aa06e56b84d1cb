// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package rng is the single seeded randomness source of a simulation run.
// Every draw (stakes, MEV values, proposers) goes through one Source, in a
// fixed order, so the seed alone reproduces a run.
package rng

import (
	"math/rand"

	"github.com/gonum/stat/distuv"
)

// Source is not goroutine-safe.
type Source struct {
	seed  int64
	rand  *rand.Rand
	draws uint64
}

func New(seed int64) *Source {
	return &Source{
		seed: seed,
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (s *Source) Seed() int64 { return s.seed }

// Draws counts the values handed out so far.
func (s *Source) Draws() uint64 { return s.draws }

// IntRange draws uniformly from the half-open range [lo, hi).
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		panic("rng: empty integer range")
	}
	s.draws++
	return lo + s.rand.Intn(hi-lo)
}

// LogNormal draws exp(mu + sigma*Z) with Z standard normal.
func (s *Source) LogNormal(mu, sigma float64) float64 {
	s.draws++
	return distuv.LogNormal{Mu: mu, Sigma: sigma, Source: s.rand}.Rand()
}

// Categorical picks indices with probability proportional to their weights.
// It draws from the Source it was created by.
type Categorical struct {
	src  *Source
	dist distuv.Categorical
}

// NewCategorical builds a sampler over weights (non-negative, not all zero).
func (s *Source) NewCategorical(weights []float64) *Categorical {
	if len(weights) == 0 {
		panic("rng: categorical draw over no outcomes")
	}
	return &Categorical{src: s, dist: distuv.NewCategorical(weights, s.rand)}
}

// Source returns the generator the sampler draws from.
func (c *Categorical) Source() *Source { return c.src }

func (c *Categorical) Draw() int {
	c.src.draws++
	return int(c.dist.Rand())
}
