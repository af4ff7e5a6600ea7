package survival

import (
	"maps"
	"slices"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/metric"
)

// Basis selects the denominator of a survival rate.
type Basis int

const (
	// Conditional divides by appearances in the preceding round.
	Conditional Basis = iota

	// FromEntry divides by appearances in the seed's entry round.
	FromEntry
)

// String returns "conditional" or "from-entry".
func (b Basis) String() string {
	if b == FromEntry {
		return "from-entry"
	}

	return "conditional"
}

// Options configures Rates.
type Options struct {
	Basis Basis
}

// DefaultOptions returns Options{Basis: Conditional}.
func DefaultOptions() Options {
	return Options{Basis: Conditional}
}

// Table maps seed → round → rate.
type Table map[int]map[bracket.Round]metric.Value

// Seeds returns the seeds in ascending order.
func (t Table) Seeds() []int {
	return slices.Sorted(maps.Keys(t))
}

// Rate returns one cell; a missing cell is undefined.
func (t Table) Rate(seed int, r bracket.Round) metric.Value {
	return t[seed][r]
}

// Round returns the column for r keyed by seed. Seeds without a cell for r
// are absent.
func (t Table) Round(r bracket.Round) map[int]metric.Value {
	out := make(map[int]metric.Value)
	for s, row := range t {
		if v, ok := row[r]; ok {
			out[s] = v
		}
	}

	return out
}

// Rounds returns every round that has at least one cell, in bracket order.
func (t Table) Rounds() []bracket.Round {
	seen := make(map[bracket.Round]struct{})
	for _, row := range t {
		for r := range row {
			seen[r] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// SeedRecord holds the raw appearance counts of one seed across the
// dataset.
type SeedRecord struct {
	Seed int `json:"seed" yaml:"seed"`

	// Instances is how many instances the seed takes part in.
	Instances int `json:"instances" yaml:"instances"`

	// Entries counts instances by the round the seed entered in.
	Entries map[bracket.Round]int `json:"entries" yaml:"entries"`

	// Appearances counts instances where the seed plays in a round.
	Appearances map[bracket.Round]int `json:"appearances" yaml:"appearances"`
}
