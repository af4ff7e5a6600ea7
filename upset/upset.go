package upset

import (
	"maps"
	"slices"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/metric"
)

// Cell is one round of the upset table.
type Cell struct {
	Round bracket.Round `json:"round" yaml:"round"`
	Count int           `json:"count" yaml:"count"`
	Total int           `json:"total" yaml:"total"`
	Rate  metric.Value  `json:"rate" yaml:"rate"`
}

// DefaultRounds returns Quarterfinals, Semifinals and Final.
func DefaultRounds() []bracket.Round {
	return []bracket.Round{bracket.Quarterfinals, bracket.Semifinals, bracket.Final}
}

// Stats returns, for each round in rounds, how many appearances belong to
// a seed in lowBand. Every requested round gets a cell, even when no
// instance plays it.
func Stats(ds *bracket.Dataset, lowBand []int, rounds []bracket.Round) map[bracket.Round]Cell {
	low := make(map[int]bool, len(lowBand))
	for _, s := range lowBand {
		low[s] = true
	}
	out := make(map[bracket.Round]Cell, len(rounds))
	for _, r := range rounds {
		c := Cell{Round: r}
		for _, inst := range ds.Instances() {
			for _, p := range inst.Participants(r) {
				c.Total++
				if low[p.Seed] {
					c.Count++
				}
			}
		}
		c.Rate = metric.Count(c.Count, c.Total)
		out[r] = c
	}

	return out
}

// Decided counts, per round, the games won by the worse seed (Count) out
// of the games with a recorded winner and distinct seeds (Total).
func Decided(ds *bracket.Dataset) map[bracket.Round]Cell {
	out := make(map[bracket.Round]Cell)
	for _, inst := range ds.Instances() {
		for _, g := range inst.Games() {
			if g.Winner == "" || g.SeedA == g.SeedB {
				continue
			}
			c := out[g.Round]
			c.Round = g.Round
			c.Total++
			if g.Winner == g.Visitor().Team {
				c.Count++
			}
			out[g.Round] = c
		}
	}
	for r, c := range out {
		c.Rate = metric.Count(c.Count, c.Total)
		out[r] = c
	}

	return out
}

// Ordered returns the cells in bracket order.
func Ordered(cells map[bracket.Round]Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, r := range slices.Sorted(maps.Keys(cells)) {
		out = append(out, cells[r])
	}

	return out
}
