package survival

import (
	"cmp"
	"slices"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/metric"
)

type tally struct{ num, den int }

// Rates computes the survival table of ds.
func Rates(ds *bracket.Dataset, opts Options) Table {
	counts := make(map[int]map[bracket.Round]*tally)
	for _, inst := range ds.Instances() {
		rounds := inst.Rounds()
		for _, s := range inst.Seeds() {
			entry, _ := inst.EntryRoundOf(s)
			if counts[s] == nil {
				counts[s] = make(map[bracket.Round]*tally)
			}
			for _, r := range rounds {
				if r <= entry {
					continue
				}
				c := counts[s][r]
				if c == nil {
					c = &tally{}
					counts[s][r] = c
				}
				if inst.Appears(s, r) {
					c.num++
				}
				base := entry
				if opts.Basis == Conditional {
					base, _ = inst.Prev(r)
				}
				if inst.Appears(s, base) {
					c.den++
				}
			}
		}
	}

	out := make(Table, len(counts))
	for s, row := range counts {
		out[s] = make(map[bracket.Round]metric.Value, len(row))
		for r, c := range row {
			out[s][r] = metric.Count(c.num, c.den)
		}
	}

	return out
}

// Records returns the raw per-seed appearance counts, ordered by seed.
func Records(ds *bracket.Dataset) []SeedRecord {
	bySeed := make(map[int]*SeedRecord)
	for _, inst := range ds.Instances() {
		for _, s := range inst.Seeds() {
			rec := bySeed[s]
			if rec == nil {
				rec = &SeedRecord{
					Seed:        s,
					Entries:     make(map[bracket.Round]int),
					Appearances: make(map[bracket.Round]int),
				}
				bySeed[s] = rec
			}
			rec.Instances++
			if e, ok := inst.EntryRoundOf(s); ok {
				rec.Entries[e]++
			}
			for _, r := range inst.Rounds() {
				if inst.Appears(s, r) {
					rec.Appearances[r]++
				}
			}
		}
	}

	out := make([]SeedRecord, 0, len(bySeed))
	for _, rec := range bySeed {
		out = append(out, *rec)
	}
	slices.SortFunc(out, func(a, b SeedRecord) int { return cmp.Compare(a.Seed, b.Seed) })

	return out
}
