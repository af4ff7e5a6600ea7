package travel

import (
	"cmp"
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
	"github.com/quarterback/oregontennis/metric"
	"golang.org/x/sync/errgroup"
)

// Partition splits the entry-round field of inst into hosts and visitors,
// each sorted by ascending seed. Seeds that enter after a bye are not part
// of the field. When only one band is set, the other side takes the rest
// of the field.
func Partition(inst *bracket.Instance, schools bracket.Schools, opts Options) (hosts, visitors []Team, err error) {
	field := inst.Participants(inst.EntryRound())
	teams := make([]Team, len(field))
	for i, p := range field {
		teams[i] = Team{Name: p.Team, Seed: p.Seed}
		if sc, ok := schools.Resolve(p.Team); ok {
			teams[i].Location = sc.Location
		}
	}
	slices.SortFunc(teams, func(a, b Team) int { return cmp.Compare(a.Seed, b.Seed) })

	hostBand, visitorBand := opts.HostBand, opts.VisitorBand
	switch {
	case len(hostBand) == 0 && len(visitorBand) == 0:
		half := len(teams) / 2
		return teams[:half:half], teams[half:], nil
	case len(visitorBand) == 0:
		visitorBand = rest(teams, hostBand)
	case len(hostBand) == 0:
		hostBand = rest(teams, visitorBand)
	}
	for _, s := range hostBand {
		if slices.Contains(visitorBand, s) {
			return nil, nil, fmt.Errorf("%w: seed %d", ErrBandOverlap, s)
		}
	}
	for _, t := range teams {
		switch {
		case slices.Contains(hostBand, t.Seed):
			hosts = append(hosts, t)
		case slices.Contains(visitorBand, t.Seed):
			visitors = append(visitors, t)
		}
	}

	return hosts, visitors, nil
}

// rest returns the seeds of teams not listed in band.
func rest(teams []Team, band []int) []int {
	var out []int
	for _, t := range teams {
		if !slices.Contains(band, t.Seed) {
			out = append(out, t.Seed)
		}
	}

	return out
}

// Distance returns the DistanceFunc Simulate uses: great-circle miles
// under opts, failing with ErrUnlocated for teams without coordinates.
func Distance(opts geo.Options) DistanceFunc {
	return func(h, v Team) (float64, error) {
		if h.Location == nil || v.Location == nil {
			return 0, ErrUnlocated
		}

		return geo.Distance(*h.Location, *v.Location, opts)
	}
}

// matchup is one baseline game between a host and a visitor.
type matchup struct {
	host, visitor Team
	game          bracket.Game
}

// Simulate compares the baseline pairing of one instance with the greedy
// re-pairing. A baseline game with an unlocated side is excluded, and both
// of its teams leave the greedy pool, so the two totals cover the same
// teams.
func Simulate(inst *bracket.Instance, schools bracket.Schools, opts Options) (Result, error) {
	res := Result{Instance: inst.Key()}
	hosts, visitors, err := Partition(inst, schools, opts)
	if err != nil {
		return res, err
	}
	dist := Distance(opts.Geo)

	// Stage 1: baseline over the full field.
	var games []matchup
	switch opts.Baseline {
	case Strict:
		games = strictGames(inst, hosts, visitors)
	default:
		games = recordedGames(inst, hosts, visitors)
	}
	gone := make(map[string]bool)
	for _, m := range games {
		if m.host.Location == nil || m.visitor.Location == nil {
			res.Excluded = append(res.Excluded, m.game)
			for _, t := range [2]Team{m.host, m.visitor} {
				gone[t.Name] = true
				if t.Location != nil {
					res.Dropped = append(res.Dropped, t)
				}
			}
			continue
		}
		d, err := dist(m.host, m.visitor)
		if err != nil {
			return res, fmt.Errorf("travel: %s: %w", m.game, err)
		}
		res.Current = append(res.Current, Pair{Host: m.host, Visitor: m.visitor, Miles: d})
	}

	// Stage 2: greedy re-pairing of what is left.
	hosts, res.Unlocated = pool(hosts, gone, nil)
	visitors, res.Unlocated = pool(visitors, gone, res.Unlocated)
	if res.Simulated, err = GreedyPairs(hosts, visitors, dist); err != nil {
		return res, err
	}

	res.CurrentMiles = Total(res.Current)
	res.SimulatedMiles = Total(res.Simulated)
	res.SavingsMiles = res.CurrentMiles - res.SimulatedMiles
	res.PercentReduction = metric.Ratio(res.SavingsMiles, res.CurrentMiles)

	return res, nil
}

// pool keeps the located teams not in gone; teams without coordinates are
// appended to unlocated.
func pool(teams []Team, gone map[string]bool, unlocated []Team) ([]Team, []Team) {
	keep := make([]Team, 0, len(teams))
	for _, t := range teams {
		switch {
		case t.Location == nil:
			unlocated = append(unlocated, t)
		case !gone[t.Name]:
			keep = append(keep, t)
		}
	}

	return keep, unlocated
}

// strictGames pairs the i-th best host with the i-th worst visitor (1 vs N,
// 2 vs N-1, ...), as entry-round games of inst.
func strictGames(inst *bracket.Instance, hosts, visitors []Team) []matchup {
	k := inst.Key()
	n := min(len(hosts), len(visitors))
	out := make([]matchup, 0, n)
	for i := 0; i < n; i++ {
		h, v := hosts[i], visitors[len(visitors)-1-i]
		out = append(out, matchup{host: h, visitor: v, game: bracket.Game{
			Year:     k.Year,
			Sport:    k.Sport,
			Division: k.Division,
			Round:    inst.EntryRound(),
			TeamA:    h.Name,
			SeedA:    h.Seed,
			TeamB:    v.Name,
			SeedB:    v.Seed,
		}})
	}

	return out
}

// recordedGames collects the entry-round games between a host and a
// visitor, in the instance's game order. Games inside one band are
// skipped.
func recordedGames(inst *bracket.Instance, hosts, visitors []Team) []matchup {
	index := func(teams []Team) map[string]Team {
		m := make(map[string]Team, len(teams))
		for _, t := range teams {
			m[t.Name] = t
		}
		return m
	}
	hs, vs := index(hosts), index(visitors)

	var out []matchup
	entry := inst.EntryRound()
	for _, g := range inst.Games() {
		if g.Round != entry {
			continue
		}
		if h, ok := hs[g.TeamA]; ok {
			if v, ok := vs[g.TeamB]; ok {
				out = append(out, matchup{host: h, visitor: v, game: g})
			}
			continue
		}
		if h, ok := hs[g.TeamB]; ok {
			if v, ok := vs[g.TeamA]; ok {
				out = append(out, matchup{host: h, visitor: v, game: g})
			}
		}
	}

	return out
}

// SimulateAll runs Simulate over every instance of ds. Instances are
// processed concurrently, at most opts.Workers at a time; results keep
// instance-key order and totals are summed in that order, so the Summary
// does not depend on scheduling.
func SimulateAll(ctx context.Context, ds *bracket.Dataset, opts Options) (Summary, error) {
	insts := ds.Instances()
	schools := ds.Schools()
	results := make([]Result, len(insts))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, inst := range insts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Simulate(inst, schools, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", inst.Key(), err)
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Summarize(results), nil
}

// Summarize sums results in slice order.
func Summarize(results []Result) Summary {
	sum := Summary{
		Results: results,
		BySport: make(map[bracket.Sport]Totals),
	}
	for _, r := range results {
		sum.Totals = sum.Totals.add(r)
		sum.BySport[r.Instance.Sport] = sum.BySport[r.Instance.Sport].add(r)
		if r.Worse() {
			sum.Worse = append(sum.Worse, r.Instance)
		}
	}

	return sum
}

func (t Totals) add(r Result) Totals {
	t.Instances++
	t.CurrentMiles += r.CurrentMiles
	t.SimulatedMiles += r.SimulatedMiles
	t.SavingsMiles = t.CurrentMiles - t.SimulatedMiles
	t.PercentReduction = metric.Ratio(t.SavingsMiles, t.CurrentMiles)

	return t
}
