package turnaround

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
	"github.com/quarterback/oregontennis/metric"
)

type burdenKey struct {
	team string
	inst bracket.InstanceKey
}

// Analyze collects long-haul legs over ds and aggregates them.
func Analyze(ds *bracket.Dataset, opts Options) (Report, error) {
	if opts.LongHaulMiles < 0 || math.IsNaN(opts.LongHaulMiles) || opts.MultiLeg < 1 || opts.WorstCases < 0 {
		return Report{}, fmt.Errorf("%w: long-haul %g mi, multi-leg %d, worst %d",
			ErrBadOptions, opts.LongHaulMiles, opts.MultiLeg, opts.WorstCases)
	}
	rep := Report{
		ByDivision: make(map[bracket.Division]Group),
		ByYear:     make(map[int]Group),
		Region:     opts.Region.Name,
	}
	schools := ds.Schools()

	// Stage 1: legs per (team, instance), in instance then game order.
	var order []burdenKey
	legs := make(map[burdenKey][]Leg)
	for _, inst := range ds.Instances() {
		for _, g := range inst.Games() {
			a, okA := schools.Resolve(g.TeamA)
			b, okB := schools.Resolve(g.TeamB)
			if !okA || !okB || !a.Located() || !b.Located() {
				rep.Skipped++
				continue
			}
			miles, err := geo.Distance(*a.Location, *b.Location, opts.Geo)
			if err != nil {
				return Report{}, fmt.Errorf("turnaround: %s: %w", g, err)
			}
			if miles < opts.LongHaulMiles {
				continue
			}
			tier := geo.Classify(miles, true, opts.Tiers)
			host, visitor := g.Host(), g.Visitor()
			for _, side := range [2]struct {
				team, opp string
				home      bool
			}{
				{host.Team, visitor.Team, !g.NeutralSite},
				{visitor.Team, host.Team, false},
			} {
				k := burdenKey{team: side.team, inst: inst.Key()}
				if _, seen := legs[k]; !seen {
					order = append(order, k)
				}
				legs[k] = append(legs[k], Leg{Round: g.Round, Opponent: side.opp, Miles: miles, Home: side.home, Tier: tier})
			}
		}
	}
	slices.SortStableFunc(order, func(a, b burdenKey) int {
		if a.inst != b.inst {
			if a.inst.Less(b.inst) {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.team, b.team)
	})

	// Stage 2: aggregates.
	region := make(map[string]*RegionTeam)
	for _, k := range order {
		b := Burden{Team: k.team, Instance: k.inst, Legs: legs[k]}
		for _, l := range b.Legs {
			b.Miles += l.Miles
			if l.Home {
				rep.HomeAway.HomeLegs++
				rep.HomeAway.HomeMiles += l.Miles
			} else {
				rep.HomeAway.AwayLegs++
				rep.HomeAway.AwayMiles += l.Miles
			}
		}
		rep.Burdens = append(rep.Burdens, b)
		multi := len(b.Legs) >= opts.MultiLeg
		rep.Total = rep.Total.add(b, multi)
		rep.ByDivision[k.inst.Division] = rep.ByDivision[k.inst.Division].add(b, multi)
		rep.ByYear[k.inst.Year] = rep.ByYear[k.inst.Year].add(b, multi)
		if multi {
			rep.Worst = append(rep.Worst, b)
		}

		sc, ok := schools.Resolve(k.team)
		if !ok || !sc.Located() || !opts.Region.Contains(*sc.Location) {
			continue
		}
		row := region[k.team]
		if row == nil {
			row = &RegionTeam{Team: k.team}
			region[k.team] = row
		}
		row.Appearances++
		for _, l := range b.Legs {
			if !l.Home {
				row.AwayMiles += l.Miles
			}
		}
	}
	rep.HomeAway.AvgAwayMiles = metric.Ratio(rep.HomeAway.AwayMiles, float64(rep.HomeAway.AwayLegs))

	// Stage 3: rankings.
	slices.SortStableFunc(rep.Worst, func(a, b Burden) int { return cmp.Compare(b.Miles, a.Miles) })
	if opts.WorstCases > 0 && len(rep.Worst) > opts.WorstCases {
		rep.Worst = rep.Worst[:opts.WorstCases]
	}
	for _, row := range region {
		row.AvgPerRun = metric.Ratio(row.AwayMiles, float64(row.Appearances))
		rep.RegionRows = append(rep.RegionRows, *row)
	}
	slices.SortFunc(rep.RegionRows, func(a, b RegionTeam) int {
		if c := cmp.Compare(b.AwayMiles, a.AwayMiles); c != 0 {
			return c
		}
		return cmp.Compare(a.Team, b.Team)
	})

	return rep, nil
}

func (g Group) add(b Burden, multi bool) Group {
	g.Teams++
	g.Legs += len(b.Legs)
	g.Miles += b.Miles
	if multi {
		g.Multi++
	}
	g.MultiRate = metric.Count(g.Multi, g.Teams)
	g.AvgMiles = metric.Ratio(g.Miles, float64(g.Teams))

	return g
}
