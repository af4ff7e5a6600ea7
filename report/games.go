package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
)

var gamesHeader = []string{
	"year", "sport", "division", "round", "team1", "team1_seed", "team2", "team2_seed",
	"winner", "location", "neutral_site", "miles", "tier",
}

// WriteGamesCSV exports every game of ds in instance order with the
// distance between the two schools and its travel tier. Miles is empty and
// tier "unknown" when either school has no coordinates.
func WriteGamesCSV(w io.Writer, ds *bracket.Dataset, opts geo.Options, tiers geo.TierOptions) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(gamesHeader); err != nil {
		return err
	}
	schools := ds.Schools()
	for _, inst := range ds.Instances() {
		for _, g := range inst.Games() {
			d, ok := gameMiles(schools, g, opts)
			cell := ""
			if ok {
				cell = strconv.FormatFloat(d, 'f', 1, 64)
			}
			if err := cw.Write([]string{
				strconv.Itoa(g.Year), string(g.Sport), string(g.Division), g.Round.String(),
				g.TeamA, strconv.Itoa(g.SeedA), g.TeamB, strconv.Itoa(g.SeedB),
				g.Winner, g.Location, strconv.FormatBool(g.NeutralSite),
				cell, string(geo.Classify(d, ok, tiers)),
			}); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

func gameMiles(schools bracket.Schools, g bracket.Game, opts geo.Options) (float64, bool) {
	a, okA := schools.Resolve(g.TeamA)
	b, okB := schools.Resolve(g.TeamB)
	if !okA || !okB || !a.Located() || !b.Located() {
		return 0, false
	}
	d, err := geo.Distance(*a.Location, *b.Location, opts)

	return d, err == nil
}
