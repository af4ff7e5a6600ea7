package report

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/quarterback/oregontennis/analysis"
	"github.com/quarterback/oregontennis/metric"
	"github.com/quarterback/oregontennis/travel"
	"github.com/quarterback/oregontennis/turnaround"
	"github.com/quarterback/oregontennis/upset"
)

// miles rounds to whole miles: 1234.6 → "1,235".
func miles(f float64) string {
	return humanize.Commaf(math.Round(f))
}

func count(n int) string { return humanize.Comma(int64(n)) }

func pct(v metric.Value) string { return v.Percent(1) }

func avg(v metric.Value) string {
	if !v.Defined() {
		return "n/a"
	}

	return miles(v.Float())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}

// bandLabel formats a contiguous band as "9–16" and anything else as a list.
func bandLabel(band []int) string {
	s := slices.Compact(slices.Sorted(slices.Values(band)))
	if len(s) == 0 {
		return "none"
	}
	if s[len(s)-1]-s[0] == len(s)-1 {
		if len(s) == 1 {
			return strconv.Itoa(s[0])
		}

		return fmt.Sprintf("%d–%d", s[0], s[len(s)-1])
	}
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}

// table writes a Markdown table.
type table struct {
	w    *bufio.Writer
	cols int
}

func newTable(w *bufio.Writer, header ...string) *table {
	t := &table{w: w, cols: len(header)}
	t.row(header...)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
		if i > 0 {
			sep[i] = "---:"
		}
	}
	t.row(sep...)

	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintf(t.w, "| %s |\n", strings.Join(cells, " | "))
}

func (t *table) end() { t.w.WriteString("\n") }

// WriteMarkdown renders rep as a Markdown document.
func WriteMarkdown(w io.Writer, rep *analysis.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Bracket travel and competitive risk\n\n")
	fmt.Fprintf(bw, "Run `%s`, generated %s. %s games in %s tournaments.\n\n",
		rep.RunID, rep.GeneratedAt.Format(time.RFC3339), count(rep.Games), count(len(rep.Instances)))

	writeSurvival(bw, rep.Survival)
	writePeer(bw, rep.Peer)
	writeTravel(bw, rep.Travel)
	writeUpset(bw, rep.Upset)
	if rep.Burden != nil {
		writeTurnaround(bw, rep.Burden)
	}

	return bw.Flush()
}

func writeSurvival(w *bufio.Writer, s analysis.Survival) {
	fmt.Fprintf(w, "## Seed survival (%s)\n\n", s.Basis)
	if len(s.Rounds) == 0 {
		w.WriteString("No rounds after entry.\n\n")
		return
	}
	header := []string{"Seed"}
	for _, r := range s.Rounds {
		header = append(header, r.Short())
	}
	t := newTable(w, header...)
	for _, seed := range s.Rates.Seeds() {
		cells := []string{strconv.Itoa(seed)}
		for _, r := range s.Rounds {
			cells = append(cells, pct(s.Rates.Rate(seed, r)))
		}
		t.row(cells...)
	}
	t.end()
}

func writePeer(w *bufio.Writer, c analysis.PeerCell) {
	w.WriteString("## Peer group\n\n")
	fmt.Fprintf(w, "Seeds %s, %s rates.\n\n", bandLabel(c.Band), c.Round)
	if !c.OK() {
		fmt.Fprintf(w, "n/a: %s\n\n", c.Error)
		return
	}
	r := c.Result
	t := newTable(w, "Mean", "Std dev", "Peer group", "Seeds used", "Excluded")
	t.row(pct(metric.Of(r.Mean)), pct(metric.Of(r.StdDev)), yesNo(r.IsPeerGroup), strconv.Itoa(r.N), bandLabel(r.Excluded))
	t.end()
}

func writeTravel(w *bufio.Writer, s travel.Summary) {
	w.WriteString("## Travel re-pairing\n\n")
	t := newTable(w, "Tournament", "Current mi", "Simulated mi", "Saved mi", "Reduction", "Unlocated")
	for _, r := range s.Results {
		t.row(r.Instance.String(), miles(r.CurrentMiles), miles(r.SimulatedMiles),
			miles(r.SavingsMiles), pct(r.PercentReduction), strconv.Itoa(len(r.Unlocated)))
	}
	t.row("**Total**", miles(s.CurrentMiles), miles(s.SimulatedMiles),
		miles(s.SavingsMiles), pct(s.PercentReduction), "")
	t.end()

	if len(s.BySport) > 0 {
		t = newTable(w, "Sport", "Tournaments", "Current mi", "Simulated mi", "Saved mi", "Reduction")
		for _, sport := range slices.Sorted(maps.Keys(s.BySport)) {
			tot := s.BySport[sport]
			t.row(string(sport), strconv.Itoa(tot.Instances), miles(tot.CurrentMiles),
				miles(tot.SimulatedMiles), miles(tot.SavingsMiles), pct(tot.PercentReduction))
		}
		t.end()
	}
	if len(s.Worse) > 0 {
		w.WriteString("Greedy re-pairing travels further in:\n\n")
		for _, k := range s.Worse {
			fmt.Fprintf(w, "- %s\n", k)
		}
		w.WriteString("\n")
	}
}

func writeUpset(w *bufio.Writer, u analysis.Upset) {
	fmt.Fprintf(w, "## Upsets\n\nAppearances by seeds %s:\n\n", bandLabel(u.LowBand))
	writeCells(w, u.Cells, "Low seeds", "Appearances")
	w.WriteString("Games won by the worse seed:\n\n")
	writeCells(w, u.Decided, "Upsets", "Decided games")
}

func writeCells(w *bufio.Writer, cells []upset.Cell, countCol, totalCol string) {
	t := newTable(w, "Round", countCol, totalCol, "Rate")
	for _, c := range cells {
		t.row(c.Round.String(), count(c.Count), count(c.Total), pct(c.Rate))
	}
	t.end()
}

func writeTurnaround(w *bufio.Writer, r *turnaround.Report) {
	w.WriteString("## Long-haul turnarounds\n\n")
	t := newTable(w, "Group", "Teams", "Multi-leg", "Burden", "Legs", "Miles", "Avg mi")
	groupRow := func(name string, g turnaround.Group) {
		t.row(name, count(g.Teams), count(g.Multi), pct(g.MultiRate), count(g.Legs), miles(g.Miles), avg(g.AvgMiles))
	}
	groupRow("**All**", r.Total)
	for _, d := range slices.Sorted(maps.Keys(r.ByDivision)) {
		groupRow(string(d), r.ByDivision[d])
	}
	for _, y := range slices.Sorted(maps.Keys(r.ByYear)) {
		groupRow(strconv.Itoa(y), r.ByYear[y])
	}
	t.end()

	ha := r.HomeAway
	t = newTable(w, "Venue", "Legs", "Miles")
	t.row("Home", count(ha.HomeLegs), miles(ha.HomeMiles))
	t.row("Away", count(ha.AwayLegs), miles(ha.AwayMiles))
	t.end()
	fmt.Fprintf(w, "Average away leg: %s mi.\n\n", avg(ha.AvgAwayMiles))

	if len(r.Worst) > 0 {
		t = newTable(w, "Team", "Tournament", "Legs", "Route", "Miles")
		for _, b := range r.Worst {
			t.row(b.Team, b.Instance.String(), strconv.Itoa(len(b.Legs)), route(b), miles(b.Miles))
		}
		t.end()
	}
	if len(r.RegionRows) > 0 {
		fmt.Fprintf(w, "%s schools:\n\n", r.Region)
		t = newTable(w, "Team", "Appearances", "Away mi", "Avg per run")
		for _, rt := range r.RegionRows {
			t.row(rt.Team, count(rt.Appearances), miles(rt.AwayMiles), avg(rt.AvgPerRun))
		}
		t.end()
	}
	if r.Skipped > 0 {
		fmt.Fprintf(w, "%s games skipped for missing coordinates.\n\n", count(r.Skipped))
	}
}

// route lists the legs of b as "QF @ Pendleton (120 mi), SF vs Jesuit (194 mi)".
func route(b turnaround.Burden) string {
	parts := make([]string, len(b.Legs))
	for i, l := range b.Legs {
		at := "@"
		if l.Home {
			at = "vs"
		}
		parts[i] = fmt.Sprintf("%s %s %s (%s mi)", l.Round.Short(), at, l.Opponent, miles(l.Miles))
	}

	return strings.Join(parts, ", ")
}
