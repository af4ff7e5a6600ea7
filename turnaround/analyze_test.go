package turnaround_test

import (
	"testing"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
	"github.com/quarterback/oregontennis/sample"
	"github.com/quarterback/oregontennis/turnaround"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	k2025 = bracket.InstanceKey{Year: 2025, Sport: bracket.Baseball, Division: "4A"}
	k2024 = bracket.InstanceKey{Year: 2024, Sport: bracket.Softball, Division: "3A"}
)

func mustPoint(t *testing.T, lat, lon float64) *geo.Point {
	t.Helper()
	p, err := geo.NewPoint(lat, lon)
	require.NoError(t, err)

	return &p
}

// fixture: a chalk 4-team bracket (Pendleton, Jesuit, Ontario, Hermiston)
// plus a 2-team final involving Burns, whose location is unknown.
func fixture(t *testing.T) (*bracket.Dataset, bracket.Schools) {
	t.Helper()
	schools, err := bracket.NewSchools(
		bracket.School{Name: "Pendleton", Location: mustPoint(t, 45.6721, -118.7886)},
		bracket.School{Name: "Jesuit", Location: mustPoint(t, 45.4914, -122.7837)},
		bracket.School{Name: "Ontario", Location: mustPoint(t, 44.0265, -116.9629)},
		bracket.School{Name: "Hermiston", Location: mustPoint(t, 45.8401, -119.2890)},
		bracket.School{Name: "Burns"},
	)
	require.NoError(t, err)

	games, err := sample.Play(k2025, []string{"Pendleton", "Jesuit", "Ontario", "Hermiston"}, sample.Favorite)
	require.NoError(t, err)
	more, err := sample.Play(k2024, []string{"Jesuit", "Burns"}, sample.Favorite)
	require.NoError(t, err)

	ds, err := bracket.New(append(games, more...), schools)
	require.NoError(t, err)

	return ds, schools
}

func miles(t *testing.T, schools bracket.Schools, a, b string) float64 {
	t.Helper()
	d, err := geo.Miles(*schools[a].Location, *schools[b].Location)
	require.NoError(t, err)

	return d
}

// TestAnalyze_Burdens checks legs, totals and the venue split.
func TestAnalyze_Burdens(t *testing.T) {
	ds, schools := fixture(t)
	rep, err := turnaround.Analyze(ds, turnaround.DefaultOptions())
	require.NoError(t, err)

	jo := miles(t, schools, "Jesuit", "Ontario")
	pj := miles(t, schools, "Pendleton", "Jesuit")
	assert.InDelta(t, 302.9, jo, 0.1)
	assert.InDelta(t, 193.6, pj, 0.1)

	assert.Equal(t, 1, rep.Skipped)
	require.Len(t, rep.Burdens, 3)
	assert.Equal(t, []string{"Jesuit", "Ontario", "Pendleton"},
		[]string{rep.Burdens[0].Team, rep.Burdens[1].Team, rep.Burdens[2].Team})

	jesuit := rep.Burdens[0]
	assert.Equal(t, k2025, jesuit.Instance)
	require.Len(t, jesuit.Legs, 2)
	assert.Equal(t, turnaround.Leg{Round: bracket.Semifinals, Opponent: "Ontario", Miles: jo, Home: true, Tier: geo.TierRed}, jesuit.Legs[0])
	assert.Equal(t, turnaround.Leg{Round: bracket.Final, Opponent: "Pendleton", Miles: pj, Home: false, Tier: geo.TierYellow}, jesuit.Legs[1])
	assert.InDelta(t, jo+pj, jesuit.Miles, 1e-9)

	// the final is neutral: neither side is home
	assert.False(t, rep.Burdens[2].Legs[0].Home)

	assert.Equal(t, 3, rep.Total.Teams)
	assert.Equal(t, 1, rep.Total.Multi)
	assert.Equal(t, 4, rep.Total.Legs)
	assert.InDelta(t, 2*jo+2*pj, rep.Total.Miles, 1e-9)
	assert.InDelta(t, 1.0/3, rep.Total.MultiRate.Float(), 1e-12)

	assert.Equal(t, 1, rep.HomeAway.HomeLegs)
	assert.Equal(t, 3, rep.HomeAway.AwayLegs)
	assert.InDelta(t, jo, rep.HomeAway.HomeMiles, 1e-9)
	assert.InDelta(t, (jo+2*pj)/3, rep.HomeAway.AvgAwayMiles.Float(), 1e-9)

	assert.Equal(t, rep.Total, rep.ByDivision["4A"])
	assert.Equal(t, rep.Total, rep.ByYear[2025])
	_, ok := rep.ByYear[2024]
	assert.False(t, ok)

	require.Len(t, rep.Worst, 1)
	assert.Equal(t, "Jesuit", rep.Worst[0].Team)
}

// TestAnalyze_Region ranks eastern schools by away miles.
func TestAnalyze_Region(t *testing.T) {
	ds, schools := fixture(t)
	rep, err := turnaround.Analyze(ds, turnaround.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "Eastern Oregon", rep.Region)
	require.Len(t, rep.RegionRows, 2)
	assert.Equal(t, "Ontario", rep.RegionRows[0].Team)
	assert.InDelta(t, miles(t, schools, "Jesuit", "Ontario"), rep.RegionRows[0].AwayMiles, 1e-9)
	assert.Equal(t, "Pendleton", rep.RegionRows[1].Team)
	assert.Equal(t, 1, rep.RegionRows[1].Appearances)
	assert.Equal(t, rep.RegionRows[1].AwayMiles, rep.RegionRows[1].AvgPerRun.Float())
}

// TestAnalyze_Threshold counts every located game at 0 mi.
func TestAnalyze_Threshold(t *testing.T) {
	ds, _ := fixture(t)
	opts := turnaround.DefaultOptions()
	opts.LongHaulMiles = 0
	rep, err := turnaround.Analyze(ds, opts)
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Total.Legs)
	assert.Equal(t, 4, rep.Total.Teams)
	// Pendleton now has the semifinal and the final
	assert.Equal(t, 2, rep.Total.Multi)

	opts.LongHaulMiles = 1000
	rep, err = turnaround.Analyze(ds, opts)
	require.NoError(t, err)
	assert.Empty(t, rep.Burdens)
	assert.False(t, rep.Total.MultiRate.Defined())
	assert.False(t, rep.HomeAway.AvgAwayMiles.Defined())
}

// TestAnalyze_WorstCases caps and orders the multi-leg list.
func TestAnalyze_WorstCases(t *testing.T) {
	ds, _ := fixture(t)
	opts := turnaround.DefaultOptions()
	opts.LongHaulMiles = 0
	opts.WorstCases = 1
	rep, err := turnaround.Analyze(ds, opts)
	require.NoError(t, err)
	require.Len(t, rep.Worst, 1)
	assert.Equal(t, "Jesuit", rep.Worst[0].Team)
}

// TestAnalyze_BadOptions rejects negative settings.
func TestAnalyze_BadOptions(t *testing.T) {
	ds, _ := fixture(t)
	opts := turnaround.DefaultOptions()
	opts.MultiLeg = 0
	_, err := turnaround.Analyze(ds, opts)
	assert.ErrorIs(t, err, turnaround.ErrBadOptions)
}
