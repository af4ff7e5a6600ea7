package survival_test

import (
	"fmt"
	"testing"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/sample"
	"github.com/quarterback/oregontennis/survival"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eightUpsetsOne lets seed 8 beat seed 1; every other game goes chalk.
func eightUpsetsOne(a, b bracket.Participant) bracket.Participant {
	if a.Seed == 1 && b.Seed == 8 {
		return b
	}

	return sample.Favorite(a, b)
}

// build plays one bracket per decide rule, one year apart.
func build(t *testing.T, n int, rules ...sample.Decide) *bracket.Dataset {
	t.Helper()
	teams := make([]string, n)
	schools := make(bracket.Schools, n)
	for i := range teams {
		teams[i] = fmt.Sprintf("School %02d", i+1)
		schools[teams[i]] = bracket.School{Name: teams[i]}
	}
	var games []bracket.Game
	for i, rule := range rules {
		k := bracket.InstanceKey{Year: 2020 + i, Sport: bracket.Baseball, Division: "4A"}
		gs, err := sample.Play(k, teams, rule)
		require.NoError(t, err)
		games = append(games, gs...)
	}
	ds, err := bracket.New(games, schools)
	require.NoError(t, err)

	return ds
}

// TestRates_Conditional checks round-over-round rates on two 8-team brackets.
func TestRates_Conditional(t *testing.T) {
	ds := build(t, 8, sample.Favorite, eightUpsetsOne)
	tbl := survival.Rates(ds, survival.DefaultOptions())

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, tbl.Seeds())
	assert.Equal(t, []bracket.Round{bracket.Semifinals, bracket.Final}, tbl.Rounds())

	assert.Equal(t, 0.5, tbl.Rate(1, bracket.Semifinals).Float())
	assert.Equal(t, 1.0, tbl.Rate(1, bracket.Final).Float())
	assert.Equal(t, 0.5, tbl.Rate(8, bracket.Semifinals).Float())

	// seed 8 reached one semifinal and lost it: 0/1, a real zero
	v := tbl.Rate(8, bracket.Final)
	require.True(t, v.Defined())
	assert.Equal(t, 0.0, v.Float())

	// the entry round itself is not a survival cell
	_, ok := tbl[1][bracket.Quarterfinals]
	assert.False(t, ok)
}

// TestRates_UndefinedNotZero verifies a zero denominator stays undefined.
func TestRates_UndefinedNotZero(t *testing.T) {
	ds := build(t, 8, sample.Favorite, eightUpsetsOne)
	tbl := survival.Rates(ds, survival.DefaultOptions())

	// seed 5 never reached a semifinal, so its final rate is 0/0
	v := tbl.Rate(5, bracket.Final)
	assert.False(t, v.Defined())
	_, err := v.Get()
	assert.Error(t, err)

	col := tbl.Round(bracket.Final)
	assert.Len(t, col, 8)
	assert.False(t, col[6].Defined())
	assert.True(t, col[2].Defined())
}

// TestRates_FromEntry divides by entry-round appearances.
func TestRates_FromEntry(t *testing.T) {
	ds := build(t, 8, sample.Favorite, eightUpsetsOne)
	tbl := survival.Rates(ds, survival.Options{Basis: survival.FromEntry})

	assert.Equal(t, 0.5, tbl.Rate(1, bracket.Final).Float())
	v := tbl.Rate(5, bracket.Final)
	require.True(t, v.Defined())
	assert.Equal(t, 0.0, v.Float())
}

// TestRates_Byes starts bye seeds one round later.
func TestRates_Byes(t *testing.T) {
	ds := build(t, 12, sample.Favorite)
	tbl := survival.Rates(ds, survival.DefaultOptions())

	_, ok := tbl[1][bracket.Quarterfinals]
	assert.False(t, ok, "seed 1 enters in the quarterfinals")
	assert.Equal(t, 1.0, tbl.Rate(1, bracket.Semifinals).Float())

	assert.Equal(t, 1.0, tbl.Rate(5, bracket.Quarterfinals).Float())
	assert.Equal(t, 0.0, tbl.Rate(12, bracket.Quarterfinals).Float())
	assert.False(t, tbl.Rate(12, bracket.Semifinals).Defined())
}

// TestRecords exposes the raw counts behind the table.
func TestRecords(t *testing.T) {
	ds := build(t, 8, sample.Favorite, eightUpsetsOne)
	recs := survival.Records(ds)
	require.Len(t, recs, 8)

	one := recs[0]
	assert.Equal(t, 1, one.Seed)
	assert.Equal(t, 2, one.Instances)
	assert.Equal(t, map[bracket.Round]int{bracket.Quarterfinals: 2}, one.Entries)
	assert.Equal(t, map[bracket.Round]int{
		bracket.Quarterfinals: 2,
		bracket.Semifinals:    1,
		bracket.Final:         1,
	}, one.Appearances)
}
