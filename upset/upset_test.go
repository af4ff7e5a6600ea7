package upset_test

import (
	"fmt"
	"testing"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/peer"
	"github.com/quarterback/oregontennis/sample"
	"github.com/quarterback/oregontennis/upset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nineOverEight lets seed 9 win its first-round game.
func nineOverEight(a, b bracket.Participant) bracket.Participant {
	if a.Seed == 8 && b.Seed == 9 {
		return b
	}

	return sample.Favorite(a, b)
}

type fixture struct {
	year int
	size int
	rule sample.Decide
}

func build(t *testing.T, cases []fixture) *bracket.Dataset {
	t.Helper()
	schools := bracket.Schools{}
	var games []bracket.Game
	for _, sp := range cases {
		teams := make([]string, sp.size)
		for i := range teams {
			teams[i] = fmt.Sprintf("School %02d", i+1)
			schools[teams[i]] = bracket.School{Name: teams[i]}
		}
		k := bracket.InstanceKey{Year: sp.year, Sport: bracket.Softball, Division: "3A"}
		gs, err := sample.Play(k, teams, sp.rule)
		require.NoError(t, err)
		games = append(games, gs...)
	}
	ds, err := bracket.New(games, schools)
	require.NoError(t, err)

	return ds
}

// TestStats_QuarterfinalRate: 5 low-seed quarterfinal appearances out of
// 166 gives ≈ 3.01%.
func TestStats_QuarterfinalRate(t *testing.T) {
	// 20 sixteen-team brackets put 160 teams in the quarterfinals, a
	// six-team bracket 4 more and a five-team bracket 2 more.
	var cases []fixture
	for i := 0; i < 20; i++ {
		rule := sample.Favorite
		if i < 5 {
			rule = nineOverEight
		}
		cases = append(cases, fixture{year: 2000 + i, size: 16, rule: rule})
	}
	cases = append(cases, fixture{2020, 6, sample.Favorite}, fixture{2021, 5, sample.Favorite})
	ds := build(t, cases)

	cells := upset.Stats(ds, peer.Band(9, 16), upset.DefaultRounds())
	qf := cells[bracket.Quarterfinals]
	assert.Equal(t, 5, qf.Count)
	assert.Equal(t, 166, qf.Total)
	require.True(t, qf.Rate.Defined())
	assert.InDelta(t, 0.0301, qf.Rate.Float(), 1e-4)

	// seed 9 loses to seed 1 in every quarterfinal under chalk
	sf := cells[bracket.Semifinals]
	assert.Equal(t, 0, sf.Count)
	assert.True(t, sf.Rate.Defined())
	assert.Equal(t, 0.0, sf.Rate.Float())
}

// TestStats_UndefinedRound reports an unplayed round as undefined.
func TestStats_UndefinedRound(t *testing.T) {
	ds := build(t, []fixture{{2025, 8, sample.Favorite}})
	cells := upset.Stats(ds, peer.Band(5, 8), []bracket.Round{bracket.SecondRound, bracket.Quarterfinals})

	r2 := cells[bracket.SecondRound]
	assert.Equal(t, 0, r2.Total)
	assert.False(t, r2.Rate.Defined())

	qf := cells[bracket.Quarterfinals]
	assert.Equal(t, 4, qf.Count)
	assert.Equal(t, 8, qf.Total)
	assert.Equal(t, 0.5, qf.Rate.Float())
}

// TestStats_AppearancesNotInstances counts two low seeds in one round twice.
func TestStats_AppearancesNotInstances(t *testing.T) {
	lowWins := func(a, b bracket.Participant) bracket.Participant {
		if b.Seed >= 3 {
			return b
		}
		return a
	}
	// 4-team bracket: 3 beats 2 and 4 beats 1, so the final is 3 vs 4
	ds := build(t, []fixture{{2025, 4, lowWins}})
	cells := upset.Stats(ds, []int{3, 4}, []bracket.Round{bracket.Final})
	assert.Equal(t, 2, cells[bracket.Final].Count)
	assert.Equal(t, 2, cells[bracket.Final].Total)
}

// TestDecided counts games won by the worse seed.
func TestDecided(t *testing.T) {
	ds := build(t, []fixture{{2024, 16, nineOverEight}, {2025, 16, sample.Favorite}})
	cells := upset.Decided(ds)

	r1 := cells[bracket.FirstRound]
	assert.Equal(t, 1, r1.Count)
	assert.Equal(t, 16, r1.Total)
	assert.InDelta(t, 1.0/16, r1.Rate.Float(), 1e-12)

	assert.Equal(t, 0, cells[bracket.Final].Count)
	assert.Equal(t, 2, cells[bracket.Final].Total)

	rounds := make([]bracket.Round, 0)
	for _, c := range upset.Ordered(cells) {
		rounds = append(rounds, c.Round)
	}
	assert.Equal(t, []bracket.Round{bracket.FirstRound, bracket.Quarterfinals, bracket.Semifinals, bracket.Final}, rounds)
}
