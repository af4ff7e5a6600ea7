package sample_test

import (
	"fmt"
	"testing"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = bracket.InstanceKey{Year: 2025, Sport: bracket.Baseball, Division: "6A"}

func field(n int) ([]string, bracket.Schools) {
	teams := make([]string, n)
	schools := make(bracket.Schools, n)
	for i := range teams {
		teams[i] = fmt.Sprintf("School %02d", i+1)
		schools[teams[i]] = bracket.School{Name: teams[i]}
	}

	return teams, schools
}

// TestSeedOrder checks the standard 1 vs 16, 8 vs 9 layout.
func TestSeedOrder(t *testing.T) {
	assert.Equal(t, []int{1, 2}, sample.SeedOrder(2))
	assert.Equal(t, []int{1, 16, 8, 9, 4, 13, 5, 12, 2, 15, 7, 10, 3, 14, 6, 11}, sample.SeedOrder(16))
}

// TestRoundsFor verifies labels count back from the Final.
func TestRoundsFor(t *testing.T) {
	cases := map[int][]bracket.Round{
		2:  {bracket.Final},
		4:  {bracket.Semifinals, bracket.Final},
		8:  {bracket.Quarterfinals, bracket.Semifinals, bracket.Final},
		16: {bracket.FirstRound, bracket.Quarterfinals, bracket.Semifinals, bracket.Final},
		32: bracket.Rounds,
	}
	for p, want := range cases {
		got, err := sample.RoundsFor(p)
		require.NoError(t, err, "p=%d", p)
		assert.Equal(t, want, got, "p=%d", p)
	}
	for _, p := range []int{0, 1, 12, 64} {
		_, err := sample.RoundsFor(p)
		assert.ErrorIs(t, err, sample.ErrFieldSize, "p=%d", p)
	}
}

// TestPlay_Chalk builds a 16-team bracket where every favorite wins.
func TestPlay_Chalk(t *testing.T) {
	teams, schools := field(16)
	games, err := sample.Play(key, teams, sample.Favorite)
	require.NoError(t, err)
	require.Len(t, games, 15)

	final := games[len(games)-1]
	assert.Equal(t, bracket.Final, final.Round)
	assert.Equal(t, "School 01", final.Winner)
	assert.Equal(t, 2, final.SeedB)
	assert.True(t, final.NeutralSite)

	ds, err := bracket.New(games, schools)
	require.NoError(t, err)
	inst, ok := ds.Instance(key)
	require.True(t, ok)
	assert.Equal(t, 16, inst.Size())
	assert.Equal(t, bracket.FirstRound, inst.EntryRound())
	assert.Len(t, inst.Participants(bracket.Quarterfinals), 8)
}

// TestPlay_Byes gives seeds 1..4 a bye in a 12-team field.
func TestPlay_Byes(t *testing.T) {
	teams, schools := field(12)
	games, err := sample.Play(key, teams, nil)
	require.NoError(t, err)
	assert.Len(t, games, 11)

	ds, err := bracket.New(games, schools)
	require.NoError(t, err)
	inst, _ := ds.Instance(key)
	assert.Equal(t, 4, inst.Byes())

	var first []int
	for _, p := range inst.Participants(bracket.FirstRound) {
		first = append(first, p.Seed)
	}
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11, 12}, first)

	r, ok := inst.EntryRoundOf(1)
	require.True(t, ok)
	assert.Equal(t, bracket.Quarterfinals, r)
}

// TestPlay_Upsets lets the worse seed win every game.
func TestPlay_Upsets(t *testing.T) {
	teams, schools := field(8)
	underdog := func(a, b bracket.Participant) bracket.Participant {
		if a.Seed > b.Seed {
			return a
		}

		return b
	}
	games, err := sample.Play(key, teams, underdog)
	require.NoError(t, err)
	assert.Equal(t, "School 08", games[len(games)-1].Winner)

	_, err = bracket.New(games, schools)
	require.NoError(t, err)
}

// TestPlay_FieldSize rejects fields outside 2..32.
func TestPlay_FieldSize(t *testing.T) {
	for _, n := range []int{0, 1, 33} {
		teams, _ := field(n)
		_, err := sample.Play(key, teams, nil)
		assert.ErrorIs(t, err, sample.ErrFieldSize, "n=%d", n)
	}
}

// TestGenerate_Deterministic checks equal seeds give equal datasets that
// pass validation.
func TestGenerate_Deterministic(t *testing.T) {
	opts := sample.DefaultOptions()
	opts.Years = []int{2024, 2025}

	g1, s1, err := sample.Generate(opts)
	require.NoError(t, err)
	g2, s2, err := sample.Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, g1, g2)
	assert.Equal(t, s1, s2)

	// 2 years × 2 sports × 5 divisions × 15 games
	assert.Len(t, g1, 300)
	assert.Len(t, s1, opts.Schools)

	ds, err := bracket.New(g1, s1)
	require.NoError(t, err)
	assert.Len(t, ds.Instances(), 20)

	for name, sc := range s1 {
		require.True(t, sc.Located(), name)
		assert.True(t, opts.Region.Contains(*sc.Location), name)
	}
}

// TestGenerate_Byes uses a field size that is not a power of two.
func TestGenerate_Byes(t *testing.T) {
	opts := sample.DefaultOptions()
	opts.Years = []int{2025}
	opts.FieldSize = 12
	games, schools, err := sample.Generate(opts)
	require.NoError(t, err)

	_, err = bracket.New(games, schools)
	require.NoError(t, err)
}

// TestGenerate_BadOptions covers option validation.
func TestGenerate_BadOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sample.Options)
		want   error
	}{
		{"field too large", func(o *sample.Options) { o.FieldSize = 40 }, sample.ErrFieldSize},
		{"no years", func(o *sample.Options) { o.Years = nil }, sample.ErrBadOptions},
		{"pool too small", func(o *sample.Options) { o.Schools = 20 }, sample.ErrBadOptions},
		{"bias", func(o *sample.Options) { o.UpsetBias = 1.5 }, sample.ErrBadOptions},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := sample.DefaultOptions()
			tc.mutate(&opts)
			_, _, err := sample.Generate(opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
