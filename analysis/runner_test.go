package analysis_test

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarterback/oregontennis/analysis"
	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/config"
	"github.com/quarterback/oregontennis/sample"
)

func generated(t *testing.T, fieldSize int) *bracket.Dataset {
	t.Helper()
	opts := sample.DefaultOptions()
	opts.Seed = 11
	opts.Years = []int{2024, 2025}
	opts.Divisions = []bracket.Division{"6A", "5A"}
	opts.FieldSize = fieldSize
	opts.Schools = 2 * fieldSize
	games, schools, err := sample.Generate(opts)
	require.NoError(t, err)
	ds, err := bracket.New(games, schools)
	require.NoError(t, err)

	return ds
}

// TestRun_Sections checks every section of a full run and the totals that
// tie them together.
func TestRun_Sections(t *testing.T) {
	ds := generated(t, 16)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rep, err := analysis.NewRunner(config.Default(), logger).
		WithClock(func() time.Time { return at }).
		Run(context.Background(), ds)
	require.NoError(t, err)

	assert.NotEqual(t, [16]byte{}, [16]byte(rep.RunID))
	assert.Equal(t, at, rep.GeneratedAt)
	assert.Equal(t, ds.Len(), rep.Games)
	assert.Len(t, rep.Instances, 8)

	assert.Equal(t, "conditional", rep.Survival.Basis)
	assert.Equal(t, []bracket.Round{bracket.Quarterfinals, bracket.Semifinals, bracket.Final}, rep.Survival.Rounds)
	assert.Len(t, rep.Survival.Records, 16)

	require.True(t, rep.Peer.OK(), rep.Peer.Error)
	assert.Equal(t, bracket.Quarterfinals, rep.Peer.Round)
	assert.Equal(t, 8, rep.Peer.Result.N+len(rep.Peer.Result.Excluded))

	require.Len(t, rep.Travel.Results, 8)
	var current, simulated float64
	for _, r := range rep.Travel.Results {
		current += r.CurrentMiles
		simulated += r.SimulatedMiles
		assert.Len(t, r.Simulated, 8)
	}
	assert.InDelta(t, current, rep.Travel.CurrentMiles, 1e-6)
	assert.InDelta(t, simulated, rep.Travel.SimulatedMiles, 1e-6)
	assert.InDelta(t, current-simulated, rep.Travel.SavingsMiles, 1e-6)

	require.Len(t, rep.Upset.Cells, 3)
	for _, c := range rep.Upset.Cells {
		assert.LessOrEqual(t, c.Count, c.Total)
	}
	assert.Equal(t, 8*8, rep.Upset.Cells[0].Total)
	assert.Equal(t, 8*2, rep.Upset.Cells[2].Total)

	require.NotNil(t, rep.Burden)
	assert.Zero(t, rep.Burden.Skipped)

	var started, finished bool
	for _, e := range hook.AllEntries() {
		assert.Equal(t, rep.RunID, e.Data["run_id"], e.Message)
		started = started || e.Message == "analysis started"
		finished = finished || e.Message == "analysis finished"
	}
	assert.True(t, started)
	assert.True(t, finished)
}

// TestRun_PeerDegrades keeps the run alive when the peer band has no data.
func TestRun_PeerDegrades(t *testing.T) {
	ds := generated(t, 4)
	logger, hook := test.NewNullLogger()

	rep, err := analysis.NewRunner(config.Default(), logger).Run(context.Background(), ds)
	require.NoError(t, err)
	assert.False(t, rep.Peer.OK())
	assert.Contains(t, rep.Peer.Error, "fewer than 2")
	assert.NotEmpty(t, rep.Travel.Results)
	assert.NotNil(t, rep.Burden)

	var warned bool
	for _, e := range hook.AllEntries() {
		warned = warned || e.Level == logrus.WarnLevel
	}
	assert.True(t, warned)
}

// TestRun_BadConfig aborts before computing anything.
func TestRun_BadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Baseline = "optimal"
	_, err := analysis.NewRunner(cfg, nil).Run(context.Background(), generated(t, 8))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestRun_Cancelled stops at the travel stage.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := analysis.NewRunner(config.Default(), nil).Run(ctx, generated(t, 8))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSimulate_Deterministic gives the same summary for any worker count.
func TestSimulate_Deterministic(t *testing.T) {
	ds := generated(t, 12)
	one := config.Default()
	one.Workers = 1
	many := config.Default()
	many.Workers = 8

	a, err := analysis.NewRunner(one, nil).Simulate(context.Background(), ds)
	require.NoError(t, err)
	b, err := analysis.NewRunner(many, nil).Simulate(context.Background(), ds)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
