package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/config"
	"github.com/quarterback/oregontennis/peer"
	"github.com/quarterback/oregontennis/survival"
	"github.com/quarterback/oregontennis/travel"
	"github.com/quarterback/oregontennis/turnaround"
	"github.com/quarterback/oregontennis/upset"
)

// Runner computes Reports.
type Runner struct {
	cfg    config.Config
	logger *logrus.Logger
	now    func() time.Time
}

// NewRunner returns a Runner. A nil logger discards output.
func NewRunner(cfg config.Config, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}

	return &Runner{cfg: cfg, logger: logger, now: time.Now}
}

// WithClock replaces the time source of GeneratedAt.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now

	return r
}

// Run computes every section of the Report.
func (r *Runner) Run(ctx context.Context, ds *bracket.Dataset) (*Report, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	rep := &Report{
		RunID:       uuid.New(),
		GeneratedAt: r.now().UTC(),
		Games:       ds.Len(),
		Instances:   ds.Keys(),
	}
	log := r.logger.WithField("run_id", rep.RunID)
	log.WithFields(logrus.Fields{
		"games":     rep.Games,
		"instances": len(rep.Instances),
	}).Info("analysis started")

	sopts, err := r.cfg.SurvivalOptions()
	if err != nil {
		return nil, err
	}
	rep.Survival = Survival{
		Basis:   sopts.Basis.String(),
		Rates:   survival.Rates(ds, sopts),
		Records: survival.Records(ds),
	}
	rep.Survival.Rounds = rep.Survival.Rates.Rounds()
	log.WithField("seeds", len(rep.Survival.Rates.Seeds())).Debug("survival rates computed")

	if rep.Peer, err = r.peer(rep.Survival.Rates); err != nil {
		return nil, err
	}
	if !rep.Peer.OK() {
		log.WithField("band", rep.Peer.Band).Warn("peer group skipped: " + rep.Peer.Error)
	}

	if rep.Travel, err = r.simulate(ctx, ds, log); err != nil {
		return nil, err
	}

	rounds, err := r.cfg.UpsetRoundValues()
	if err != nil {
		return nil, err
	}
	rep.Upset = Upset{
		LowBand: r.cfg.LowSeedBand,
		Cells:   upset.Ordered(upset.Stats(ds, r.cfg.LowSeedBand, rounds)),
		Decided: upset.Ordered(upset.Decided(ds)),
	}

	burden, err := turnaround.Analyze(ds, r.cfg.TurnaroundOptions())
	if err != nil {
		return nil, fmt.Errorf("analysis: turnaround: %w", err)
	}
	rep.Burden = &burden
	if burden.Skipped > 0 {
		log.WithField("games", burden.Skipped).Warn("turnaround skipped games without coordinates")
	}

	log.WithFields(logrus.Fields{
		"savings_miles": rep.Travel.SavingsMiles,
		"reduction":     rep.Travel.PercentReduction.Percent(1),
	}).Info("analysis finished")

	return rep, nil
}

// peer evaluates the configured band at the configured round. Missing data
// is recorded in the cell; bad settings are returned.
func (r *Runner) peer(rates survival.Table) (PeerCell, error) {
	round, err := r.cfg.PeerRoundValue()
	if err != nil {
		return PeerCell{}, err
	}
	cell := PeerCell{Band: r.cfg.PeerBand, Round: round}
	res, err := peer.Stats(rates.Round(round), r.cfg.PeerBand, r.cfg.PeerOptions())
	switch {
	case err == nil:
		cell.Result = &res
	case errors.Is(err, peer.ErrInsufficientData), errors.Is(err, peer.ErrEmptyBand):
		cell.Error = err.Error()
	default:
		return PeerCell{}, fmt.Errorf("analysis: peer: %w", err)
	}

	return cell, nil
}

// Simulate runs the travel simulation alone.
func (r *Runner) Simulate(ctx context.Context, ds *bracket.Dataset) (travel.Summary, error) {
	return r.simulate(ctx, ds, logrus.NewEntry(r.logger))
}

func (r *Runner) simulate(ctx context.Context, ds *bracket.Dataset, log *logrus.Entry) (travel.Summary, error) {
	opts, err := r.cfg.TravelOptions()
	if err != nil {
		return travel.Summary{}, err
	}
	sum, err := travel.SimulateAll(ctx, ds, opts)
	if err != nil {
		return travel.Summary{}, fmt.Errorf("analysis: travel: %w", err)
	}
	for _, res := range sum.Results {
		entry := log.WithField("instance", res.Instance.String())
		if len(res.Unlocated) > 0 {
			entry.WithFields(logrus.Fields{
				"teams":   len(res.Unlocated),
				"dropped": len(res.Dropped),
			}).Warn("teams without coordinates excluded")
		}
		if res.Worse() {
			entry.WithField("savings_miles", res.SavingsMiles).Info("greedy pairing travels further")
		}
	}

	return sum, nil
}
