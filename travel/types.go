package travel

import (
	"errors"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
	"github.com/quarterback/oregontennis/metric"
)

var (
	// ErrBandOverlap indicates a seed listed in both HostBand and VisitorBand.
	ErrBandOverlap = errors.New("travel: host and visitor bands overlap")

	// ErrUnlocated indicates a distance request for a team without coordinates.
	ErrUnlocated = errors.New("travel: team has no coordinates")
)

// Baseline selects how current mileage is measured.
type Baseline int

const (
	// Recorded sums the entry-round games that pair a host with a visitor.
	Recorded Baseline = iota

	// Strict pairs hosts and visitors by convention (best host vs worst
	// visitor, …) without looking at recorded games.
	Strict
)

// Options configures Simulate and SimulateAll.
type Options struct {
	// HostBand and VisitorBand select seeds explicitly. When both are empty
	// the entry-round field is split at half its size; when one is empty it
	// takes the seeds the other leaves.
	HostBand    []int
	VisitorBand []int

	// Baseline picks the current-mileage source.
	Baseline Baseline

	// Geo configures distance evaluation.
	Geo geo.Options

	// Workers bounds SimulateAll parallelism; ≤ 0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns half-field bands, the recorded baseline and the
// default Earth radius.
func DefaultOptions() Options {
	return Options{
		Baseline: Recorded,
		Geo:      geo.DefaultOptions(),
	}
}

// Team is one entry-round participant. Location is nil when unknown.
type Team struct {
	Name     string     `json:"name" yaml:"name"`
	Seed     int        `json:"seed" yaml:"seed"`
	Location *geo.Point `json:"-" yaml:"-"`
}

// Pair is one host-visitor matchup with its one-way distance.
type Pair struct {
	Host    Team    `json:"host" yaml:"host"`
	Visitor Team    `json:"visitor" yaml:"visitor"`
	Miles   float64 `json:"miles" yaml:"miles"`
}

// DistanceFunc measures the trip from a host to a visitor.
type DistanceFunc func(host, visitor Team) (float64, error)

// Result is the simulation of one instance.
type Result struct {
	Instance bracket.InstanceKey `json:"instance" yaml:"instance"`

	Current   []Pair `json:"current" yaml:"current"`
	Simulated []Pair `json:"simulated" yaml:"simulated"`

	CurrentMiles     float64      `json:"current_miles" yaml:"current_miles"`
	SimulatedMiles   float64      `json:"simulated_miles" yaml:"simulated_miles"`
	SavingsMiles     float64      `json:"savings_miles" yaml:"savings_miles"`
	PercentReduction metric.Value `json:"percent_reduction" yaml:"percent_reduction"`

	// Unlocated lists field teams without coordinates.
	Unlocated []Team `json:"unlocated,omitempty" yaml:"unlocated,omitempty"`

	// Excluded lists baseline games dropped from the current total because
	// a side has no coordinates.
	Excluded []bracket.Game `json:"excluded,omitempty" yaml:"excluded,omitempty"`

	// Dropped lists located teams left out of the greedy pool along with
	// an excluded game.
	Dropped []Team `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}

// Worse reports whether the greedy pairing travels further than the
// baseline.
func (r Result) Worse() bool { return r.SavingsMiles < 0 }

// Totals are mileage sums over a set of instances.
type Totals struct {
	Instances        int          `json:"instances" yaml:"instances"`
	CurrentMiles     float64      `json:"current_miles" yaml:"current_miles"`
	SimulatedMiles   float64      `json:"simulated_miles" yaml:"simulated_miles"`
	SavingsMiles     float64      `json:"savings_miles" yaml:"savings_miles"`
	PercentReduction metric.Value `json:"percent_reduction" yaml:"percent_reduction"`
}

// Summary aggregates every instance of a dataset.
type Summary struct {
	Totals `yaml:",inline"`

	// Results holds one Result per instance in instance-key order.
	Results []Result `json:"results" yaml:"results"`

	// BySport breaks the totals down per sport.
	BySport map[bracket.Sport]Totals `json:"by_sport" yaml:"by_sport"`

	// Worse lists instances where greedy lost miles.
	Worse []bracket.InstanceKey `json:"worse,omitempty" yaml:"worse,omitempty"`
}
