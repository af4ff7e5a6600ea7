package turnaround

import (
	"errors"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
	"github.com/quarterback/oregontennis/metric"
)

// ErrBadOptions indicates a negative threshold or limit.
var ErrBadOptions = errors.New("turnaround: invalid options")

// Options configures Analyze.
type Options struct {
	// LongHaulMiles is the inclusive lower bound of a long-haul game.
	LongHaulMiles float64

	// MultiLeg is the number of legs that makes a turnaround (2).
	MultiLeg int

	// WorstCases caps Report.Worst; 0 keeps every multi-leg burden.
	WorstCases int

	Geo    geo.Options
	Tiers  geo.TierOptions
	Region geo.Region
}

// DefaultOptions returns 95 mi legs, 2-leg turnarounds, the 15 worst cases
// and the eastern Oregon region.
func DefaultOptions() Options {
	return Options{
		LongHaulMiles: 95,
		MultiLeg:      2,
		WorstCases:    15,
		Geo:           geo.DefaultOptions(),
		Tiers:         geo.DefaultTierOptions(),
		Region:        geo.EasternOregon,
	}
}

// Leg is one long-haul game seen from one team.
type Leg struct {
	Round    bracket.Round `json:"round" yaml:"round"`
	Opponent string        `json:"opponent" yaml:"opponent"`
	Miles    float64       `json:"miles" yaml:"miles"`
	Home     bool          `json:"home" yaml:"home"`
	Tier     geo.Tier      `json:"tier" yaml:"tier"`
}

// Burden is every leg of one team in one instance, in round order.
type Burden struct {
	Team     string              `json:"team" yaml:"team"`
	Instance bracket.InstanceKey `json:"instance" yaml:"instance"`
	Legs     []Leg               `json:"legs" yaml:"legs"`
	Miles    float64             `json:"miles" yaml:"miles"`
}

// Group aggregates burdens.
type Group struct {
	// Teams counts team-playoff burdens.
	Teams int `json:"teams" yaml:"teams"`

	// Multi counts burdens with at least MultiLeg legs.
	Multi int `json:"multi" yaml:"multi"`

	// Legs counts legs.
	Legs  int     `json:"legs" yaml:"legs"`
	Miles float64 `json:"miles" yaml:"miles"`

	MultiRate metric.Value `json:"multi_rate" yaml:"multi_rate"`
	AvgMiles  metric.Value `json:"avg_miles" yaml:"avg_miles"`
}

// HomeAway splits legs by venue.
type HomeAway struct {
	HomeLegs     int          `json:"home_legs" yaml:"home_legs"`
	AwayLegs     int          `json:"away_legs" yaml:"away_legs"`
	HomeMiles    float64      `json:"home_miles" yaml:"home_miles"`
	AwayMiles    float64      `json:"away_miles" yaml:"away_miles"`
	AvgAwayMiles metric.Value `json:"avg_away_miles" yaml:"avg_away_miles"`
}

// RegionTeam is the away burden of one school inside the region.
type RegionTeam struct {
	Team        string       `json:"team" yaml:"team"`
	Appearances int          `json:"appearances" yaml:"appearances"`
	AwayMiles   float64      `json:"away_miles" yaml:"away_miles"`
	AvgPerRun   metric.Value `json:"avg_per_run" yaml:"avg_per_run"`
}

// Report is the result of Analyze.
type Report struct {
	Burdens    []Burden                   `json:"burdens" yaml:"burdens"`
	Total      Group                      `json:"total" yaml:"total"`
	ByDivision map[bracket.Division]Group `json:"by_division" yaml:"by_division"`
	ByYear     map[int]Group              `json:"by_year" yaml:"by_year"`
	HomeAway   HomeAway                   `json:"home_away" yaml:"home_away"`
	Worst      []Burden                   `json:"worst" yaml:"worst"`
	Region     string                     `json:"region" yaml:"region"`
	RegionRows []RegionTeam               `json:"region_teams" yaml:"region_teams"`
	Skipped    int                        `json:"skipped" yaml:"skipped"`
}
