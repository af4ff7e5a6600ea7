package peer

import "errors"

var (
	// ErrInsufficientData indicates fewer than two defined rates in the band.
	ErrInsufficientData = errors.New("peer: fewer than 2 defined rates")

	// ErrBadThreshold indicates a negative or non-finite threshold.
	ErrBadThreshold = errors.New("peer: threshold must be a finite value ≥ 0")

	// ErrEmptyBand indicates a band with no seeds.
	ErrEmptyBand = errors.New("peer: empty seed band")
)

// DefaultThreshold is the peer-group cut-off on the standard deviation.
const DefaultThreshold = 0.15

// Options configures Stats.
type Options struct {
	// Threshold is the exclusive upper bound on StdDev for a peer group.
	Threshold float64
}

// DefaultOptions returns Options{Threshold: 0.15}.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Result is the peer-group verdict for one band.
type Result struct {
	Mean        float64 `json:"mean" yaml:"mean"`
	StdDev      float64 `json:"stddev" yaml:"stddev"`
	IsPeerGroup bool    `json:"is_peer_group" yaml:"is_peer_group"`

	// N is the number of defined rates used.
	N int `json:"n" yaml:"n"`

	// Excluded lists band seeds whose rate was undefined or absent.
	Excluded []int `json:"excluded,omitempty" yaml:"excluded,omitempty"`
}
