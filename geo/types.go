package geo

import (
	"errors"

	"github.com/paulmach/orb"
)

var (
	// ErrInvalidCoordinate indicates a latitude outside [-90,90], a longitude
	// outside [-180,180], or a non-finite component.
	ErrInvalidCoordinate = errors.New("geo: coordinate out of range")

	// ErrInvalidRadius indicates a non-positive or non-finite Earth radius.
	ErrInvalidRadius = errors.New("geo: earth radius must be positive")
)

// EarthRadiusMiles is the mean Earth radius used by default.
const EarthRadiusMiles = 3958.8

// Point is a location in decimal degrees. The underlying orb.Point stores
// longitude first; use NewPoint, Lat and Lon to avoid ordering mistakes.
type Point orb.Point

// Options configures Distance.
type Options struct {
	// EarthRadiusMiles is the sphere radius. Zero means EarthRadiusMiles.
	EarthRadiusMiles float64
}

// DefaultOptions returns Options{EarthRadiusMiles: 3958.8}.
func DefaultOptions() Options {
	return Options{EarthRadiusMiles: EarthRadiusMiles}
}

// Tier is a travel band.
type Tier string

const (
	TierUnknown Tier = "unknown"
	TierGreen   Tier = "green"
	TierYellow  Tier = "yellow"
	TierRed     Tier = "red"
)

// TierOptions holds the inclusive upper bounds of the Green and Yellow
// bands. Anything longer is Red.
type TierOptions struct {
	GreenMaxMiles  float64
	YellowMaxMiles float64
}

// DefaultTierOptions returns Green ≤ 119 mi, Yellow ≤ 249 mi.
func DefaultTierOptions() TierOptions {
	return TierOptions{GreenMaxMiles: 119, YellowMaxMiles: 249}
}

// Region is a named bounding box.
type Region struct {
	Name  string
	Bound orb.Bound
}
