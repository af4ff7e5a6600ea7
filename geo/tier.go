package geo

import "github.com/paulmach/orb"

// Classify returns the travel tier of a distance. ok=false yields TierUnknown.
func Classify(miles float64, ok bool, opts TierOptions) Tier {
	if !ok {
		return TierUnknown
	}
	switch {
	case miles <= opts.GreenMaxMiles:
		return TierGreen
	case miles <= opts.YellowMaxMiles:
		return TierYellow
	default:
		return TierRed
	}
}

// EasternOregon covers the schools east of the Cascades that carry most of
// the long-haul travel (Pendleton, Ontario, Burns, Enterprise, …).
var EasternOregon = Region{
	Name: "Eastern Oregon",
	Bound: orb.Bound{
		Min: orb.Point{-120.0, 41.9},
		Max: orb.Point{-116.4, 46.3},
	},
}

// Contains reports whether p lies inside the region (edges inclusive).
func (r Region) Contains(p Point) bool {
	return r.Bound.Contains(p.Orb())
}
