package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// NewPoint validates and returns a Point.
func NewPoint(lat, lon float64) (Point, error) {
	p := Point{lon, lat}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}

	return p, nil
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 { return p[1] }

// Lon returns the longitude in degrees.
func (p Point) Lon() float64 { return p[0] }

// Orb returns p as an orb.Point.
func (p Point) Orb() orb.Point { return orb.Point(p) }

// Validate checks lat ∈ [-90,90] and lon ∈ [-180,180].
func (p Point) Validate() error {
	lat, lon := p.Lat(), p.Lon()
	if !finite(lat) || !finite(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: (%g, %g)", ErrInvalidCoordinate, lat, lon)
	}

	return nil
}

// String formats as "lat,lon".
func (p Point) String() string {
	return fmt.Sprintf("%.4f,%.4f", p.Lat(), p.Lon())
}

// Distance returns the great-circle distance between a and b in the unit of
// opts.EarthRadiusMiles.
//
// Algorithm (haversine):
//
//	h = sin²(Δφ/2) + cos φ1 · cos φ2 · sin²(Δλ/2)
//	d = 2R · asin(√h)
//
// The pair is put in a canonical order first so the floating-point result
// does not depend on argument order.
func Distance(a, b Point, opts Options) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	r := opts.EarthRadiusMiles
	if r == 0 {
		r = EarthRadiusMiles
	}
	if !finite(r) || r < 0 {
		return 0, ErrInvalidRadius
	}
	if a == b {
		return 0, nil
	}
	if less(b, a) {
		a, b = b, a
	}

	return haversine(a, b, r), nil
}

// Miles is Distance with DefaultOptions.
func Miles(a, b Point) (float64, error) {
	return Distance(a, b, DefaultOptions())
}

func haversine(a, b Point, r float64) float64 {
	phi1 := a.Lat() * math.Pi / 180
	phi2 := b.Lat() * math.Pi / 180
	dPhi := phi2 - phi1
	dLambda := (b.Lon() - a.Lon()) * math.Pi / 180

	s1 := math.Sin(dPhi / 2)
	s2 := math.Sin(dLambda / 2)
	h := s1*s1 + math.Cos(phi1)*math.Cos(phi2)*s2*s2
	// rounding can push h a hair past 1 for antipodal points
	if h > 1 {
		h = 1
	}

	return 2 * r * math.Asin(math.Sqrt(h))
}

// less orders points by latitude, then longitude.
func less(a, b Point) bool {
	if a.Lat() != b.Lat() {
		return a.Lat() < b.Lat()
	}

	return a.Lon() < b.Lon()
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
