// Package geo computes great-circle distances between school locations and
// classifies trips by length.
//
// What:
//
//   - Point is a validated latitude/longitude pair built on orb.Point.
//   - Distance uses the haversine formula on a sphere of configurable radius
//     (default 3958.8 miles).
//   - Tier buckets a distance into Green / Yellow / Red travel bands.
//   - Region is a named lat/lon bounding box (orb.Bound) used to group
//     schools, e.g. EasternOregon.
//
// Guarantees:
//
//   - Distance(a, b) == Distance(b, a) bit for bit; Distance(a, a) == 0.
//   - Out-of-range or non-finite coordinates fail with ErrInvalidCoordinate.
//
// Complexity: O(1) per call, no allocations.
package geo
