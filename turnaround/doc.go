// Package turnaround measures the burden of repeated long-haul trips within
// one playoff run.
//
// A leg is one game whose teams are at least LongHaulMiles apart (95 by
// default). Both teams of such a game get a leg; the better seed is home
// unless the game is at a neutral site. A Burden groups the legs of one
// team in one tournament instance, and a team carrying two or more legs
// faces a turnaround: another long trip before recovering from the last.
//
// Analyze reports:
//
//   - totals: team-playoff burdens, how many carry 2+ legs, total miles;
//   - the same broken down by division and by year;
//   - home vs away legs and miles;
//   - the worst multi-leg burdens by miles;
//   - per-team away miles for schools inside a Region (eastern Oregon by
//     default).
//
// Games involving a school without coordinates are skipped and counted in
// Report.Skipped. Rates and averages with a zero denominator are undefined
// metric.Values.
package turnaround
