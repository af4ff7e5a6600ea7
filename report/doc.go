// Package report renders an analysis.Report as Markdown, YAML or JSON, and
// exports per-game distances as CSV.
//
// Undefined cells print as "n/a" in Markdown and as null in YAML and JSON.
// Mileage is rounded to whole miles and grouped with thousands separators.
package report
