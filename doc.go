// Package oregontennis measures how playoff bracket seeding trades travel
// against competitive balance.
//
// Given recorded single-elimination brackets and school locations, it
// answers two questions: how many miles a geographic re-pairing of the
// opening round would save, and how much competitive risk that re-pairing
// would take on.
//
// Packages, bottom-up:
//
//	metric/     undefined-aware ratios ("n/a", never a silent 0)
//	geo/        great-circle distance (haversine), travel tiers, regions
//	bracket/    validated games grouped into tournament instances
//	survival/   per-seed, per-round survival rates
//	peer/       mean and standard deviation over a seed band
//	travel/     greedy nearest-host re-pairing against the recorded pairing
//	upset/      low-seed appearance and upset-win frequencies
//	turnaround/ long-haul multi-leg travel burden per team
//	ingest/     YAML, JSON, CSV, HTML and SQLite record sources
//	sample/     synthetic brackets for tests and demos
//	config/     settings from file, .env and BRACKETSIM_* variables
//	analysis/   one Run over every statistic
//	report/     Markdown, YAML and JSON rendering
//
// The bracketsim command under cmd/ wires them together:
//
//	bracketsim sample --output brackets.yaml
//	bracketsim analyze --input brackets.yaml
//
// Every computation is a pure, deterministic function of its inputs; the
// travel simulation parallelises across tournaments but aggregates in
// instance-key order, so results do not depend on the worker count.
package oregontennis
