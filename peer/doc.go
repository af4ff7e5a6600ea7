// Package peer decides whether a band of seeds behaves as a peer group.
//
// Given survival rates keyed by seed and a band such as seeds 9–16, Stats
// computes the arithmetic mean and the population standard deviation of
// the defined rates in the band:
//
//	μ = Σ x / n
//	σ = √( Σ (x − μ)² / n )
//
// and reports IsPeerGroup = σ < Threshold (default 0.15, i.e. fifteen
// percentage points when rates are fractions). The rule is a heuristic
// cut-off, not a significance test; σ is not a p-value.
//
// Undefined rates and seeds missing from the input are excluded and
// listed in Result.Excluded. Fewer than two remaining values fail with
// ErrInsufficientData, which callers treat as a local failure of this one
// statistic.
//
// Rates and Threshold must use the same unit: fractions with 0.15, or
// percentages with 15.
package peer
