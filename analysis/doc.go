// Package analysis runs every statistic over one dataset and gathers the
// results into a Report.
//
// A Runner reads its settings from config.Config and logs progress with
// logrus. Run computes, in order:
//
//	survival   seed survival rates per round
//	peer       peer-group verdict for a seed band at one round
//	travel     greedy re-pairing against the recorded pairing
//	upset      low-seed appearances and games won by the worse seed
//	turnaround long-haul multi-leg burden per team
//
// Setting errors and cancellation abort the run. A statistic that cannot
// be computed for lack of data (peer.ErrInsufficientData) degrades only
// its own section: the Report records the error text and the rest is
// still produced.
package analysis
