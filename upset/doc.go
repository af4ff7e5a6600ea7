// Package upset measures how often low seeds go deep in a bracket.
//
// Stats counts appearances, not instances: for each target round r,
//
//	count = appearances of a low-band seed in r, over every instance
//	total = appearances of any seed in r, over every instance
//	rate  = count / total   (undefined when total == 0)
//
// so two low seeds meeting in one semifinal count twice.
//
// Decided complements Stats with game outcomes: per round, the number of
// games won by the worse seed out of the games with a recorded winner.
package upset
