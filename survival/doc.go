// Package survival computes per-seed advancement rates by round.
//
// What:
//
//	For every seed s and every round r after the round where s enters the
//	bracket, Rates reports
//
//	  rate(s, r) = #instances where seed s appears in r
//	             / #instances where seed s appears in the round before r
//
//	"The round before r" is the previous round actually played in that
//	instance, so a 16-team bracket steps First Round → Quarterfinals.
//	With Basis = FromEntry the denominator is the seed's entry round
//	instead, which yields the classic "QF advancement rate"
//	(QF appearances / entry-round appearances).
//
// Undefined cells:
//
//	A zero denominator (the seed never reached the preceding round) yields
//	an undefined metric.Value. It is never reported as 0.
//
// Bye seeds enter one round late; their first reported round is the one
// after their own entry, not after the bracket's entry round.
//
// Complexity: O(I · N · R) for I instances, N seeds and R rounds.
package survival
