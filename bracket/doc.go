// Package bracket is the in-memory, read-only model of playoff bracket
// records: games, the schools that play them, and the tournament instances
// (year + sport + division) they belong to.
//
// What:
//
//   - Round is the ordered enumeration First Round < Second Round <
//     Quarterfinals < Semifinals < Final.
//   - Game is one recorded matchup with both seeds and an optional winner.
//   - Schools is the caller-owned lookup from team name to School; it is
//     passed explicitly, never held in package state.
//   - Dataset groups games into Instances and answers the queries the
//     analysis packages need (GamesFor, GamesInRound, ResolveSchool,
//     Participants, EntryRoundOf).
//
// Validation (New):
//
//   - every team resolves to a School (co-op names "A / B" fall back to A);
//   - coordinates, where present, are valid;
//   - seeds of one instance form a permutation of 1..N and a team keeps a
//     single seed;
//   - a team's rounds are contiguous and start at the instance entry round,
//     or one round later for bye seeds (seed ≤ 2^⌈log2 N⌉ − N);
//   - a recorded loser does not reappear in a later round.
//
// Any violation aborts construction with a *RecordError that names the
// offending game and unwraps to ErrDataIntegrity plus the specific kind.
//
// Lifecycle: a Dataset is immutable after New; accessors return copies, so
// one Dataset can be shared by concurrent analyses.
package bracket
