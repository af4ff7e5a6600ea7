// Package travel simulates geographic re-pairing of a tournament's opening
// round and measures the miles it would save.
//
// What:
//
//	Each tournament instance is simulated on its own. The entry-round
//	field is split into hosts (top half of the seeds by default) and
//	visitors (bottom half). The recorded strict-seeding games give the
//	current mileage; a greedy nearest-neighbour pass gives the simulated
//	mileage:
//
//	  for each host h in ascending seed order:
//	      v = unassigned visitor minimising distance(h, v)
//	          (ties → lowest visitor seed)
//	      pair (h, v); remove v
//
//	savings = current − simulated, percent = savings / current.
//
// Guarantees:
//
//   - Deterministic: fixed host order and tie-break; no map iteration
//     reaches the output. SimulateAll returns the same Summary for any
//     worker count.
//   - Feasible: every pair uses a distinct host and a distinct visitor,
//     and len(pairs) == min(|hosts|, |visitors|).
//   - Honest: greedy is a heuristic, not a minimum-weight matching. It can
//     be worse than the recorded pairing; such results keep their negative
//     savings and are flagged by Result.Worse and Summary.Worse.
//   - Undefined, not zero: when current mileage is 0 the percent reduction
//     is an undefined metric.Value.
//
// Teams without coordinates are left out of both the current and the
// simulated totals and listed on the Result. A baseline game with such a
// team is excluded, and its located opponent leaves the greedy pool too
// (Result.Dropped), so both totals price the same hosts and visitors.
//
// Complexity: Simulate is O(H·V) distance evaluations per instance.
// SimulateAll runs instances on a bounded errgroup and sums the totals in
// instance-key order.
package travel
