package travel

import "fmt"

// GreedyPairs matches each host, in the given order, with its nearest
// still-unassigned visitor. Equal distances go to the lower visitor seed,
// then to the earlier visitor in the slice. It stops when either side runs
// out, so len(result) == min(len(hosts), len(visitors)).
//
// GreedyPairs is a pure function of its arguments; it is deliberately not
// an optimal matcher.
//
// Complexity: O(H·V) calls to dist.
func GreedyPairs(hosts, visitors []Team, dist DistanceFunc) ([]Pair, error) {
	taken := make([]bool, len(visitors))
	pairs := make([]Pair, 0, min(len(hosts), len(visitors)))
	for _, h := range hosts {
		if len(pairs) == len(visitors) {
			break
		}
		best, bestD := -1, 0.0
		for i, v := range visitors {
			if taken[i] {
				continue
			}
			d, err := dist(h, v)
			if err != nil {
				return nil, fmt.Errorf("travel: %s → %s: %w", h.Name, v.Name, err)
			}
			if best < 0 || d < bestD || (d == bestD && v.Seed < visitors[best].Seed) {
				best, bestD = i, d
			}
		}
		taken[best] = true
		pairs = append(pairs, Pair{Host: h, Visitor: visitors[best], Miles: bestD})
	}

	return pairs, nil
}

// StrictPairs pairs hosts and visitors by the seeding convention: the
// i-th best host meets the i-th worst visitor (1 vs 16, 2 vs 15, …).
// Both slices must be sorted by ascending seed.
func StrictPairs(hosts, visitors []Team, dist DistanceFunc) ([]Pair, error) {
	n := min(len(hosts), len(visitors))
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		h, v := hosts[i], visitors[len(visitors)-1-i]
		d, err := dist(h, v)
		if err != nil {
			return nil, fmt.Errorf("travel: %s → %s: %w", h.Name, v.Name, err)
		}
		pairs = append(pairs, Pair{Host: h, Visitor: v, Miles: d})
	}

	return pairs, nil
}

// Total sums the miles of pairs in order.
func Total(pairs []Pair) float64 {
	var sum float64
	for _, p := range pairs {
		sum += p.Miles
	}

	return sum
}
