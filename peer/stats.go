package peer

import (
	"fmt"
	"math"
	"slices"

	"github.com/quarterback/oregontennis/metric"
)

// Stats computes the mean and population standard deviation of the defined
// rates in band and applies the threshold rule. Duplicate seeds in band
// count once; values are summed in ascending seed order.
func Stats(rates map[int]metric.Value, band []int, opts Options) (Result, error) {
	if math.IsNaN(opts.Threshold) || math.IsInf(opts.Threshold, 0) || opts.Threshold < 0 {
		return Result{}, fmt.Errorf("%w: %g", ErrBadThreshold, opts.Threshold)
	}
	seeds := slices.Compact(slices.Sorted(slices.Values(band)))
	if len(seeds) == 0 {
		return Result{}, ErrEmptyBand
	}

	var res Result
	xs := make([]float64, 0, len(seeds))
	for _, s := range seeds {
		v, ok := rates[s]
		if !ok || !v.Defined() {
			res.Excluded = append(res.Excluded, s)
			continue
		}
		xs = append(xs, v.V)
	}
	res.N = len(xs)
	if res.N < 2 {
		return res, fmt.Errorf("%w: %d of %d seeds defined", ErrInsufficientData, res.N, len(seeds))
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}
	res.Mean = sum / float64(res.N)

	var ss float64
	for _, x := range xs {
		d := x - res.Mean
		ss += d * d
	}
	res.StdDev = math.Sqrt(ss / float64(res.N))
	res.IsPeerGroup = res.StdDev < opts.Threshold

	return res, nil
}

// Band returns the seeds lo..hi inclusive, or nil when hi < lo.
func Band(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for s := lo; s <= hi; s++ {
		out = append(out, s)
	}

	return out
}
