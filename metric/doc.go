// Package metric holds the numeric cell type shared by every analysis in
// this module.
//
// A Value is either a computed float64 or explicitly undefined. Ratios whose
// denominator is zero, statistics without enough samples and similar cases
// produce an undefined Value instead of 0, so a report can print "n/a"
// where the true answer is unknown.
//
//	r := metric.Ratio(5, 166)   // 0.0301…
//	z := metric.Ratio(3, 0)     // undefined
//	z.String()                  // "n/a"
//	_, err := z.Get()           // metric.ErrDivisionUndefined
//
// Undefined values marshal to null in both JSON and YAML.
package metric
