package metric

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// ErrDivisionUndefined is returned by Value.Get when the value has no
// defined result, typically a ratio with a zero denominator.
var ErrDivisionUndefined = errors.New("metric: value undefined (zero denominator)")

// Value is a float64 that may be undefined.
// The zero Value is undefined.
type Value struct {
	V  float64
	OK bool
}

// Of returns a defined Value. NaN and ±Inf are treated as undefined.
func Of(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}

	return Value{V: v, OK: true}
}

// Undefined returns the undefined Value.
func Undefined() Value { return Value{} }

// Ratio returns num/den, or an undefined Value when den == 0.
func Ratio(num, den float64) Value {
	if den == 0 {
		return Value{}
	}

	return Of(num / den)
}

// Count is Ratio over integer counts.
func Count(num, den int) Value {
	return Ratio(float64(num), float64(den))
}

// Defined reports whether v carries a computed result.
func (v Value) Defined() bool { return v.OK }

// Float returns the value, or NaN when undefined.
func (v Value) Float() float64 {
	if !v.OK {
		return math.NaN()
	}

	return v.V
}

// Get returns the value, or ErrDivisionUndefined.
func (v Value) Get() (float64, error) {
	if !v.OK {
		return 0, ErrDivisionUndefined
	}

	return v.V, nil
}

// Scale multiplies a defined value by k; undefined stays undefined.
func (v Value) Scale(k float64) Value {
	if !v.OK {
		return v
	}

	return Of(v.V * k)
}

// String formats with four decimals, or "n/a".
func (v Value) String() string {
	if !v.OK {
		return "n/a"
	}

	return strconv.FormatFloat(v.V, 'f', 4, 64)
}

// Percent formats v×100 with the given number of decimals and a trailing
// "%", or "n/a".
func (v Value) Percent(decimals int) string {
	if !v.OK {
		return "n/a"
	}

	return strconv.FormatFloat(v.V*100, 'f', decimals, 64) + "%"
}

// MarshalJSON encodes undefined values as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.OK {
		return []byte("null"), nil
	}

	return json.Marshal(v.V)
}

// UnmarshalJSON accepts a number or null.
func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = Value{}

		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Of(f)

	return nil
}

// MarshalYAML encodes undefined values as null.
func (v Value) MarshalYAML() (interface{}, error) {
	if !v.OK {
		return nil, nil
	}

	return v.V, nil
}
