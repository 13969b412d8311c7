package indicators

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Value is an indicator reading that may be missing
// the zero Value is missing
type Value struct {
	v  float64
	ok bool
}

// Of wraps f; NaN and infinities count as missing
func Of(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{v: f, ok: true}
}

// Missing returns the missing marker
func Missing() Value { return Value{} }

// Float returns the number and whether it is present
func (v Value) Float() (float64, bool) { return v.v, v.ok }

// IsMissing reports whether v carries no number
func (v Value) IsMissing() bool { return !v.ok }

// Or returns the number or def when missing
func (v Value) Or(def float64) float64 {
	if !v.ok {
		return def
	}
	return v.v
}

func (v Value) String() string {
	if !v.ok {
		return "missing"
	}
	return strconv.FormatFloat(v.v, 'g', -1, 64)
}

// MarshalJSON writes a number or null
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON reads a number or null
func (v *Value) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
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
