package types

import (
	"encoding/json"
	"strconv"
)

// ToInt64 converts an interface{} to int64.
// Supports the integer kinds, float32, float64 and json.Number.
func ToInt64(v interface{}) (int64, bool) {
	switch i := v.(type) {
	case int64:
		return i, true
	case int:
		return int64(i), true
	case int32:
		return int64(i), true
	case uint64:
		return int64(i), true
	case uint32:
		return int64(i), true
	case float64:
		return int64(i), true
	case float32:
		return int64(i), true
	case json.Number:
		if n, err := i.Int64(); err == nil {
			return n, true
		}
		if f, err := i.Float64(); err == nil {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// ToString renders a scalar record value for display.
// Whole floats print without a fractional part; nil renders as "".
func ToString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	default:
		b, err := json.Marshal(s)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
