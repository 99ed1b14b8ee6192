// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import "strings"

// Record is one row returned by the remote API: field name to scalar value
// (string, bool, json.Number, float64 or nil). Lookup fields keep their dotted
// names, e.g. "Person_ID__gr.Email".
type Record map[string]interface{}

// Has reports whether the field is present, even when its value is null.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// String returns the field rendered as a string and whether it held a
// non-null value.
func (r Record) String(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	return ToString(v), true
}

// StringOr returns the field as a string, or fallback when the field is
// missing, null or blank.
func (r Record) StringOr(field, fallback string) string {
	s, ok := r.String(field)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Page is one batch of records returned by a single query call.
type Page struct {
	Records []Record
	Count   int
	Raw     []byte // full response body, kept for --debug output
}
