// Package aggregate derives simple statistics from fetched records.
package aggregate

import (
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/gsread/internal/types"
)

// Extractor derives the key a record is counted under. It returns false to
// skip the record.
type Extractor func(types.Record) (string, bool)

// Entry is one key and its count.
type Entry struct {
	Key   string
	Count int
}

// Counts maps derived keys to occurrence counts and remembers the order in
// which keys were first seen.
type Counts struct {
	m *orderedmap.OrderedMap[string, int]
}

// NewCounts returns an empty Counts.
func NewCounts() *Counts {
	return &Counts{m: orderedmap.NewOrderedMap[string, int]()}
}

// Add increments key by one.
func (c *Counts) Add(key string) {
	n, _ := c.m.Get(key)
	c.m.Set(key, n+1)
}

// Len returns the number of distinct keys.
func (c *Counts) Len() int {
	return c.m.Len()
}

// Map returns a plain copy of the counts.
func (c *Counts) Map() map[string]int {
	out := make(map[string]int, c.m.Len())
	for el := c.m.Front(); el != nil; el = el.Next() {
		out[el.Key] = el.Value
	}
	return out
}

// MostCommon returns all entries by descending count. Equal counts keep
// first-seen order.
func (c *Counts) MostCommon() []Entry {
	entries := make([]Entry, 0, c.m.Len())
	for el := c.m.Front(); el != nil; el = el.Next() {
		entries = append(entries, Entry{Key: el.Key, Count: el.Value})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Top returns the most frequent key, or false when nothing was counted.
func (c *Counts) Top() (string, bool) {
	entries := c.MostCommon()
	if len(entries) == 0 {
		return "", false
	}
	return entries[0].Key, true
}

// Count runs extract over every record once and counts the keys it yields.
func Count(records []types.Record, extract Extractor) *Counts {
	counts := NewCounts()
	for _, rec := range records {
		if key, ok := extract(rec); ok {
			counts.Add(key)
		}
	}
	return counts
}

// EmailDomain extracts the lower-cased text between the first "@" of the
// given field and the next "@", if any. Records whose field has no "@" are
// skipped.
func EmailDomain(field string) Extractor {
	return func(rec types.Record) (string, bool) {
		email, ok := rec.String(field)
		if !ok {
			return "", false
		}
		_, rest, found := strings.Cut(email, "@")
		if !found {
			return "", false
		}
		domain, _, _ := strings.Cut(rest, "@")
		return strings.ToLower(domain), true
	}
}

// UniqueValues returns the distinct non-empty values of field in the order
// they first appear.
func UniqueValues(records []types.Record, field string) []string {
	seen := orderedmap.NewOrderedMap[string, struct{}]()
	for _, rec := range records {
		v, ok := rec.String(field)
		if !ok || v == "" {
			continue
		}
		seen.Set(v, struct{}{})
	}
	return seen.Keys()
}
