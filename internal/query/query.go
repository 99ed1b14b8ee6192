// Package query builds the JSON query documents accepted by the
// data/objects/query endpoint.
package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Direction is a sort direction for OrderBy.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// OperatorEQ is the only operator the read-only commands use.
const OperatorEQ = "EQ"

// Condition is one aliased filter in a Where clause.
type Condition struct {
	Name     string        `json:"name"`
	Alias    string        `json:"alias"`
	Value    []interface{} `json:"value"`
	Operator string        `json:"operator"`
}

// Where is a conjunctive list of conditions plus the expression joining
// their aliases.
type Where struct {
	Conditions []Condition `json:"conditions"`
	Expression string      `json:"expression"`
}

// Order is one field/direction pair.
type Order struct {
	Field     string
	Direction Direction
}

// OrderBy marshals as a JSON object whose keys keep insertion order.
type OrderBy []Order

// MarshalJSON implements json.Marshaler.
func (o OrderBy) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ord := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ord.Field)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(string(ord.Direction))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Query is the request body for one query call. It is a value: the only
// field that changes between pages is Offset, via WithOffset.
type Query struct {
	Select  []string `json:"select"`
	Where   *Where   `json:"where,omitempty"`
	OrderBy OrderBy  `json:"orderBy,omitempty"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// WithOffset returns a copy of q starting at offset.
func (q Query) WithOffset(offset int) Query {
	q.Offset = offset
	return q
}

// WithLimit returns a copy of q with a different page size.
func (q Query) WithLimit(limit int) Query {
	q.Limit = limit
	return q
}

// Builder assembles a Query. Field names are checked when Build is called.
type Builder struct {
	q       Query
	filters []Condition
}

// Select starts a Builder for the given fields.
func Select(fields ...string) *Builder {
	return &Builder{q: Query{Select: append([]string(nil), fields...)}}
}

// WhereEq adds an equality condition. Conditions are ANDed together and get
// aliases A, B, C ... in the order they were added.
func (b *Builder) WhereEq(field string, value interface{}) *Builder {
	b.filters = append(b.filters, Condition{
		Name:     field,
		Value:    []interface{}{value},
		Operator: OperatorEQ,
	})
	return b
}

// OrderBy appends a sort key.
func (b *Builder) OrderBy(field string, dir Direction) *Builder {
	b.q.OrderBy = append(b.q.OrderBy, Order{Field: field, Direction: dir})
	return b
}

// Limit sets the page size.
func (b *Builder) Limit(n int) *Builder {
	b.q.Limit = n
	return b
}

// Offset sets the starting offset.
func (b *Builder) Offset(n int) *Builder {
	b.q.Offset = n
	return b
}

// Build validates the fields and returns the finished Query.
func (b *Builder) Build() (Query, error) {
	if len(b.q.Select) == 0 {
		return Query{}, fmt.Errorf("query must select at least one field")
	}
	if err := checkFields(b.q.Select...); err != nil {
		return Query{}, err
	}
	for _, ord := range b.q.OrderBy {
		if err := checkFields(ord.Field); err != nil {
			return Query{}, err
		}
		if ord.Direction != Asc && ord.Direction != Desc {
			return Query{}, fmt.Errorf("invalid sort direction %q for %s", ord.Direction, ord.Field)
		}
	}
	if len(b.filters) > 26 {
		return Query{}, fmt.Errorf("too many conditions: %d (max 26)", len(b.filters))
	}
	if b.q.Limit <= 0 {
		return Query{}, fmt.Errorf("limit must be positive, got %d", b.q.Limit)
	}
	if b.q.Offset < 0 {
		return Query{}, fmt.Errorf("offset cannot be negative, got %d", b.q.Offset)
	}

	q := b.q
	q.Select = append([]string(nil), b.q.Select...)
	q.OrderBy = append(OrderBy(nil), b.q.OrderBy...)

	if len(b.filters) > 0 {
		where := &Where{Conditions: make([]Condition, len(b.filters))}
		aliases := make([]string, len(b.filters))
		for i, c := range b.filters {
			if err := checkFields(c.Name); err != nil {
				return Query{}, err
			}
			c.Alias = string(rune('A' + i))
			where.Conditions[i] = c
			aliases[i] = c.Alias
		}
		where.Expression = strings.Join(aliases, " AND ")
		q.Where = where
	}

	return q, nil
}
