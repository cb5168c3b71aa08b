// Package search holds the predicates behind every filterable listing.
package search

import "strings"

// Match reports whether the case-folded query is a substring of at least one field.
// An empty query matches everything.
func Match(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Filter returns the items for which keep is true, in their original order.
// The result is never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Selector is a categorical filter value. It imposes no constraint when it holds its sentinel.
type Selector struct {
	Value    string
	Sentinel string
}

// NewSelector returns a selector for value; an empty value means the sentinel.
func NewSelector(value, sentinel string) Selector {
	if value == "" {
		value = sentinel
	}
	return Selector{Value: value, Sentinel: sentinel}
}

// IsAll reports whether the selector holds its sentinel.
func (s Selector) IsAll() bool {
	return s.Value == s.Sentinel
}

// Matches reports whether field satisfies the selector.
func (s Selector) Matches(field string) bool {
	return s.IsAll() || s.Value == field
}

// MatchesAny reports whether any of fields satisfies the selector.
func (s Selector) MatchesAny(fields []string) bool {
	if s.IsAll() {
		return true
	}
	for _, f := range fields {
		if f == s.Value {
			return true
		}
	}
	return false
}

// ValidIn reports whether the selector value appears in options or is the sentinel.
func (s Selector) ValidIn(options []string) bool {
	if s.IsAll() {
		return true
	}
	for _, o := range options {
		if o == s.Value {
			return true
		}
	}
	return false
}
