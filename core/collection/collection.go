// Package collection implements the record collection view shared by every admin screen:
// case-insensitive search, categorical filters, ordering, aggregates, pagination
// and the detail overlay, over a static ordered list of records.
package collection

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
)

// All is the categorical filter value meaning "no constraint".
const All = "all"

var errUnknownFilter = errors.New("unknown filter")

type (
	// Field reads one string field of a record. Optional fields that are not set return an invalid null.String.
	Field[T any] func(T) null.String

	// Less reports whether a sorts before b.
	Less[T any] func(a, b T) bool

	// Column is one exported/rendered column of a record.
	Column[T any] struct {
		Header string
		Value  func(T) interface{}
	}

	Config[T any] struct {
		ID        func(T) string
		Search    []Field[T]
		Filters   map[string]Field[T]
		Orderings map[string]Less[T]
		Columns   []Column[T]
	}

	// Query is the filter state of a screen.
	Query struct {
		Search   string
		Filters  map[string]string
		Ordering []Ordering
	}
)

// Str wraps a required string field.
func Str(s string) null.String {
	return null.StringFrom(s)
}

// Match reports whether rec satisfies every constraint in q.
func (cfg *Config[T]) Match(rec T, q Query) bool {
	return cfg.matchSearch(rec, strings.ToLower(q.Search)) && cfg.matchFilters(rec, q.Filters)
}

func (cfg *Config[T]) matchSearch(rec T, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range cfg.Search {
		val := field(rec)
		if val.Valid && strings.Contains(strings.ToLower(val.String), search) {
			return true
		}
	}
	return false
}

func (cfg *Config[T]) matchFilters(rec T, filters map[string]string) bool {
	for name, want := range filters {
		if want == "" || want == All {
			continue
		}
		field, ok := cfg.Filters[name]
		if !ok {
			return false
		}
		val := field(rec)
		if !val.Valid || val.String != want {
			return false
		}
	}
	return true
}

// Filter returns the records matching q, in their original order. recs is never modified.
func (cfg *Config[T]) Filter(recs []T, q Query) []T {
	search := strings.ToLower(q.Search)
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if cfg.matchSearch(rec, search) && cfg.matchFilters(rec, q.Filters) {
			out = append(out, rec)
		}
	}
	return out
}

// Validate checks that q only uses registered filters and orderings.
func (cfg *Config[T]) Validate(q Query) error {
	for name := range q.Filters {
		if _, ok := cfg.Filters[name]; !ok {
			return core.NewValidationError(errUnknownFilter, core.FieldError{Field: name, Error: errUnknownFilter.Error()})
		}
	}
	for _, ord := range q.Ordering {
		if _, ok := cfg.Orderings[ord.Field]; !ok {
			return core.NewValidationError(nil, core.FieldError{Field: orderingParam, Error: "cannot order by " + ord.Field})
		}
	}
	return nil
}

// Apply validates q, filters recs and orders the result (stable) when q has orderings.
func (cfg *Config[T]) Apply(recs []T, q Query) ([]T, error) {
	if err := cfg.Validate(q); err != nil {
		return nil, err
	}
	out := cfg.Filter(recs, q)
	if len(q.Ordering) > 0 {
		sort.SliceStable(out, func(i, j int) bool { return cfg.less(out[i], out[j], q.Ordering) })
	}
	return out, nil
}

func (cfg *Config[T]) less(a, b T, ords []Ordering) bool {
	for _, ord := range ords {
		less := cfg.Orderings[ord.Field]
		switch {
		case less(a, b):
			return ord.Ascending
		case less(b, a):
			return !ord.Ascending
		}
	}
	return false
}

// Find returns the first record with the given ID.
func (cfg *Config[T]) Find(recs []T, id string) (T, bool) {
	for _, rec := range recs {
		if cfg.ID(rec) == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}
