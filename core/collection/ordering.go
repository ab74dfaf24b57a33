package collection

import (
	"strings"

	"github.com/volatiletech/null/v8"
)

const orderingParam = "ordering"

type Ordering struct {
	Field     string
	Ascending bool
}

func (ord Ordering) String() string {
	if ord.Ascending {
		return ord.Field
	}
	return "-" + ord.Field
}

// ParseOrdering parses a comma separated list of fields, each optionally prefixed with "-" for descending order.
func ParseOrdering(val string) []Ordering {
	var ords []Ordering
	for _, field := range strings.Split(val, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		ords = append(ords, Ordering{Field: field, Ascending: !descending})
	}
	return ords
}

// ByString orders records by a string field, case-insensitively. Unset values sort first.
func ByString[T any](field Field[T]) Less[T] {
	return func(a, b T) bool {
		va, vb := field(a), field(b)
		if !va.Valid || !vb.Valid {
			return !va.Valid && vb.Valid
		}
		return strings.ToLower(va.String) < strings.ToLower(vb.String)
	}
}

// ByNumber orders records by a numeric field.
func ByNumber[T any](field func(T) float64) Less[T] {
	return func(a, b T) bool { return field(a) < field(b) }
}

// ByOptionalNumber orders records by an optional numeric field. Unset values sort first.
func ByOptionalNumber[T any](field func(T) null.Float64) Less[T] {
	return func(a, b T) bool {
		va, vb := field(a), field(b)
		if !va.Valid || !vb.Valid {
			return !va.Valid && vb.Valid
		}
		return va.Float64 < vb.Float64
	}
}
