package collection

import (
	"math"

	"github.com/volatiletech/null/v8"
)

// Aggregates are computed over a whole dataset, never over a filtered view.
// Values that cannot be computed (empty input, zero denominator) are returned as invalid null.Float64.

func Count[T any](recs []T) int {
	return len(recs)
}

func CountWhere[T any](recs []T, pred func(T) bool) int {
	var n int
	for _, rec := range recs {
		if pred(rec) {
			n++
		}
	}
	return n
}

func Sum[T any](recs []T, field func(T) float64) float64 {
	var sum float64
	for _, rec := range recs {
		sum += field(rec)
	}
	return sum
}

func SumWhere[T any](recs []T, pred func(T) bool, field func(T) float64) float64 {
	var sum float64
	for _, rec := range recs {
		if pred(rec) {
			sum += field(rec)
		}
	}
	return sum
}

// Average averages the defined values of field; records where it is unset are not counted.
func Average[T any](recs []T, field func(T) null.Float64) null.Float64 {
	var sum float64
	var n int
	for _, rec := range recs {
		if v := field(rec); v.Valid {
			sum += v.Float64
			n++
		}
	}
	if n == 0 {
		return null.Float64{}
	}
	return null.Float64From(sum / float64(n))
}

// Mean averages a field defined on every record.
func Mean[T any](recs []T, field func(T) float64) null.Float64 {
	return Average(recs, func(rec T) null.Float64 { return null.Float64From(field(rec)) })
}

func Max[T any](recs []T, field func(T) float64) null.Float64 {
	var max null.Float64
	for _, rec := range recs {
		if v := field(rec); !max.Valid || v > max.Float64 {
			max = null.Float64From(v)
		}
	}
	return max
}

func Min[T any](recs []T, field func(T) float64) null.Float64 {
	var min null.Float64
	for _, rec := range recs {
		if v := field(rec); !min.Valid || v < min.Float64 {
			min = null.Float64From(v)
		}
	}
	return min
}

// Percent returns num/den*100 rounded to one decimal place.
func Percent(num, den float64) null.Float64 {
	if den == 0 {
		return null.Float64{}
	}
	return null.Float64From(Round(num/den*100, 1))
}

// Ratio returns num/den rounded to one decimal place.
func Ratio(num, den float64) null.Float64 {
	if den == 0 {
		return null.Float64{}
	}
	return null.Float64From(Round(num/den, 1))
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// RoundNull rounds a defined value and leaves unset values alone.
func RoundNull(v null.Float64, places int) null.Float64 {
	if !v.Valid {
		return v
	}
	return null.Float64From(Round(v.Float64, places))
}
