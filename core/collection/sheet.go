package collection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"
)

// NotAvailable is how unset values are rendered.
const NotAvailable = "N/A"

// Sheet is a rendered table of records.
type Sheet struct {
	Title  string
	Header []string
	Rows   [][]interface{}
}

func NewSheet[T any](title string, cfg *Config[T], recs []T) Sheet {
	sheet := Sheet{
		Title:  title,
		Header: make([]string, len(cfg.Columns)),
		Rows:   make([][]interface{}, 0, len(recs)),
	}
	for i, col := range cfg.Columns {
		sheet.Header[i] = col.Header
	}
	for _, rec := range recs {
		row := make([]interface{}, len(cfg.Columns))
		for i, col := range cfg.Columns {
			row[i] = Cell(col.Value(rec))
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// Cell normalises a column value: null types become their value or NotAvailable, string slices are joined.
func Cell(v interface{}) interface{} {
	switch val := v.(type) {
	case null.String:
		if !val.Valid {
			return NotAvailable
		}
		return val.String
	case null.Float64:
		if !val.Valid {
			return NotAvailable
		}
		return val.Float64
	case null.Int:
		if !val.Valid {
			return NotAvailable
		}
		return val.Int
	case null.Bool:
		if !val.Valid {
			return NotAvailable
		}
		return val.Bool
	case []string:
		return strings.Join(val, ", ")
	default:
		return v
	}
}

// Text formats a cell for plain text output.
func Text(v interface{}) string {
	switch val := Cell(v).(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
