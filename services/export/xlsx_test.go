package exportsvc

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/masomo/core/collection"
)

type book struct {
	ID     string
	Title  string
	Rating null.Float64
	Tags   []string
}

var books = collection.Config[book]{
	ID: func(b book) string { return b.ID },
	Columns: []collection.Column[book]{
		{Header: "ID", Value: func(b book) interface{} { return b.ID }},
		{Header: "Title", Value: func(b book) interface{} { return b.Title }},
		{Header: "Rating", Value: func(b book) interface{} { return b.Rating }},
		{Header: "Tags", Value: func(b book) interface{} { return b.Tags }},
	},
}

func TestWriteXLSX(t *testing.T) {
	recs := []book{
		{ID: "1", Title: "Things Fall Apart", Rating: null.Float64From(4.4), Tags: []string{"fiction", "classic"}},
		{ID: "2", Title: "Calculus Made Easy", Tags: []string{"maths"}},
	}
	var buf bytes.Buffer
	err := WriteXLSX(&buf,
		collection.NewSheet("Books", &books, recs),
		collection.NewSheet("Books", &books, recs[:1]),
		collection.NewSheet("Books: overdue/lost [2024]", &books, nil),
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Books", "Books (2)", "Books  overdue lost (2024)"}, f.GetSheetList())

	rows, err := f.GetRows("Books")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Title", "Rating", "Tags"},
		{"1", "Things Fall Apart", "4.4", "fiction, classic"},
		{"2", "Calculus Made Easy", collection.NotAvailable, "maths"},
	}, rows)

	styleID, err := f.GetCellStyle("Books", "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	empty, err := f.GetRows("Books  overdue lost (2024)")
	require.NoError(t, err)
	assert.Len(t, empty, 1)
}

func TestWriteXLSX_noSheet(t *testing.T) {
	assert.Error(t, WriteXLSX(&bytes.Buffer{}))
}

func Test_sheetName(t *testing.T) {
	long := strings.Repeat("é", 40)
	used := make(map[string]int)

	tests := []struct {
		title string
		want  string
	}{
		{title: "Élèves", want: "Élèves"},
		{title: "Élèves", want: "Élèves (2)"},
		{title: "  ", want: "Export"},
		{title: long, want: strings.Repeat("é", maxSheetName)},
		{title: long, want: strings.Repeat("é", maxSheetName-4) + " (2)"},
	}
	for _, tt := range tests {
		got := sheetName(tt.title, used)
		assert.Equal(t, tt.want, got)
		assert.True(t, utf8.ValidString(got), got)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), maxSheetName)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, collection.NewSheet(long, &books, nil), collection.NewSheet(long, &books, nil)))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Len(t, f.GetSheetList(), 2)
}
