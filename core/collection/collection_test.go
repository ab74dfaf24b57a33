package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
)

type pupil struct {
	ID     string
	Name   string
	Email  null.String
	Grade  string
	Status string
	Score  null.Float64
}

var pupilConfig = Config[pupil]{
	ID: func(p pupil) string { return p.ID },
	Search: []Field[pupil]{
		func(p pupil) null.String { return Str(p.Name) },
		func(p pupil) null.String { return p.Email },
	},
	Filters: map[string]Field[pupil]{
		"grade":  func(p pupil) null.String { return Str(p.Grade) },
		"status": func(p pupil) null.String { return Str(p.Status) },
		"email":  func(p pupil) null.String { return p.Email },
	},
	Orderings: map[string]Less[pupil]{
		"name":  ByString(func(p pupil) null.String { return Str(p.Name) }),
		"grade": ByString(func(p pupil) null.String { return Str(p.Grade) }),
		"score": ByOptionalNumber(func(p pupil) null.Float64 { return p.Score }),
	},
	Columns: []Column[pupil]{
		{Header: "Name", Value: func(p pupil) interface{} { return p.Name }},
		{Header: "Email", Value: func(p pupil) interface{} { return p.Email }},
		{Header: "Score", Value: func(p pupil) interface{} { return p.Score }},
	},
}

func pupils() []pupil {
	grades := []string{"10th", "11th", "9th", "12th", "10th", "11th", "9th", "12th"}
	names := []string{"Emma Johnson", "Liam Smith", "Mike Rodriguez", "Olivia Brown", "Noah Davis", "Ava Wilson", "Lucas Moore", "Mia Taylor"}
	out := make([]pupil, 0, len(grades))
	for i := range grades {
		p := pupil{
			ID:     string(rune('1' + i)),
			Name:   names[i],
			Grade:  grades[i],
			Status: "active",
		}
		if i%2 == 0 {
			p.Email = null.StringFrom("pupil" + p.ID + "@school.test")
			p.Score = null.Float64From(float64(60 + i*5))
		}
		out = append(out, p)
	}
	out[7].Status = "graduated"
	return out
}

func ids(recs []pupil) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestConfig_Filter(t *testing.T) {
	recs := pupils()

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{name: "empty query", q: Query{}, want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{name: "grade=10th", q: Query{Filters: map[string]string{"grade": "10th"}}, want: []string{"1", "5"}},
		{name: "grade=all", q: Query{Filters: map[string]string{"grade": All}}, want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{name: "blank filter is all", q: Query{Filters: map[string]string{"grade": ""}}, want: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{name: "search mike", q: Query{Search: "mike"}, want: []string{"3"}},
		{name: "search is case insensitive", q: Query{Search: "MIKE"}, want: []string{"3"}},
		{name: "search optional field", q: Query{Search: "pupil5@"}, want: []string{"5"}},
		{name: "search unknown", q: Query{Search: "lol"}, want: []string{}},
		{name: "search and filter", q: Query{Search: "a", Filters: map[string]string{"status": "graduated"}}, want: []string{"8"}},
		{name: "exact match only", q: Query{Filters: map[string]string{"grade": "10"}}, want: []string{}},
		{name: "filter on unset field", q: Query{Filters: map[string]string{"email": "pupil2@school.test"}}, want: []string{}},
		{name: "unknown filter", q: Query{Filters: map[string]string{"lol": "x"}}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pupilConfig.Filter(recs, tt.q)
			assert.Equal(t, tt.want, ids(got))
			for _, rec := range recs {
				assert.Equal(t, containsID(got, rec.ID), pupilConfig.Match(rec, tt.q), "Match(%s)", rec.ID)
			}
		})
	}
}

func containsID(recs []pupil, id string) bool {
	for _, r := range recs {
		if r.ID == id {
			return true
		}
	}
	return false
}

func TestConfig_Filter_doesNotMutateSource(t *testing.T) {
	recs := pupils()
	orig := pupils()

	got := pupilConfig.Filter(recs, Query{Search: "a"})
	require.NotEmpty(t, got)
	got[0].Name = "changed"

	assert.Equal(t, orig, recs)
}

func TestConfig_Apply(t *testing.T) {
	recs := pupils()

	got, err := pupilConfig.Apply(recs, Query{Ordering: ParseOrdering("grade,-name")})
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1", "2", "6", "4", "8", "3", "7"}, ids(got))

	got, err = pupilConfig.Apply(recs, Query{Ordering: ParseOrdering("-score")})
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "5", "3", "1", "2", "4", "6", "8"}, ids(got))

	_, err = pupilConfig.Apply(recs, Query{Ordering: ParseOrdering("lol")})
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ordering", vErr.Fields[0].Field)

	_, err = pupilConfig.Apply(recs, Query{Filters: map[string]string{"lol": "x"}})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "lol", vErr.Fields[0].Field)
}

func TestParseOrdering(t *testing.T) {
	assert.Nil(t, ParseOrdering(""))
	assert.Equal(t,
		[]Ordering{{Field: "name", Ascending: true}, {Field: "gpa"}},
		ParseOrdering(" name , -gpa,,"),
	)
	assert.Equal(t, "-gpa", Ordering{Field: "gpa"}.String())
}

func TestConfig_Find(t *testing.T) {
	recs := pupils()

	rec, ok := pupilConfig.Find(recs, "3")
	assert.True(t, ok)
	assert.Equal(t, "Mike Rodriguez", rec.Name)

	_, ok = pupilConfig.Find(recs, "42")
	assert.False(t, ok)
}

func TestNewSheet(t *testing.T) {
	recs := pupils()[:2]
	sheet := NewSheet("Pupils", &pupilConfig, recs)

	assert.Equal(t, []string{"Name", "Email", "Score"}, sheet.Header)
	assert.Equal(t, [][]interface{}{
		{"Emma Johnson", "pupil1@school.test", 60.0},
		{"Liam Smith", NotAvailable, NotAvailable},
	}, sheet.Rows)
	assert.Equal(t, "a, b", Text([]string{"a", "b"}))
	assert.Equal(t, "62.5", Text(62.5))
}
