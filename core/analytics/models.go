package analytics

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Trends
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// Metric is one key performance indicator tracked on the analytics screen.
type Metric struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description null.String  `json:"description" yaml:"description"`
	Category    string       `json:"category" yaml:"category"`
	Period      string       `json:"period" yaml:"period"`
	Unit        string       `json:"unit" yaml:"unit"`
	Value       float64      `json:"value" yaml:"value"`
	Previous    null.Float64 `json:"previous" yaml:"previous"`
	Target      null.Float64 `json:"target" yaml:"target"`
	Trend       string       `json:"trend" yaml:"trend"`
}

// Change is the variation from the previous period, in percent.
func (m Metric) Change() null.Float64 {
	if !m.Previous.Valid {
		return null.Float64{}
	}
	return collection.Percent(m.Value-m.Previous.Float64, m.Previous.Float64)
}

// Attainment is the value as a percentage of the target.
func (m Metric) Attainment() null.Float64 {
	if !m.Target.Valid {
		return null.Float64{}
	}
	return collection.Percent(m.Value, m.Target.Float64)
}

func (m Metric) OnTarget() bool {
	return m.Target.Valid && m.Value >= m.Target.Float64
}

type QueryFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Period   string `query:"period"`
	Trend    string `query:"trend" validate:"omitempty,oneof=all up down stable"`
	Ordering string `query:"ordering"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Category = core.CleanString(qf.Category)
	qf.Period = core.CleanString(qf.Period)
	qf.Trend = core.CleanString(qf.Trend, true /* lower */)
}

func (qf QueryFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"category": qf.Category,
			"period":   qf.Period,
			"trend":    qf.Trend,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Collection = collection.Config[Metric]{
	ID: func(m Metric) string { return m.ID },
	Search: []collection.Field[Metric]{
		func(m Metric) null.String { return collection.Str(m.Name) },
		func(m Metric) null.String { return m.Description },
	},
	Filters: map[string]collection.Field[Metric]{
		"category": func(m Metric) null.String { return collection.Str(m.Category) },
		"period":   func(m Metric) null.String { return collection.Str(m.Period) },
		"trend":    func(m Metric) null.String { return collection.Str(m.Trend) },
	},
	Orderings: map[string]collection.Less[Metric]{
		"name":       collection.ByString(func(m Metric) null.String { return collection.Str(m.Name) }),
		"value":      collection.ByNumber(func(m Metric) float64 { return m.Value }),
		"change":     collection.ByOptionalNumber(Metric.Change),
		"attainment": collection.ByOptionalNumber(Metric.Attainment),
	},
	Columns: []collection.Column[Metric]{
		{Header: "ID", Value: func(m Metric) interface{} { return m.ID }},
		{Header: "Name", Value: func(m Metric) interface{} { return m.Name }},
		{Header: "Category", Value: func(m Metric) interface{} { return m.Category }},
		{Header: "Period", Value: func(m Metric) interface{} { return m.Period }},
		{Header: "Value", Value: func(m Metric) interface{} { return m.Value }},
		{Header: "Unit", Value: func(m Metric) interface{} { return m.Unit }},
		{Header: "Previous", Value: func(m Metric) interface{} { return m.Previous }},
		{Header: "Target", Value: func(m Metric) interface{} { return m.Target }},
		{Header: "Change %", Value: func(m Metric) interface{} { return m.Change() }},
		{Header: "Trend", Value: func(m Metric) interface{} { return m.Trend }},
	},
}

type Stats struct {
	Metrics           int                     `json:"metrics"`
	Targeted          int                     `json:"targeted"`
	OnTarget          int                     `json:"on_target"`
	TargetAttainment  null.Float64            `json:"target_attainment"`
	AverageByCategory map[string]null.Float64 `json:"average_by_category"`
}
