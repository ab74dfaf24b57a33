package branch

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Statuses
const (
	StatusActive       = "active"
	StatusInactive     = "inactive"
	StatusConstruction = "under-construction"
)

type Address struct {
	Street     string      `json:"street" yaml:"street"`
	City       string      `json:"city" yaml:"city"`
	Region     string      `json:"region" yaml:"region"`
	PostalCode null.String `json:"postal_code" yaml:"postal_code"`
}

type Branch struct {
	ID          string      `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Code        string      `json:"code" yaml:"code"`
	Principal   string      `json:"principal" yaml:"principal"`
	Phone       string      `json:"phone" yaml:"phone"`
	Email       null.String `json:"email" yaml:"email"`
	Address     Address     `json:"address" yaml:"address"`
	Established string      `json:"established" yaml:"established"`
	Students    int         `json:"students" yaml:"students"`
	Teachers    int         `json:"teachers" yaml:"teachers"`
	Capacity    int         `json:"capacity" yaml:"capacity"`
	Facilities  []string    `json:"facilities" yaml:"facilities"`
	Status      string      `json:"status" yaml:"status"`
}

// Utilization is the enrolment as a percentage of capacity.
func (b Branch) Utilization() null.Float64 {
	return collection.Percent(float64(b.Students), float64(b.Capacity))
}

type QueryFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status" validate:"omitempty,oneof=all active inactive under-construction"`
	City     string `query:"city"`
	Ordering string `query:"ordering"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.City = core.CleanString(qf.City)
}

func (qf QueryFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"status": qf.Status,
			"city":   qf.City,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Collection = collection.Config[Branch]{
	ID: func(b Branch) string { return b.ID },
	Search: []collection.Field[Branch]{
		func(b Branch) null.String { return collection.Str(b.Name) },
		func(b Branch) null.String { return collection.Str(b.Code) },
		func(b Branch) null.String { return collection.Str(b.Principal) },
		func(b Branch) null.String { return collection.Str(b.Address.City) },
	},
	Filters: map[string]collection.Field[Branch]{
		"status": func(b Branch) null.String { return collection.Str(b.Status) },
		"city":   func(b Branch) null.String { return collection.Str(b.Address.City) },
	},
	Orderings: map[string]collection.Less[Branch]{
		"name":        collection.ByString(func(b Branch) null.String { return collection.Str(b.Name) }),
		"students":    collection.ByNumber(func(b Branch) float64 { return float64(b.Students) }),
		"utilization": collection.ByOptionalNumber(Branch.Utilization),
	},
	Columns: []collection.Column[Branch]{
		{Header: "ID", Value: func(b Branch) interface{} { return b.ID }},
		{Header: "Code", Value: func(b Branch) interface{} { return b.Code }},
		{Header: "Name", Value: func(b Branch) interface{} { return b.Name }},
		{Header: "Principal", Value: func(b Branch) interface{} { return b.Principal }},
		{Header: "City", Value: func(b Branch) interface{} { return b.Address.City }},
		{Header: "Region", Value: func(b Branch) interface{} { return b.Address.Region }},
		{Header: "Students", Value: func(b Branch) interface{} { return b.Students }},
		{Header: "Teachers", Value: func(b Branch) interface{} { return b.Teachers }},
		{Header: "Capacity", Value: func(b Branch) interface{} { return b.Capacity }},
		{Header: "Utilization %", Value: func(b Branch) interface{} { return b.Utilization() }},
		{Header: "Facilities", Value: func(b Branch) interface{} { return b.Facilities }},
		{Header: "Status", Value: func(b Branch) interface{} { return b.Status }},
	},
}

type Stats struct {
	Branches            int          `json:"branches"`
	Active              int          `json:"active"`
	Students            int          `json:"students"`
	Teachers            int          `json:"teachers"`
	Capacity            int          `json:"capacity"`
	Utilization         null.Float64 `json:"utilization"`
	StudentTeacherRatio null.Float64 `json:"student_teacher_ratio"`
}
