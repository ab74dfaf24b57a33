package teacher

import (
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Statuses
const (
	StatusActive   = "active"
	StatusOnLeave  = "on-leave"
	StatusInactive = "inactive"
)

type Teacher struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	EmployeeID    string       `json:"employee_id" yaml:"employee_id"`
	Email         string       `json:"email" yaml:"email"`
	Phone         string       `json:"phone" yaml:"phone"`
	Department    string       `json:"department" yaml:"department"`
	Subjects      []string     `json:"subjects" yaml:"subjects"`
	Classes       []string     `json:"classes" yaml:"classes"`
	Qualification string       `json:"qualification" yaml:"qualification"`
	Experience    int          `json:"experience" yaml:"experience"` // years
	JoinDate      string       `json:"join_date" yaml:"join_date"`
	Salary        float64      `json:"salary" yaml:"salary"` // monthly
	Status        string       `json:"status" yaml:"status"`
	Rating        null.Float64 `json:"rating" yaml:"rating"`
}

type QueryFilter struct {
	Search     string `query:"search"`
	Department string `query:"department"`
	Status     string `query:"status" validate:"omitempty,oneof=all active on-leave inactive"`
	Ordering   string `query:"ordering"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Department = core.CleanString(qf.Department)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf QueryFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"department": qf.Department,
			"status":     qf.Status,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Collection = collection.Config[Teacher]{
	ID: func(t Teacher) string { return t.ID },
	Search: []collection.Field[Teacher]{
		func(t Teacher) null.String { return collection.Str(t.Name) },
		func(t Teacher) null.String { return collection.Str(t.EmployeeID) },
		func(t Teacher) null.String { return collection.Str(t.Email) },
		func(t Teacher) null.String { return collection.Str(strings.Join(t.Subjects, ", ")) },
	},
	Filters: map[string]collection.Field[Teacher]{
		"department": func(t Teacher) null.String { return collection.Str(t.Department) },
		"status":     func(t Teacher) null.String { return collection.Str(t.Status) },
	},
	Orderings: map[string]collection.Less[Teacher]{
		"name":       collection.ByString(func(t Teacher) null.String { return collection.Str(t.Name) }),
		"experience": collection.ByNumber(func(t Teacher) float64 { return float64(t.Experience) }),
		"salary":     collection.ByNumber(func(t Teacher) float64 { return t.Salary }),
		"rating":     collection.ByOptionalNumber(func(t Teacher) null.Float64 { return t.Rating }),
		"join_date":  collection.ByString(func(t Teacher) null.String { return collection.Str(t.JoinDate) }),
	},
	Columns: []collection.Column[Teacher]{
		{Header: "ID", Value: func(t Teacher) interface{} { return t.ID }},
		{Header: "Employee ID", Value: func(t Teacher) interface{} { return t.EmployeeID }},
		{Header: "Name", Value: func(t Teacher) interface{} { return t.Name }},
		{Header: "Department", Value: func(t Teacher) interface{} { return t.Department }},
		{Header: "Subjects", Value: func(t Teacher) interface{} { return t.Subjects }},
		{Header: "Email", Value: func(t Teacher) interface{} { return t.Email }},
		{Header: "Experience", Value: func(t Teacher) interface{} { return t.Experience }},
		{Header: "Salary", Value: func(t Teacher) interface{} { return t.Salary }},
		{Header: "Rating", Value: func(t Teacher) interface{} { return t.Rating }},
		{Header: "Status", Value: func(t Teacher) interface{} { return t.Status }},
	},
}

type Stats struct {
	Total              int          `json:"total"`
	Active             int          `json:"active"`
	OnLeave            int          `json:"on_leave"`
	Departments        int          `json:"departments"`
	AverageExperience  null.Float64 `json:"average_experience"`
	AverageRating      null.Float64 `json:"average_rating"`
	TotalMonthlySalary float64      `json:"total_monthly_salary"`
}
