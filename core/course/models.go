package course

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Statuses
const (
	StatusActive    = "active"
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

type Course struct {
	ID          string       `json:"id" yaml:"id"`
	Code        string       `json:"code" yaml:"code"`
	Name        string       `json:"name" yaml:"name"`
	Department  string       `json:"department" yaml:"department"`
	Teacher     string       `json:"teacher" yaml:"teacher"`
	Grade       string       `json:"grade" yaml:"grade"`
	Credits     int          `json:"credits" yaml:"credits"`
	Schedule    string       `json:"schedule" yaml:"schedule"`
	Room        string       `json:"room" yaml:"room"`
	Enrolled    int          `json:"enrolled" yaml:"enrolled"`
	Capacity    int          `json:"capacity" yaml:"capacity"`
	Status      string       `json:"status" yaml:"status"`
	Description null.String  `json:"description" yaml:"description"`
	Rating      null.Float64 `json:"rating" yaml:"rating"`
}

// Occupancy is the enrolment as a percentage of capacity.
func (c Course) Occupancy() null.Float64 {
	return collection.Percent(float64(c.Enrolled), float64(c.Capacity))
}

type QueryFilter struct {
	Search     string `query:"search"`
	Department string `query:"department"`
	Grade      string `query:"grade"`
	Status     string `query:"status" validate:"omitempty,oneof=all active upcoming completed"`
	Ordering   string `query:"ordering"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Department = core.CleanString(qf.Department)
	qf.Grade = core.CleanString(qf.Grade, true /* lower */)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf QueryFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"department": qf.Department,
			"grade":      qf.Grade,
			"status":     qf.Status,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Collection = collection.Config[Course]{
	ID: func(c Course) string { return c.ID },
	Search: []collection.Field[Course]{
		func(c Course) null.String { return collection.Str(c.Name) },
		func(c Course) null.String { return collection.Str(c.Code) },
		func(c Course) null.String { return collection.Str(c.Teacher) },
	},
	Filters: map[string]collection.Field[Course]{
		"department": func(c Course) null.String { return collection.Str(c.Department) },
		"grade":      func(c Course) null.String { return collection.Str(c.Grade) },
		"status":     func(c Course) null.String { return collection.Str(c.Status) },
	},
	Orderings: map[string]collection.Less[Course]{
		"code":      collection.ByString(func(c Course) null.String { return collection.Str(c.Code) }),
		"name":      collection.ByString(func(c Course) null.String { return collection.Str(c.Name) }),
		"enrolled":  collection.ByNumber(func(c Course) float64 { return float64(c.Enrolled) }),
		"occupancy": collection.ByOptionalNumber(Course.Occupancy),
		"rating":    collection.ByOptionalNumber(func(c Course) null.Float64 { return c.Rating }),
	},
	Columns: []collection.Column[Course]{
		{Header: "ID", Value: func(c Course) interface{} { return c.ID }},
		{Header: "Code", Value: func(c Course) interface{} { return c.Code }},
		{Header: "Name", Value: func(c Course) interface{} { return c.Name }},
		{Header: "Department", Value: func(c Course) interface{} { return c.Department }},
		{Header: "Teacher", Value: func(c Course) interface{} { return c.Teacher }},
		{Header: "Grade", Value: func(c Course) interface{} { return c.Grade }},
		{Header: "Credits", Value: func(c Course) interface{} { return c.Credits }},
		{Header: "Schedule", Value: func(c Course) interface{} { return c.Schedule }},
		{Header: "Enrolled", Value: func(c Course) interface{} { return c.Enrolled }},
		{Header: "Capacity", Value: func(c Course) interface{} { return c.Capacity }},
		{Header: "Rating", Value: func(c Course) interface{} { return c.Rating }},
		{Header: "Status", Value: func(c Course) interface{} { return c.Status }},
	},
}

type Stats struct {
	Total         int          `json:"total"`
	Active        int          `json:"active"`
	TotalEnrolled int          `json:"total_enrolled"`
	TotalCapacity int          `json:"total_capacity"`
	Occupancy     null.Float64 `json:"occupancy"`
	AverageRating null.Float64 `json:"average_rating"`
	TotalCredits  int          `json:"total_credits"`
}
