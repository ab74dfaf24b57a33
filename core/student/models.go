package student

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Statuses
const (
	StatusActive      = "active"
	StatusGraduated   = "graduated"
	StatusSuspended   = "suspended"
	StatusTransferred = "transferred"
)

var Grades = []string{"9th", "10th", "11th", "12th"}

type Student struct {
	ID             string       `json:"id" yaml:"id"`
	Name           string       `json:"name" yaml:"name"`
	StudentID      string       `json:"student_id" yaml:"student_id"`
	Grade          string       `json:"grade" yaml:"grade"`
	Section        string       `json:"section" yaml:"section"`
	Email          null.String  `json:"email" yaml:"email"`
	Phone          null.String  `json:"phone" yaml:"phone"`
	DateOfBirth    string       `json:"date_of_birth" yaml:"date_of_birth"`
	Address        string       `json:"address" yaml:"address"`
	ParentName     string       `json:"parent_name" yaml:"parent_name"`
	ParentPhone    string       `json:"parent_phone" yaml:"parent_phone"`
	ParentEmail    null.String  `json:"parent_email" yaml:"parent_email"`
	EnrollmentDate string       `json:"enrollment_date" yaml:"enrollment_date"`
	GPA            null.Float64 `json:"gpa" yaml:"gpa"`
	Attendance     float64      `json:"attendance" yaml:"attendance"` // percentage of attended days
	TotalFees      float64      `json:"total_fees" yaml:"total_fees"`
	PaidFees       float64      `json:"paid_fees" yaml:"paid_fees"`
	Status         string       `json:"status" yaml:"status"`
	TransportRoute null.String  `json:"transport_route" yaml:"transport_route"`
}

func (s Student) FeeBalance() float64 {
	return s.TotalFees - s.PaidFees
}

type QueryFilter struct {
	Search   string `query:"search"`
	Grade    string `query:"grade" validate:"omitempty,oneof=all 9th 10th 11th 12th"`
	Section  string `query:"section"`
	Status   string `query:"status" validate:"omitempty,oneof=all active graduated suspended transferred"`
	Page     int    `query:"page" validate:"min=0"`
	Ordering string `query:"ordering"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Grade = core.CleanString(qf.Grade, true /* lower */)
	qf.Section = core.CleanString(qf.Section)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf QueryFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"grade":   qf.Grade,
			"section": qf.Section,
			"status":  qf.Status,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Collection = collection.Config[Student]{
	ID: func(s Student) string { return s.ID },
	Search: []collection.Field[Student]{
		func(s Student) null.String { return collection.Str(s.Name) },
		func(s Student) null.String { return collection.Str(s.StudentID) },
		func(s Student) null.String { return s.Email },
		func(s Student) null.String { return collection.Str(s.ParentName) },
	},
	Filters: map[string]collection.Field[Student]{
		"grade":   func(s Student) null.String { return collection.Str(s.Grade) },
		"section": func(s Student) null.String { return collection.Str(s.Section) },
		"status":  func(s Student) null.String { return collection.Str(s.Status) },
	},
	Orderings: map[string]collection.Less[Student]{
		"name":       collection.ByString(func(s Student) null.String { return collection.Str(s.Name) }),
		"student_id": collection.ByString(func(s Student) null.String { return collection.Str(s.StudentID) }),
		"gpa":        collection.ByOptionalNumber(func(s Student) null.Float64 { return s.GPA }),
		"attendance": collection.ByNumber(func(s Student) float64 { return s.Attendance }),
		"balance":    collection.ByNumber(Student.FeeBalance),
	},
	Columns: []collection.Column[Student]{
		{Header: "ID", Value: func(s Student) interface{} { return s.ID }},
		{Header: "Student ID", Value: func(s Student) interface{} { return s.StudentID }},
		{Header: "Name", Value: func(s Student) interface{} { return s.Name }},
		{Header: "Grade", Value: func(s Student) interface{} { return s.Grade }},
		{Header: "Section", Value: func(s Student) interface{} { return s.Section }},
		{Header: "Email", Value: func(s Student) interface{} { return s.Email }},
		{Header: "Parent", Value: func(s Student) interface{} { return s.ParentName }},
		{Header: "Parent Phone", Value: func(s Student) interface{} { return s.ParentPhone }},
		{Header: "GPA", Value: func(s Student) interface{} { return s.GPA }},
		{Header: "Attendance %", Value: func(s Student) interface{} { return s.Attendance }},
		{Header: "Fee Balance", Value: func(s Student) interface{} { return s.FeeBalance() }},
		{Header: "Status", Value: func(s Student) interface{} { return s.Status }},
	},
}

type Stats struct {
	Total             int            `json:"total"`
	Active            int            `json:"active"`
	Graduated         int            `json:"graduated"`
	ByGrade           map[string]int `json:"by_grade"`
	AverageGPA        null.Float64   `json:"average_gpa"`
	AverageAttendance null.Float64   `json:"average_attendance"`
	TotalFees         float64        `json:"total_fees"`
	CollectedFees     float64        `json:"collected_fees"`
	OutstandingFees   float64        `json:"outstanding_fees"`
	FeeCollectionRate null.Float64   `json:"fee_collection_rate"`
}
