package payroll

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Statuses
const (
	StatusPaid       = "paid"
	StatusPending    = "pending"
	StatusProcessing = "processing"
)

type Record struct {
	ID          string      `json:"id" yaml:"id"`
	EmployeeID  string      `json:"employee_id" yaml:"employee_id"`
	Name        string      `json:"name" yaml:"name"`
	Position    string      `json:"position" yaml:"position"`
	Department  string      `json:"department" yaml:"department"`
	Period      string      `json:"period" yaml:"period"`
	BasicSalary float64     `json:"basic_salary" yaml:"basic_salary"`
	Allowances  float64     `json:"allowances" yaml:"allowances"`
	Overtime    float64     `json:"overtime" yaml:"overtime"`
	Tax         float64     `json:"tax" yaml:"tax"`
	Pension     float64     `json:"pension" yaml:"pension"`
	Insurance   float64     `json:"insurance" yaml:"insurance"`
	Status      string      `json:"status" yaml:"status"`
	PaymentDate null.String `json:"payment_date" yaml:"payment_date"`
	BankAccount null.String `json:"bank_account" yaml:"bank_account"`
}

func (r Record) Gross() float64 {
	return r.BasicSalary + r.Allowances + r.Overtime
}

func (r Record) Deductions() float64 {
	return r.Tax + r.Pension + r.Insurance
}

func (r Record) Net() float64 {
	return r.Gross() - r.Deductions()
}

type QueryFilter struct {
	Search     string `query:"search"`
	Department string `query:"department"`
	Status     string `query:"status" validate:"omitempty,oneof=all paid pending processing"`
	Period     string `query:"period"`
	Ordering   string `query:"ordering"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Department = core.CleanString(qf.Department)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
	qf.Period = core.CleanString(qf.Period)
}

func (qf QueryFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"department": qf.Department,
			"status":     qf.Status,
			"period":     qf.Period,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Collection = collection.Config[Record]{
	ID: func(r Record) string { return r.ID },
	Search: []collection.Field[Record]{
		func(r Record) null.String { return collection.Str(r.Name) },
		func(r Record) null.String { return collection.Str(r.EmployeeID) },
		func(r Record) null.String { return collection.Str(r.Position) },
	},
	Filters: map[string]collection.Field[Record]{
		"department": func(r Record) null.String { return collection.Str(r.Department) },
		"status":     func(r Record) null.String { return collection.Str(r.Status) },
		"period":     func(r Record) null.String { return collection.Str(r.Period) },
	},
	Orderings: map[string]collection.Less[Record]{
		"name":  collection.ByString(func(r Record) null.String { return collection.Str(r.Name) }),
		"gross": collection.ByNumber(Record.Gross),
		"net":   collection.ByNumber(Record.Net),
	},
	Columns: []collection.Column[Record]{
		{Header: "ID", Value: func(r Record) interface{} { return r.ID }},
		{Header: "Employee ID", Value: func(r Record) interface{} { return r.EmployeeID }},
		{Header: "Name", Value: func(r Record) interface{} { return r.Name }},
		{Header: "Position", Value: func(r Record) interface{} { return r.Position }},
		{Header: "Department", Value: func(r Record) interface{} { return r.Department }},
		{Header: "Period", Value: func(r Record) interface{} { return r.Period }},
		{Header: "Gross", Value: func(r Record) interface{} { return r.Gross() }},
		{Header: "Deductions", Value: func(r Record) interface{} { return r.Deductions() }},
		{Header: "Net", Value: func(r Record) interface{} { return r.Net() }},
		{Header: "Payment Date", Value: func(r Record) interface{} { return r.PaymentDate }},
		{Header: "Status", Value: func(r Record) interface{} { return r.Status }},
	},
}

type Stats struct {
	Records         int          `json:"records"`
	TotalGross      float64      `json:"total_gross"`
	TotalDeductions float64      `json:"total_deductions"`
	TotalNet        float64      `json:"total_net"`
	AverageNet      null.Float64 `json:"average_net"`
	HighestNet      null.Float64 `json:"highest_net"`
	LowestNet       null.Float64 `json:"lowest_net"`
	Paid            int          `json:"paid"`
	PendingAmount   float64      `json:"pending_amount"`
}
