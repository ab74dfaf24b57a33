package finance

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction statuses
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// Invoice statuses
const (
	InvoicePaid    = "paid"
	InvoicePending = "pending"
	InvoiceOverdue = "overdue"
)

type Transaction struct {
	ID          string      `json:"id" yaml:"id"`
	Date        string      `json:"date" yaml:"date"`
	Description string      `json:"description" yaml:"description"`
	Category    string      `json:"category" yaml:"category"`
	Type        string      `json:"type" yaml:"type"`
	Amount      float64     `json:"amount" yaml:"amount"`
	Method      string      `json:"method" yaml:"method"`
	Status      string      `json:"status" yaml:"status"`
	Reference   null.String `json:"reference" yaml:"reference"`
}

type Budget struct {
	ID         string      `json:"id" yaml:"id"`
	Category   string      `json:"category" yaml:"category"`
	Department string      `json:"department" yaml:"department"`
	Period     string      `json:"period" yaml:"period"`
	Allocated  float64     `json:"allocated" yaml:"allocated"`
	Spent      float64     `json:"spent" yaml:"spent"`
	Notes      null.String `json:"notes" yaml:"notes"`
}

func (b Budget) Remaining() float64 {
	return b.Allocated - b.Spent
}

// Utilization is the spent amount as a percentage of the allocation.
func (b Budget) Utilization() null.Float64 {
	return collection.Percent(b.Spent, b.Allocated)
}

type Invoice struct {
	ID            string   `json:"id" yaml:"id"`
	InvoiceNumber string   `json:"invoice_number" yaml:"invoice_number"`
	Student       string   `json:"student" yaml:"student"`
	StudentID     string   `json:"student_id" yaml:"student_id"`
	Amount        float64  `json:"amount" yaml:"amount"`
	Paid          float64  `json:"paid" yaml:"paid"`
	IssueDate     string   `json:"issue_date" yaml:"issue_date"`
	DueDate       string   `json:"due_date" yaml:"due_date"`
	Status        string   `json:"status" yaml:"status"`
	Items         []string `json:"items" yaml:"items"`
}

func (inv Invoice) Balance() float64 {
	return inv.Amount - inv.Paid
}

type TransactionFilter struct {
	Search   string `query:"search"`
	Type     string `query:"type" validate:"omitempty,oneof=all income expense"`
	Category string `query:"category"`
	Status   string `query:"status" validate:"omitempty,oneof=all completed pending"`
	Ordering string `query:"ordering"`
}

func (qf *TransactionFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Type = core.CleanString(qf.Type, true /* lower */)
	qf.Category = core.CleanString(qf.Category)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf TransactionFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"type":     qf.Type,
			"category": qf.Category,
			"status":   qf.Status,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

type BudgetFilter struct {
	Search   string `query:"search"`
	Period   string `query:"period"`
	Ordering string `query:"ordering"`
}

func (qf *BudgetFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Period = core.CleanString(qf.Period)
}

func (qf BudgetFilter) Query() collection.Query {
	return collection.Query{
		Search:   qf.Search,
		Filters:  map[string]string{"period": qf.Period},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

type InvoiceFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status" validate:"omitempty,oneof=all paid pending overdue"`
	Ordering string `query:"ordering"`
}

func (qf *InvoiceFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf InvoiceFilter) Query() collection.Query {
	return collection.Query{
		Search:   qf.Search,
		Filters:  map[string]string{"status": qf.Status},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Transactions = collection.Config[Transaction]{
	ID: func(tx Transaction) string { return tx.ID },
	Search: []collection.Field[Transaction]{
		func(tx Transaction) null.String { return collection.Str(tx.Description) },
		func(tx Transaction) null.String { return tx.Reference },
		func(tx Transaction) null.String { return collection.Str(tx.Category) },
	},
	Filters: map[string]collection.Field[Transaction]{
		"type":     func(tx Transaction) null.String { return collection.Str(tx.Type) },
		"category": func(tx Transaction) null.String { return collection.Str(tx.Category) },
		"status":   func(tx Transaction) null.String { return collection.Str(tx.Status) },
	},
	Orderings: map[string]collection.Less[Transaction]{
		"date":   collection.ByString(func(tx Transaction) null.String { return collection.Str(tx.Date) }),
		"amount": collection.ByNumber(func(tx Transaction) float64 { return tx.Amount }),
	},
	Columns: []collection.Column[Transaction]{
		{Header: "ID", Value: func(tx Transaction) interface{} { return tx.ID }},
		{Header: "Date", Value: func(tx Transaction) interface{} { return tx.Date }},
		{Header: "Description", Value: func(tx Transaction) interface{} { return tx.Description }},
		{Header: "Category", Value: func(tx Transaction) interface{} { return tx.Category }},
		{Header: "Type", Value: func(tx Transaction) interface{} { return tx.Type }},
		{Header: "Amount", Value: func(tx Transaction) interface{} { return tx.Amount }},
		{Header: "Method", Value: func(tx Transaction) interface{} { return tx.Method }},
		{Header: "Status", Value: func(tx Transaction) interface{} { return tx.Status }},
		{Header: "Reference", Value: func(tx Transaction) interface{} { return tx.Reference }},
	},
}

var Budgets = collection.Config[Budget]{
	ID: func(b Budget) string { return b.ID },
	Search: []collection.Field[Budget]{
		func(b Budget) null.String { return collection.Str(b.Category) },
		func(b Budget) null.String { return collection.Str(b.Department) },
	},
	Filters: map[string]collection.Field[Budget]{
		"period": func(b Budget) null.String { return collection.Str(b.Period) },
	},
	Orderings: map[string]collection.Less[Budget]{
		"allocated":   collection.ByNumber(func(b Budget) float64 { return b.Allocated }),
		"spent":       collection.ByNumber(func(b Budget) float64 { return b.Spent }),
		"utilization": collection.ByOptionalNumber(Budget.Utilization),
	},
	Columns: []collection.Column[Budget]{
		{Header: "ID", Value: func(b Budget) interface{} { return b.ID }},
		{Header: "Category", Value: func(b Budget) interface{} { return b.Category }},
		{Header: "Department", Value: func(b Budget) interface{} { return b.Department }},
		{Header: "Period", Value: func(b Budget) interface{} { return b.Period }},
		{Header: "Allocated", Value: func(b Budget) interface{} { return b.Allocated }},
		{Header: "Spent", Value: func(b Budget) interface{} { return b.Spent }},
		{Header: "Remaining", Value: func(b Budget) interface{} { return b.Remaining() }},
		{Header: "Utilization %", Value: func(b Budget) interface{} { return b.Utilization() }},
	},
}

var Invoices = collection.Config[Invoice]{
	ID: func(inv Invoice) string { return inv.ID },
	Search: []collection.Field[Invoice]{
		func(inv Invoice) null.String { return collection.Str(inv.InvoiceNumber) },
		func(inv Invoice) null.String { return collection.Str(inv.Student) },
		func(inv Invoice) null.String { return collection.Str(inv.StudentID) },
	},
	Filters: map[string]collection.Field[Invoice]{
		"status": func(inv Invoice) null.String { return collection.Str(inv.Status) },
	},
	Orderings: map[string]collection.Less[Invoice]{
		"due_date": collection.ByString(func(inv Invoice) null.String { return collection.Str(inv.DueDate) }),
		"amount":   collection.ByNumber(func(inv Invoice) float64 { return inv.Amount }),
		"balance":  collection.ByNumber(Invoice.Balance),
	},
	Columns: []collection.Column[Invoice]{
		{Header: "ID", Value: func(inv Invoice) interface{} { return inv.ID }},
		{Header: "Invoice", Value: func(inv Invoice) interface{} { return inv.InvoiceNumber }},
		{Header: "Student", Value: func(inv Invoice) interface{} { return inv.Student }},
		{Header: "Student ID", Value: func(inv Invoice) interface{} { return inv.StudentID }},
		{Header: "Amount", Value: func(inv Invoice) interface{} { return inv.Amount }},
		{Header: "Paid", Value: func(inv Invoice) interface{} { return inv.Paid }},
		{Header: "Due Date", Value: func(inv Invoice) interface{} { return inv.DueDate }},
		{Header: "Status", Value: func(inv Invoice) interface{} { return inv.Status }},
		{Header: "Items", Value: func(inv Invoice) interface{} { return inv.Items }},
	},
}

type Stats struct {
	Transactions      int          `json:"transactions"`
	TotalIncome       float64      `json:"total_income"`
	TotalExpense      float64      `json:"total_expense"`
	NetIncome         float64      `json:"net_income"`
	PendingAmount     float64      `json:"pending_amount"`
	BudgetAllocated   float64      `json:"budget_allocated"`
	BudgetSpent       float64      `json:"budget_spent"`
	BudgetUtilization null.Float64 `json:"budget_utilization"`
	Invoiced          float64      `json:"invoiced"`
	Collected         float64      `json:"collected"`
	Outstanding       float64      `json:"outstanding"`
	OverdueInvoices   int          `json:"overdue_invoices"`
	CollectionRate    null.Float64 `json:"collection_rate"`
}
