package library

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// Book statuses
const (
	BookAvailable   = "available"
	BookLimited     = "limited"
	BookUnavailable = "unavailable"
)

// Borrowing statuses
const (
	BorrowingActive   = "borrowed"
	BorrowingReturned = "returned"
	BorrowingOverdue  = "overdue"
)

type Book struct {
	ID            string       `json:"id" yaml:"id"`
	Title         string       `json:"title" yaml:"title"`
	Author        string       `json:"author" yaml:"author"`
	ISBN          string       `json:"isbn" yaml:"isbn"`
	Category      string       `json:"category" yaml:"category"`
	Publisher     null.String  `json:"publisher" yaml:"publisher"`
	PublishedYear null.Int     `json:"published_year" yaml:"published_year"`
	Copies        int          `json:"copies" yaml:"copies"`
	Available     int          `json:"available" yaml:"available"`
	Location      string       `json:"location" yaml:"location"`
	Status        string       `json:"status" yaml:"status"`
	Rating        null.Float64 `json:"rating" yaml:"rating"`
}

func (b Book) Borrowed() int {
	return b.Copies - b.Available
}

type Borrowing struct {
	ID         string      `json:"id" yaml:"id"`
	BookID     string      `json:"book_id" yaml:"book_id"`
	BookTitle  string      `json:"book_title" yaml:"book_title"`
	Borrower   string      `json:"borrower" yaml:"borrower"`
	BorrowerID string      `json:"borrower_id" yaml:"borrower_id"`
	BorrowDate string      `json:"borrow_date" yaml:"borrow_date"`
	DueDate    string      `json:"due_date" yaml:"due_date"`
	ReturnDate null.String `json:"return_date" yaml:"return_date"`
	Status     string      `json:"status" yaml:"status"`
	Fine       float64     `json:"fine" yaml:"fine"`
}

type BookFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status" validate:"omitempty,oneof=all available limited unavailable"`
	Ordering string `query:"ordering"`
}

func (qf *BookFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Category = core.CleanString(qf.Category)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf BookFilter) Query() collection.Query {
	return collection.Query{
		Search: qf.Search,
		Filters: map[string]string{
			"category": qf.Category,
			"status":   qf.Status,
		},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

type BorrowingFilter struct {
	Search   string `query:"search"`
	Status   string `query:"status" validate:"omitempty,oneof=all borrowed returned overdue"`
	Ordering string `query:"ordering"`
}

func (qf *BorrowingFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf BorrowingFilter) Query() collection.Query {
	return collection.Query{
		Search:   qf.Search,
		Filters:  map[string]string{"status": qf.Status},
		Ordering: collection.ParseOrdering(qf.Ordering),
	}
}

var Books = collection.Config[Book]{
	ID: func(b Book) string { return b.ID },
	Search: []collection.Field[Book]{
		func(b Book) null.String { return collection.Str(b.Title) },
		func(b Book) null.String { return collection.Str(b.Author) },
		func(b Book) null.String { return collection.Str(b.ISBN) },
	},
	Filters: map[string]collection.Field[Book]{
		"category": func(b Book) null.String { return collection.Str(b.Category) },
		"status":   func(b Book) null.String { return collection.Str(b.Status) },
	},
	Orderings: map[string]collection.Less[Book]{
		"title":     collection.ByString(func(b Book) null.String { return collection.Str(b.Title) }),
		"author":    collection.ByString(func(b Book) null.String { return collection.Str(b.Author) }),
		"available": collection.ByNumber(func(b Book) float64 { return float64(b.Available) }),
		"rating":    collection.ByOptionalNumber(func(b Book) null.Float64 { return b.Rating }),
	},
	Columns: []collection.Column[Book]{
		{Header: "ID", Value: func(b Book) interface{} { return b.ID }},
		{Header: "Title", Value: func(b Book) interface{} { return b.Title }},
		{Header: "Author", Value: func(b Book) interface{} { return b.Author }},
		{Header: "ISBN", Value: func(b Book) interface{} { return b.ISBN }},
		{Header: "Category", Value: func(b Book) interface{} { return b.Category }},
		{Header: "Publisher", Value: func(b Book) interface{} { return b.Publisher }},
		{Header: "Year", Value: func(b Book) interface{} { return b.PublishedYear }},
		{Header: "Copies", Value: func(b Book) interface{} { return b.Copies }},
		{Header: "Available", Value: func(b Book) interface{} { return b.Available }},
		{Header: "Location", Value: func(b Book) interface{} { return b.Location }},
		{Header: "Rating", Value: func(b Book) interface{} { return b.Rating }},
		{Header: "Status", Value: func(b Book) interface{} { return b.Status }},
	},
}

var Borrowings = collection.Config[Borrowing]{
	ID: func(br Borrowing) string { return br.ID },
	Search: []collection.Field[Borrowing]{
		func(br Borrowing) null.String { return collection.Str(br.BookTitle) },
		func(br Borrowing) null.String { return collection.Str(br.Borrower) },
	},
	Filters: map[string]collection.Field[Borrowing]{
		"status": func(br Borrowing) null.String { return collection.Str(br.Status) },
	},
	Orderings: map[string]collection.Less[Borrowing]{
		"due_date": collection.ByString(func(br Borrowing) null.String { return collection.Str(br.DueDate) }),
		"fine":     collection.ByNumber(func(br Borrowing) float64 { return br.Fine }),
	},
	Columns: []collection.Column[Borrowing]{
		{Header: "ID", Value: func(br Borrowing) interface{} { return br.ID }},
		{Header: "Book", Value: func(br Borrowing) interface{} { return br.BookTitle }},
		{Header: "Borrower", Value: func(br Borrowing) interface{} { return br.Borrower }},
		{Header: "Borrowed", Value: func(br Borrowing) interface{} { return br.BorrowDate }},
		{Header: "Due", Value: func(br Borrowing) interface{} { return br.DueDate }},
		{Header: "Returned", Value: func(br Borrowing) interface{} { return br.ReturnDate }},
		{Header: "Fine", Value: func(br Borrowing) interface{} { return br.Fine }},
		{Header: "Status", Value: func(br Borrowing) interface{} { return br.Status }},
	},
}

type Stats struct {
	Titles        int          `json:"titles"`
	Copies        int          `json:"copies"`
	Available     int          `json:"available"`
	Borrowed      int          `json:"borrowed"`
	Overdue       int          `json:"overdue"`
	TotalFines    float64      `json:"total_fines"`
	AverageRating null.Float64 `json:"average_rating"`
}
