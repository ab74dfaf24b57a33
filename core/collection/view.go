package collection

import (
	"github.com/pkg/errors"
)

// ErrNoRecord is returned when selecting an ID that is not in the source list.
var ErrNoRecord = errors.New("no record with this id")

// View holds the state of one screen over a fixed source list: search text, categorical filters,
// current page and detail overlay. It is not safe for concurrent use.
type View[T any] struct {
	cfg      *Config[T]
	title    string
	source   []T
	pageSize int

	query   Query
	page    int
	overlay Overlay[T]
}

// NewView returns a view over recs. A pageSize <= 0 disables pagination.
func NewView[T any](title string, cfg *Config[T], recs []T, pageSize int) *View[T] {
	v := &View[T]{
		cfg:      cfg,
		title:    title,
		source:   recs,
		pageSize: pageSize,
	}
	v.Reset()
	return v
}

func (v *View[T]) Title() string {
	return v.title
}

// Reset restores the initial state: no search, every filter on All, first page, overlay closed.
func (v *View[T]) Reset() {
	v.query = Query{Filters: make(map[string]string, len(v.cfg.Filters))}
	for name := range v.cfg.Filters {
		v.query.Filters[name] = All
	}
	v.page = 1
	v.overlay.Close()
}

func (v *View[T]) Query() Query {
	q := Query{Search: v.query.Search, Filters: make(map[string]string, len(v.query.Filters))}
	for name, val := range v.query.Filters {
		q.Filters[name] = val
	}
	return q
}

func (v *View[T]) SetSearch(search string) {
	v.query.Search = search
	v.clampPage()
}

func (v *View[T]) SetFilter(name, value string) error {
	if _, ok := v.cfg.Filters[name]; !ok {
		return errors.Wrap(errUnknownFilter, name)
	}
	if value == "" {
		value = All
	}
	v.query.Filters[name] = value
	v.clampPage()
	return nil
}

// Items returns the filtered list.
func (v *View[T]) Items() []T {
	return v.cfg.Filter(v.source, v.query)
}

func (v *View[T]) Page() Page[T] {
	return Paginate(v.Items(), v.page, v.pageSize)
}

// Position returns the current page, the page count and the number of filtered records.
func (v *View[T]) Position() (page, pages, total int) {
	p := v.Page()
	return p.Page, p.TotalPages, p.Total
}

func (v *View[T]) SetPage(page int) {
	v.page = page
	v.clampPage()
}

func (v *View[T]) NextPage() {
	v.SetPage(v.page + 1)
}

func (v *View[T]) PrevPage() {
	v.SetPage(v.page - 1)
}

func (v *View[T]) clampPage() {
	if v.pageSize <= 0 {
		v.page = 1
		return
	}
	v.page = ClampPage(v.page, TotalPages(len(v.Items()), v.pageSize))
}

// Select opens the overlay on the source record with the given ID.
func (v *View[T]) Select(id string) error {
	rec, ok := v.cfg.Find(v.source, id)
	if !ok {
		return errors.Wrap(ErrNoRecord, id)
	}
	v.overlay.Open(rec)
	return nil
}

func (v *View[T]) Close() {
	v.overlay.Close()
}

func (v *View[T]) Overlay() Overlay[T] {
	return v.overlay
}

// Sheet renders the current page.
func (v *View[T]) Sheet() Sheet {
	return NewSheet(v.title, v.cfg, v.Page().Items)
}

// Detail renders the record the overlay is open on, one row per column.
func (v *View[T]) Detail() (Sheet, bool) {
	rec, ok := v.overlay.Selected()
	if !ok {
		return Sheet{}, false
	}
	row := NewSheet(v.title, v.cfg, []T{rec})
	detail := Sheet{Title: v.title, Header: []string{"Field", "Value"}}
	for i, h := range row.Header {
		detail.Rows = append(detail.Rows, []interface{}{h, row.Rows[0][i]})
	}
	return detail, true
}
