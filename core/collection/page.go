package collection

type Page[T any] struct {
	Items       []T  `json:"items"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// TotalPages returns ceil(total/size).
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage brings page into [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the records [(page-1)*size, page*size) of recs.
// A page outside the valid range is clamped to the nearest valid page. A size <= 0 returns everything as one page.
func Paginate[T any](recs []T, page, size int) Page[T] {
	total := len(recs)
	if size <= 0 {
		size = total
	}
	totalPages := TotalPages(total, size)
	page = ClampPage(page, totalPages)

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := make([]T, end-start)
	copy(items, recs[start:end])

	return Page[T]{
		Items:       items,
		Page:        page,
		PageSize:    size,
		Total:       total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
