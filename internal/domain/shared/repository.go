package shared

// Filter is the list query shared by repositories. Filters holds exact
// column matches; repositories decide which keys they honour.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
}

// DefaultFilter is page 1 of 20, newest first.
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  map[string]any{},
	}
}

func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Paginated is one page of a list result.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	var pages int
	if pageSize > 0 {
		pages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return Paginated[T]{Items: items, Total: total, Page: page, PageSize: pageSize, TotalPages: pages}
}
