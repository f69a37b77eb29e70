package dto

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is the envelope returned by every list endpoint: the total number of
// matching records plus the requested slice of them.
type Page struct {
	Count   int64       `json:"count"`
	Results interface{} `json:"results"`
}

// Pagination is a normalized page request.
type Pagination struct {
	Page     int
	PageSize int
}

func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
