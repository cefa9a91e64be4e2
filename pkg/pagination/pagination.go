package pagination

import "math"

// Pagination represents pagination metadata for a listed page
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// PaginationParams represents input parameters for pagination
type PaginationParams struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// DefaultPagination returns the default page size used by console listings
func DefaultPagination() *PaginationParams {
	return &PaginationParams{
		Page:    1,
		PerPage: 9,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 9
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset calculates the index of the first item on the page
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// NewPagination creates pagination metadata for a total item count
func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// PaginatedResult represents a paginated result with items and pagination info
type PaginatedResult[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// Paginate slices an in-memory list down to the requested page. Pages past the
// end clamp to the last page rather than returning nothing, matching how the
// console listings behave when the operator keeps paging forward.
func Paginate[T any](items []T, params *PaginationParams) *PaginatedResult[T] {
	params.Validate()

	total := int64(len(items))
	meta := NewPagination(params.Page, params.PerPage, total)
	if meta.TotalPages > 0 && params.Page > meta.TotalPages {
		params.Page = meta.TotalPages
		meta = NewPagination(params.Page, params.PerPage, total)
	}

	start := params.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + params.PerPage
	if end > len(items) {
		end = len(items)
	}

	return &PaginatedResult[T]{
		Items:      items[start:end],
		Pagination: meta,
	}
}
