package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 20)
	for i := 1; i <= 20; i++ {
		items = append(items, i)
	}

	tests := []struct {
		name      string
		params    PaginationParams
		wantFirst int
		wantLen   int
		wantPage  int
	}{
		{"first page", PaginationParams{Page: 1, PerPage: 9}, 1, 9, 1},
		{"middle page", PaginationParams{Page: 2, PerPage: 9}, 10, 9, 2},
		{"short last page", PaginationParams{Page: 3, PerPage: 9}, 19, 2, 3},
		{"past the end clamps to last", PaginationParams{Page: 99, PerPage: 9}, 19, 2, 3},
		{"invalid params fall back to defaults", PaginationParams{Page: -1, PerPage: 0}, 1, 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Paginate(items, &tt.params)
			assert.Len(t, result.Items, tt.wantLen)
			assert.Equal(t, tt.wantFirst, result.Items[0])
			assert.Equal(t, tt.wantPage, result.Pagination.CurrentPage)
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	result := Paginate([]int{}, DefaultPagination())
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNext)
}

func TestPaginationMeta(t *testing.T) {
	meta := NewPagination(2, 9, 20)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}
