package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name      string
		params    PaginationParams
		wantItems []int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first page", PaginationParams{Page: 1, PerPage: 3}, []int{1, 2, 3}, 3, true, false},
		{"last partial page", PaginationParams{Page: 3, PerPage: 3}, []int{7}, 3, false, true},
		{"past the end", PaginationParams{Page: 9, PerPage: 3}, []int{}, 3, false, true},
		{"defaults applied", PaginationParams{}, []int{1, 2, 3, 4, 5, 6, 7}, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			result := Paginate(items, &params)

			assert.Equal(t, tt.wantItems, result.Items)
			assert.Equal(t, int64(len(items)), result.Pagination.Total)
			assert.Equal(t, tt.wantPages, result.Pagination.TotalPages)
			assert.Equal(t, tt.wantNext, result.Pagination.HasNext)
			assert.Equal(t, tt.wantPrev, result.Pagination.HasPrev)
		})
	}
}

func TestValidate_ClampsPerPage(t *testing.T) {
	p := &PaginationParams{Page: -2, PerPage: 500}
	p.Validate()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
}
