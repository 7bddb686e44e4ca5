package utils

import (
	"clinic-bridge-service/internal/pkg/dto/requests"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("second page of ten", func(t *testing.T) {
		page, pagination := Paginate(items, requests.Pagination{Page: 2, PageSize: 10})

		assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, page)
		assert.Equal(t, 2, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
		assert.Equal(t, 25, pagination.TotalRecords)
		assert.Equal(t, 3, pagination.TotalPages)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, _ := Paginate(items, requests.Pagination{Page: 3, PageSize: 10})
		assert.Equal(t, []int{21, 22, 23, 24, 25}, page)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, pagination := Paginate(items, requests.Pagination{Page: 9, PageSize: 10})
		assert.Empty(t, page)
		assert.Equal(t, 25, pagination.TotalRecords)
	})

	t.Run("huge page does not overflow", func(t *testing.T) {
		assert.NotPanics(t, func() {
			page, pagination := Paginate(items, requests.Pagination{Page: math.MaxInt64 / 10, PageSize: 20})
			assert.Empty(t, page)
			assert.Equal(t, 25, pagination.TotalRecords)
			assert.Equal(t, 2, pagination.TotalPages)
		})
	})

	t.Run("defaults", func(t *testing.T) {
		page, pagination := Paginate(items, requests.Pagination{})
		assert.Len(t, page, 20)
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 20, pagination.PageSize)
		assert.Equal(t, 2, pagination.TotalPages)
	})

	t.Run("empty input", func(t *testing.T) {
		pagination := EmptyPage(requests.Pagination{Page: 1, PageSize: 10})
		assert.Equal(t, 0, pagination.TotalRecords)
		assert.Equal(t, 0, pagination.TotalPages)
	})
}
