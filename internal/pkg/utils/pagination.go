package utils

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/dto/responses"
)

// Paginate slices items in memory. Zero or negative page values fall back to the defaults.
func Paginate[T any](items []T, pagination requests.Pagination) ([]T, *responses.Pagination) {
	page := pagination.Page
	if page <= 0 {
		page = constvars.DefaultPage
	}
	pageSize := pagination.PageSize
	if pageSize <= 0 {
		pageSize = constvars.DefaultPageSize
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := total
	if page-1 < totalPages {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return pageItems, &responses.Pagination{
		Page:         page,
		PageSize:     pageSize,
		TotalRecords: total,
		TotalPages:   totalPages,
	}
}

// EmptyPage is the pagination reported when nothing could be listed.
func EmptyPage(pagination requests.Pagination) *responses.Pagination {
	_, page := Paginate([]struct{}{}, pagination)
	return page
}
