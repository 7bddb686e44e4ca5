package utils

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/dto/requests"
	"clinic-bridge-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// BuildPaginationRequest reads page and pageSize. Absent values take the
// defaults; present values outside the accepted range are rejected.
func BuildPaginationRequest(r *http.Request) (requests.Pagination, error) {
	pagination := requests.Pagination{
		Page:     constvars.DefaultPage,
		PageSize: constvars.DefaultPageSize,
	}

	if raw := FirstQuery(r, "page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, exceptions.ErrInvalidPage(err)
		}
		if err := ValidateVar(page, "gte=1"); err != nil {
			return pagination, exceptions.ErrInvalidPage(err)
		}
		pagination.Page = page
	}

	if raw := FirstQuery(r, "pageSize", "page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return pagination, exceptions.ErrInvalidPageSize(err)
		}
		if err := ValidateVar(pageSize, "gte=1,lte=100"); err != nil {
			return pagination, exceptions.ErrInvalidPageSize(err)
		}
		pagination.PageSize = pageSize
	}

	return pagination, nil
}

// BuildOffsetPaginationRequest maps limit/offset onto page numbers.
func BuildOffsetPaginationRequest(r *http.Request) requests.Pagination {
	limit, err := strconv.Atoi(FirstQuery(r, "limit"))
	if err != nil || limit <= 0 {
		limit = constvars.DefaultPageSize
	}
	if limit > constvars.MaxPageSize {
		limit = constvars.MaxPageSize
	}
	offset, err := strconv.Atoi(FirstQuery(r, "offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return requests.Pagination{
		Page:     offset/limit + 1,
		PageSize: limit,
	}
}

// FirstQuery returns the first non-empty query value among keys.
func FirstQuery(r *http.Request, keys ...string) string {
	query := r.URL.Query()
	for _, key := range keys {
		if value := strings.TrimSpace(query.Get(key)); value != "" {
			return value
		}
	}
	return ""
}

// QueryBool returns nil when the parameter is absent or not a boolean.
func QueryBool(r *http.Request, keys ...string) *bool {
	raw := FirstQuery(r, keys...)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

// ParseRequestBody decodes a JSON body into dst. An empty body leaves dst untouched.
func ParseRequestBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
