// Package query holds the generic pagination and search helpers applied
// uniformly across entity collections.
package query

import "strings"

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

const defaultPageSize = 20

// Paginate slices data 1-indexed. An out-of-range page yields an empty
// Data slice with Total unchanged; it is not an error.
func Paginate[T any](data []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	total := len(data)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, data[start:end])

	return Page[T]{
		Data:       out,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// FilterBySearch keeps entries whose extracted fields contain term,
// case-insensitively. A blank term returns the input unchanged.
func FilterBySearch[T any](data []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return data
	}

	out := make([]T, 0, len(data))
	for _, item := range data {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
