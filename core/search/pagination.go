// ABOUTME: Pagination of ranked search candidates
// ABOUTME: Slices the ordered list into 1-indexed fixed-size pages

package search

import "cultural-search-api/core/domain"

// Page is one slice of an ordered candidate list
type Page struct {
	Items      []domain.SearchCandidate
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Paginate returns the requested page of items.
// page values below 1 select the first page and a non-positive pageSize
// falls back to defaultPageSize. A page past the end is empty.
func Paginate(items []domain.SearchCandidate, page, pageSize, defaultPageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize <= 0 {
		pageSize = 1
	}

	total := len(items)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	p := Page{
		Items:      []domain.SearchCandidate{},
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	// page <= totalPages keeps the offset below total
	if page > totalPages {
		return p
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, total-start)
	p.Items = items[start:end]
	return p
}
