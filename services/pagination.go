package services

import "fmt"

// Pagination carries the page metadata the dashboard consumes.
type Pagination struct {
	CurrentPage int     `json:"current_page"`
	LastPage    int     `json:"last_page"`
	PerPage     int     `json:"per_page"`
	Total       int64   `json:"total"`
	PrevPageURL *string `json:"prev_page_url"`
	NextPageURL *string `json:"next_page_url"`
}

// NewPagination builds the metadata for one page. An empty collection still
// reports last_page 1 so navigation always has a valid target.
func NewPagination(path string, page, perPage int, total int64) Pagination {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	p := Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if page > 1 {
		prev := fmt.Sprintf("%s?page=%d", path, page-1)
		p.PrevPageURL = &prev
	}
	if page < lastPage {
		next := fmt.Sprintf("%s?page=%d", path, page+1)
		p.NextPageURL = &next
	}
	return p
}
