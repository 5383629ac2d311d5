// Package pagination splits an in-memory list into fixed-size pages and builds
// the compact page-control sequence shown under a listing.
package pagination

import "errors"

// DefaultSiblings is the number of pages shown on each side of the current page
// in the control sequence.
const DefaultSiblings = 1

// ErrInvalidConfiguration is returned when the page size is not positive.
var ErrInvalidConfiguration = errors.New("pagination: limit must be positive")

// Result is one page of items plus everything a listing needs to draw its
// "Showing X–Y of N" caption and page controls.
//
// FirstItem and LastItem are 1-based display indices; both are 0 when the list
// is empty. Page is the effective (clamped) page, 0 when the list is empty.
type Result[T any] struct {
	Items      []T       `json:"items"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
	Pages      []int     `json:"pages"`
	Controls   []Control `json:"controls"`
	FirstItem  int       `json:"first_item,omitempty"`
	LastItem   int       `json:"last_item,omitempty"`
	HasPrev    bool      `json:"has_prev"`
	HasNext    bool      `json:"has_next"`
	PrevPage   int       `json:"prev_page,omitempty"`
	NextPage   int       `json:"next_page,omitempty"`
}

type options struct {
	siblings int
}

// Option tunes the control sequence.
type Option func(*options)

// WithSiblings sets how many pages are listed on each side of the current page.
// Negative values are treated as 0.
func WithSiblings(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.siblings = n
	}
}

// Paginate returns the requested page of items.
// A currentPage past the last page is clamped to the last page and a
// currentPage below 1 is clamped to 1, so a shrinking list never yields a
// blank page with a stale page number.
func Paginate[T any](items []T, limit, currentPage int, opts ...Option) (Result[T], error) {
	if limit <= 0 {
		return Result[T]{}, ErrInvalidConfiguration
	}
	o := options{siblings: DefaultSiblings}
	for _, opt := range opts {
		opt(&o)
	}

	total := len(items)
	totalPages := TotalPages(total, limit)
	res := Result[T]{
		Items:      []T{},
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		Pages:      make([]int, 0, totalPages),
		Controls:   []Control{},
	}
	if totalPages == 0 {
		return res, nil
	}

	page := clamp(currentPage, 1, totalPages)
	start := (page - 1) * limit
	end := start + min(limit, total-start)

	// full slice expression keeps appends by the caller off the shared backing array
	res.Items = items[start:end:end]
	res.Page = page
	for p := 1; p <= totalPages; p++ {
		res.Pages = append(res.Pages, p)
	}
	res.Controls = Controls(totalPages, page, o.siblings)
	res.FirstItem = start + 1
	res.LastItem = end
	if page > 1 {
		res.HasPrev = true
		res.PrevPage = page - 1
	}
	if page < totalPages {
		res.HasNext = true
		res.NextPage = page + 1
	}
	return res, nil
}

// TotalPages returns ceil(total/limit), 0 for an empty list or a non-positive limit.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total-1)/limit + 1
}

// InRange reports whether page is a valid page for a list of totalPages pages.
func InRange(page, totalPages int) bool {
	return page >= 1 && page <= totalPages
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
