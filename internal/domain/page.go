package domain

import (
	"math"
	"strconv"
)

// Pagination defaults. Limit is capped at MaxLimit to bound query cost.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageWindow carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed.
type PageWindow struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPageWindow builds a PageWindow from optional raw query values.
// Missing, non-numeric, or non-positive values fall back to the defaults
// (page=1, limit=10). The limit is capped at 100.
func NewPageWindow(page, limit *string) PageWindow {
	w := PageWindow{Page: DefaultPage, Limit: DefaultLimit}
	if n, ok := parsePositive(page); ok {
		w.Page = n
	}
	if n, ok := parsePositive(limit); ok {
		w.Limit = min(n, MaxLimit)
	}
	return w
}

func parsePositive(s *string) (int, bool) {
	if s == nil {
		return 0, false
	}
	n, err := strconv.Atoi(*s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Skip returns the zero-based row offset for a SQL OFFSET clause.
// It saturates at math.MaxInt instead of overflowing, so a huge page number
// is simply past the end of the results.
func (w PageWindow) Skip() int {
	if w.Page <= 1 || w.Limit <= 0 {
		return 0
	}
	if w.Page-1 > math.MaxInt/w.Limit {
		return math.MaxInt
	}
	return (w.Page - 1) * w.Limit
}

// Pagination is the metadata returned alongside a page of results.
// Total counts the filtered set before skip/limit are applied.
type Pagination struct {
	Page  int
	Limit int
	Total int64
	Pages int
}

// NewPagination derives the page count from total and the window's limit.
func NewPagination(w PageWindow, total int64) Pagination {
	pages := 0
	if w.Limit > 0 {
		pages = int((total + int64(w.Limit) - 1) / int64(w.Limit))
	}
	return Pagination{Page: w.Page, Limit: w.Limit, Total: total, Pages: pages}
}

// TripPage is one page of a trip listing.
type TripPage struct {
	Trips      []TripPlan
	Pagination Pagination
}
