package domain

import (
	"math"
	"strconv"
	"strings"
)

// Condition is one term of a TripFilter. The concrete variants are
// TextMatch and BudgetRange; the repo layer switches on them.
type Condition interface {
	condition()
}

// Filterable text fields of a TripPlan.
const (
	FieldTitle       = "title"
	FieldDestination = "destination"
)

// TextMatch matches records where any of Fields contains Term,
// case-insensitively. Term is a literal substring, not a pattern.
type TextMatch struct {
	Term   string
	Fields []string
}

// BudgetRange matches records with Min <= budget <= Max.
// A nil bound is open.
type BudgetRange struct {
	Min *float64
	Max *float64
}

func (TextMatch) condition()   {}
func (BudgetRange) condition() {}

// TripFilter is the conjunction of its conditions.
// A filter with no conditions matches every record.
type TripFilter struct {
	Conditions []Condition
}

// IsEmpty reports whether f matches every record.
func (f TripFilter) IsEmpty() bool {
	return len(f.Conditions) == 0
}

// TripQueryParams carries the raw, optional list parameters exactly as they
// arrive on the query string.
type TripQueryParams struct {
	Page      *string
	Limit     *string
	Search    *string
	MinBudget *string
	MaxBudget *string
}

// TripQuery is a filter plus the page window to read from the filtered,
// newest-first result set.
type TripQuery struct {
	Filter TripFilter
	Window PageWindow
}

// NewTripQuery builds a TripQuery from raw parameters.
// A blank search adds no condition. Budget bounds that do not parse as
// numbers are ignored.
func NewTripQuery(p TripQueryParams) TripQuery {
	q := TripQuery{Window: NewPageWindow(p.Page, p.Limit)}

	if p.Search != nil {
		if term := strings.TrimSpace(*p.Search); term != "" {
			q.Filter.Conditions = append(q.Filter.Conditions, TextMatch{
				Term:   term,
				Fields: []string{FieldTitle, FieldDestination},
			})
		}
	}

	r := BudgetRange{Min: parseFloat(p.MinBudget), Max: parseFloat(p.MaxBudget)}
	if r.Min != nil || r.Max != nil {
		q.Filter.Conditions = append(q.Filter.Conditions, r)
	}

	return q
}

func parseFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
