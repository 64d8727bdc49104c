// Package domain contains the core data types for the Trip Planner application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field bounds for a TripPlan. Every persisted record satisfies them.
const (
	MaxTitleLen       = 100
	MaxDestinationLen = 100
	MinDays           = 1
	MaxDays           = 365
	MinBudget         = 0
)

// TripPlan is the sole entity of the application: one planned trip.
// ID and CreatedAt are assigned by the store on creation and never change.
type TripPlan struct {
	ID          uuid.UUID
	Title       string
	Destination string
	Days        int
	Budget      float64
	CreatedAt   time.Time
}

// TripPatch carries the mutable fields of a TripPlan. A nil field means
// "not provided": on create every field is required, on update nil fields
// are left unchanged.
type TripPatch struct {
	Title       *string
	Destination *string
	Days        *int
	Budget      *float64
}

// Normalize returns a copy of p with Title and Destination trimmed.
func (p TripPatch) Normalize() TripPatch {
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		p.Title = &t
	}
	if p.Destination != nil {
		d := strings.TrimSpace(*p.Destination)
		p.Destination = &d
	}
	return p
}

// ValidateCreate checks that every field is present and within bounds.
// It returns nil or a *ValidationError listing every failing field.
func (p TripPatch) ValidateCreate() error {
	var v ValidationError
	if p.Title == nil {
		v.Add("title", CodeRequired, "Title is required")
	}
	if p.Destination == nil {
		v.Add("destination", CodeRequired, "Destination is required")
	}
	if p.Days == nil {
		v.Add("days", CodeRequired, "Number of days is required")
	}
	if p.Budget == nil {
		v.Add("budget", CodeRequired, "Budget is required")
	}
	p.checkBounds(&v)
	return v.Err()
}

// ValidateUpdate checks the bounds of every provided field. Absent fields
// are not an error.
func (p TripPatch) ValidateUpdate() error {
	var v ValidationError
	p.checkBounds(&v)
	return v.Err()
}

func (p TripPatch) checkBounds(v *ValidationError) {
	if p.Title != nil {
		checkText(v, "title", "Title", *p.Title, MaxTitleLen)
	}
	if p.Destination != nil {
		checkText(v, "destination", "Destination", *p.Destination, MaxDestinationLen)
	}
	if p.Days != nil {
		switch {
		case *p.Days < MinDays:
			v.Add("days", CodeTooSmall, "Days must be at least 1")
		case *p.Days > MaxDays:
			v.Add("days", CodeTooBig, "Days cannot exceed 365")
		}
	}
	if p.Budget != nil && *p.Budget < MinBudget {
		v.Add("budget", CodeTooSmall, "Budget cannot be negative")
	}
}

func checkText(v *ValidationError, field, label, value string, limit int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		v.Add(field, CodeRequired, label+" is required")
	case n > limit:
		v.Add(field, CodeTooBig, fmt.Sprintf("%s cannot exceed %d characters", label, limit))
	}
}
