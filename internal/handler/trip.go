package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// tripResponse is the wire shape of a TripPlan.
type tripResponse struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Budget      float64   `json:"budget"`
	CreatedAt   time.Time `json:"createdAt"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type listTripsResponse struct {
	Trips      []tripResponse     `json:"trips"`
	Pagination paginationResponse `json:"pagination"`
}

// tripRequest is the body of POST and PUT. Absent fields stay nil.
// Days is decoded as a number so that integral values such as 5.0 are accepted.
type tripRequest struct {
	Title       *string  `json:"title"`
	Destination *string  `json:"destination"`
	Days        *float64 `json:"days"`
	Budget      *float64 `json:"budget"`
}

// ListTrips handles GET /api/trips.
// Supports ?page=, ?limit=, ?search=, ?minBudget= and ?maxBudget=; all optional.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	var params domain.TripQueryParams
	query := r.URL.Query()
	for _, p := range []struct {
		name string
		dest **string
	}{
		{"page", &params.Page},
		{"limit", &params.Limit},
		{"search", &params.Search},
		{"minBudget", &params.MinBudget},
		{"maxBudget", &params.MaxBudget},
	} {
		if err := runtime.BindQueryParameter("form", true, false, p.name, query, p.dest); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid query parameter %s", p.name))
			return
		}
	}

	page, err := s.trips.List(r.Context(), domain.NewTripQuery(params))
	if err != nil {
		s.writeServiceError(w, r, err, "Failed to fetch trips")
		return
	}

	resp := listTripsResponse{
		Trips: make([]tripResponse, len(page.Trips)),
		Pagination: paginationResponse{
			Page:  page.Pagination.Page,
			Limit: page.Pagination.Limit,
			Total: page.Pagination.Total,
			Pages: page.Pagination.Pages,
		},
	}
	for i, t := range page.Trips {
		resp.Trips[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTrip handles GET /api/trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "Failed to fetch trip")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.decodeTrip(w, r)
	if !ok {
		return
	}

	created, err := s.trips.Create(r.Context(), fields)
	if err != nil {
		s.writeServiceError(w, r, err, "Failed to create trip")
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// UpdateTrip handles PUT /api/trips/{id}. Any subset of fields may be sent.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	patch, ok := s.decodeTrip(w, r)
	if !ok {
		return
	}

	updated, err := s.trips.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.writeServiceError(w, r, err, "Failed to update trip")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// --- mapping helpers --------------------------------------------------------

// decodeTrip reads the request body into a TripPatch. It writes the error
// response itself and returns false when the body cannot be used.
// An empty body decodes to an empty patch. Anything after the JSON object
// other than whitespace makes the body invalid.
func (s *Server) decodeTrip(w http.ResponseWriter, r *http.Request) (domain.TripPatch, bool) {
	var body tripRequest
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&body)
	if err == nil {
		if _, tokErr := dec.Token(); !errors.Is(tokErr, io.EOF) {
			err = errTrailingData
			if errors.As(tokErr, new(*http.MaxBytesError)) {
				err = tokErr
			}
		}
	}

	var (
		typeErr *json.UnmarshalTypeError
		sizeErr *http.MaxBytesError
	)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		days, ok := wholeNumber(body.Days)
		if !ok {
			s.writeServiceError(w, r, domain.InvalidField("days", "Expected integer"), "Invalid request body")
			return domain.TripPatch{}, false
		}
		return domain.TripPatch{
			Title:       body.Title,
			Destination: body.Destination,
			Days:        days,
			Budget:      body.Budget,
		}, true
	case errors.As(err, &typeErr) && typeErr.Field != "":
		s.writeServiceError(w, r, domain.InvalidField(typeErr.Field, expected(typeErr.Field, typeErr.Type)), "Invalid request body")
	case errors.As(err, &sizeErr):
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	default:
		writeError(w, http.StatusBadRequest, "Invalid request body")
	}
	return domain.TripPatch{}, false
}

var errTrailingData = errors.New("unexpected data after JSON body")

// integerFields are decoded as JSON numbers but must hold whole values.
var integerFields = map[string]bool{"days": true}

// wholeNumber converts an integral float to an int. Values beyond the int32
// range are clamped; they fail the bounds check either way.
func wholeNumber(v *float64) (*int, bool) {
	if v == nil {
		return nil, true
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) || *v != math.Trunc(*v) {
		return nil, false
	}
	n := int(max(min(*v, math.MaxInt32), math.MinInt32))
	return &n, true
}

// expected describes the JSON type a field should have held.
func expected(field string, t reflect.Type) string {
	if integerFields[field] {
		return "Expected integer"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		return "Expected integer"
	case reflect.Float64:
		return "Expected number"
	case reflect.String:
		return "Expected string"
	default:
		return "Invalid type"
	}
}

// tripToResponse converts a domain.TripPlan into its wire shape.
func tripToResponse(t domain.TripPlan) tripResponse {
	return tripResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Destination: t.Destination,
		Days:        t.Days,
		Budget:      t.Budget,
		CreatedAt:   t.CreatedAt,
	}
}
