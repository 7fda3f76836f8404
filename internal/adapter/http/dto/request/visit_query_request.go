package request

import (
	"math"
	"strconv"
	"strings"
	"time"

	"repair_visits/internal/domain/visits"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// VisitQueryRequest is the query string of GET /visits. Every field is bound
// as text so malformed values fall back to defaults instead of failing the
// request.
//
// Status and technician are accepted in two shapes: the multi-select
// (statuses, technicians) as repeated or comma-joined values, and the older
// single value (status, technician). The multi-select wins when both are sent.
type VisitQueryRequest struct {
	ID          string   `form:"id"`
	Statuses    []string `form:"statuses"`
	Status      string   `form:"status"`
	Technicians []string `form:"technicians"`
	Technician  string   `form:"technician"`
	Types       []string `form:"type"`
	Priorities  []string `form:"priority"`
	DateFrom    string   `form:"dateFrom"`
	DateTo      string   `form:"dateTo"`
	Today       string   `form:"today"`
	CostMin     string   `form:"costMin"`
	CostMax     string   `form:"costMax"`
	HasParts    string   `form:"hasParts"`
	HasPhotos   string   `form:"hasPhotos"`
	UrgentOnly  string   `form:"urgentOnly"`
	Search      string   `form:"search"`
	Sort        string   `form:"sort"`
	Order       string   `form:"order"`
	Page        string   `form:"page"`
	Limit       string   `form:"limit"`
	Stats       string   `form:"stats"`
}

func (r VisitQueryRequest) ToQuery() visits.Query {
	return visits.Query{
		Criteria:  r.Criteria(),
		SortKey:   visits.SortKey(strings.TrimSpace(r.Sort)),
		Direction: visits.ParseDirection(r.Order),
		Page:      parsePositive(r.Page, DefaultPage, 0),
		Limit:     parsePositive(r.Limit, DefaultLimit, MaxLimit),
		WithStats: parseFlag(r.Stats),
	}
}

func (r VisitQueryRequest) Criteria() visits.Criteria {
	return visits.Criteria{
		VisitID:     strings.TrimSpace(r.ID),
		Statuses:    dualShape(r.Statuses, r.Status),
		Technicians: dualShape(r.Technicians, r.Technician),
		Types:       visits.SplitList(r.Types...),
		Priorities:  visits.SplitList(r.Priorities...),
		DateFrom:    parseDay(r.DateFrom),
		DateTo:      parseDay(r.DateTo),
		Today:       parseFlag(r.Today),
		CostMin:     parseAmount(r.CostMin),
		CostMax:     parseAmount(r.CostMax),
		HasParts:    parseFlag(r.HasParts),
		HasPhotos:   parseFlag(r.HasPhotos),
		UrgentOnly:  parseFlag(r.UrgentOnly),
		Search:      strings.TrimSpace(r.Search),
	}
}

func dualShape(multi []string, single string) []string {
	if values := visits.SplitList(multi...); len(values) > 0 {
		return values
	}
	return visits.SplitList(single)
}

func parseFlag(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return err == nil && b
}

// parseDay keeps s only when it is a calendar date (YYYY-MM-DD).
func parseDay(s string) string {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return ""
	}
	return s
}

func parseAmount(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parsePositive returns s as an int, def when it is missing or below one,
// and ceiling when ceiling is set and exceeded.
func parsePositive(s string, def, ceiling int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return def
	}
	if ceiling > 0 && v > ceiling {
		return ceiling
	}
	return v
}
