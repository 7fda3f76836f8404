package visits

import (
	"slices"
	"strings"
	"time"

	"repair_visits/internal/domain/entities"
)

// DefaultCostCeiling is the upper cost bound used when a cost range is
// requested without one.
const DefaultCostCeiling = 5000.0

const dateLayout = "2006-01-02"

// Criteria is a request-scoped set of optional predicates. Families are
// combined with AND; values inside a family are combined with OR. Zero
// values impose no constraint.
type Criteria struct {
	VisitID     string   `json:"id,omitempty"`
	Statuses    []string `json:"statuses,omitempty"`
	Technicians []string `json:"technicians,omitempty"`
	Types       []string `json:"types,omitempty"`
	Priorities  []string `json:"priorities,omitempty"`

	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
	Today    bool   `json:"today,omitempty"`

	CostMin *float64 `json:"costMin,omitempty"`
	CostMax *float64 `json:"costMax,omitempty"`

	HasParts   bool `json:"hasParts,omitempty"`
	HasPhotos  bool `json:"hasPhotos,omitempty"`
	UrgentOnly bool `json:"urgentOnly,omitempty"`

	Search string `json:"search,omitempty"`
}

type predicate func(Record) bool

// Filter returns the records satisfying every supplied predicate. A visit id
// short-circuits every other family. A search string is applied last and
// leaves the result in relevance order.
func Filter(records []Record, c Criteria, now time.Time) []Record {
	if id := strings.TrimSpace(c.VisitID); id != "" {
		return findByID(records, id)
	}
	out := applyPredicates(records, c.predicates(now))
	if q := strings.TrimSpace(c.Search); q != "" {
		out = rankBySearch(out, q, nil)
	}
	return out
}

func findByID(records []Record, id string) []Record {
	for _, r := range records {
		if r.ID() == id {
			return []Record{r}
		}
	}
	return []Record{}
}

func applyPredicates(records []Record, preds []predicate) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if matchesAll(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAll(r Record, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

func (c Criteria) predicates(now time.Time) []predicate {
	var preds []predicate

	if set := valueSet(c.Statuses); set != nil {
		preds = append(preds, func(r Record) bool { return set.has(string(r.Visit.Status)) })
	}
	if set := valueSet(c.Technicians); set != nil {
		preds = append(preds, func(r Record) bool {
			return set.has(r.TechnicianID) || set.has(r.Visit.TechnicianID) || set.has(r.Visit.EmployeeID)
		})
	}
	if set := valueSet(c.Types); set != nil {
		preds = append(preds, func(r Record) bool { return set.has(string(r.Visit.Type)) })
	}
	if from := strings.TrimSpace(c.DateFrom); from != "" {
		preds = append(preds, func(r Record) bool { return r.Date != "" && r.Date >= from })
	}
	if to := strings.TrimSpace(c.DateTo); to != "" {
		preds = append(preds, func(r Record) bool { return r.Date != "" && r.Date <= to })
	}
	if c.Today {
		today := now.Format(dateLayout)
		preds = append(preds, func(r Record) bool { return r.Date == today })
	}
	if set := valueSet(c.Priorities); set != nil {
		preds = append(preds, func(r Record) bool { return set.has(string(r.Priority)) })
	}
	if c.CostMin != nil || c.CostMax != nil {
		lo, hi := 0.0, DefaultCostCeiling
		if c.CostMin != nil {
			lo = *c.CostMin
		}
		if c.CostMax != nil {
			hi = *c.CostMax
		}
		preds = append(preds, func(r Record) bool { return r.TotalCost >= lo && r.TotalCost <= hi })
	}
	if c.HasParts {
		preds = append(preds, Record.HasParts)
	}
	if c.HasPhotos {
		preds = append(preds, Record.HasPhotos)
	}
	if c.UrgentOnly {
		preds = append(preds, func(r Record) bool { return r.Priority == entities.PriorityUrgent })
	}
	return preds
}

type stringSet map[string]struct{}

func (s stringSet) has(v string) bool {
	_, ok := s[v]
	return ok
}

// valueSet returns nil when values holds nothing usable, so an empty
// selection means no constraint.
func valueSet(values []string) stringSet {
	set := make(stringSet, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" && !strings.EqualFold(v, "all") {
			set[v] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// SplitList splits comma-joined multi-select values, dropping blanks.
func SplitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" && !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	return out
}
