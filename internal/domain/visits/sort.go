package visits

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"repair_visits/internal/domain/entities"
)

type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByClient     SortKey = "client"
	SortByTechnician SortKey = "technician"
	SortByStatus     SortKey = "status"
	SortByType       SortKey = "type"
	SortByCost       SortKey = "cost"
	SortByWaitTime   SortKey = "waitTime"
	SortByPriority   SortKey = "priority"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts asc/desc in any case; anything else is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Descending)) {
		return Descending
	}
	return Ascending
}

var priorityRank = map[entities.Priority]int{
	entities.PriorityUrgent: 4,
	entities.PriorityHigh:   3,
	entities.PriorityNormal: 2,
	entities.PriorityLow:    1,
}

func rankOf(p entities.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return priorityRank[entities.PriorityNormal]
}

// Sorter orders records. It owns a collator and must not be shared between
// goroutines.
type Sorter struct {
	collator *collate.Collator
}

func NewSorter(locale language.Tag) *Sorter {
	return &Sorter{collator: collate.New(locale)}
}

// Known reports whether key selects a comparator other than the default.
func Known(key SortKey) bool {
	switch key {
	case SortByDate, SortByClient, SortByTechnician, SortByStatus, SortByType, SortByCost, SortByWaitTime, SortByPriority:
		return true
	}
	return false
}

// Sort returns a stably sorted copy of records. An empty or unknown key
// sorts by scheduled date-time, newest first, whatever the direction.
func (s *Sorter) Sort(records []Record, key SortKey, dir Direction) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, s.Compare(key, dir))
	return out
}

// Compare returns the comparator Sort uses for key and dir.
func (s *Sorter) Compare(key SortKey, dir Direction) func(a, b Record) int {
	if !Known(key) {
		return invert(compareDate)
	}
	base := s.comparator(key)
	if dir == Descending {
		return invert(base)
	}
	return base
}

func (s *Sorter) comparator(key SortKey) func(a, b Record) int {
	switch key {
	case SortByClient:
		return func(a, b Record) int { return s.collator.CompareString(a.ClientName, b.ClientName) }
	case SortByTechnician:
		return func(a, b Record) int { return strings.Compare(a.TechnicianName, b.TechnicianName) }
	case SortByStatus:
		return func(a, b Record) int { return strings.Compare(string(a.Visit.Status), string(b.Visit.Status)) }
	case SortByType:
		return func(a, b Record) int { return strings.Compare(string(a.Visit.Type), string(b.Visit.Type)) }
	case SortByCost:
		return func(a, b Record) int { return cmp.Compare(a.TotalCost, b.TotalCost) }
	case SortByWaitTime:
		return func(a, b Record) int { return waitingSince(a).Compare(waitingSince(b)) }
	case SortByPriority:
		return func(a, b Record) int { return cmp.Compare(rankOf(a.Priority), rankOf(b.Priority)) }
	default:
		return compareDate
	}
}

func invert(f func(a, b Record) int) func(a, b Record) int {
	return func(a, b Record) int { return f(b, a) }
}

func compareDate(a, b Record) int {
	return scheduledAt(a).Compare(scheduledAt(b))
}

var scheduleLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339}

// scheduledAt parses the combined date-time; unparsable values are the zero
// time and sort first in ascending order.
func scheduledAt(r Record) time.Time {
	return parseFirst(r.ScheduledDateTime, scheduleLayouts)
}

var createdLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", dateLayout}

func waitingSince(r Record) time.Time {
	if t := parseFirst(r.Visit.CreatedAt, createdLayouts); !t.IsZero() {
		return t
	}
	return scheduledAt(r)
}

func parseFirst(value string, layouts []string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
