package visits

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"repair_visits/internal/domain/entities"
)

// Query is one read request against a snapshot.
type Query struct {
	Criteria  Criteria
	SortKey   SortKey
	Direction Direction
	Page      int
	Limit     int
	WithStats bool
}

// Result is the answer to a Query.
type Result struct {
	Items      []Record
	Pagination PageMeta
	// Stats covers the whole snapshot, not the filtered view; nil unless requested.
	Stats  *Stats
	Report ExtractReport
}

// Run executes the read pipeline: extract, aggregate the unfiltered set,
// filter, order, paginate.
//
// With a search string the result is in relevance order; an explicit sort
// key then only breaks ties between equally relevant visits.
func Run(orders []entities.Order, technicians []entities.Technician, q Query, now time.Time, locale language.Tag) Result {
	records, report := Extract(orders, technicians)

	res := Result{Report: report}
	if q.WithStats {
		st := ComputeStats(records, now)
		res.Stats = &st
	}

	sorter := NewSorter(locale)
	var ordered []Record
	c := q.Criteria
	switch search := strings.TrimSpace(c.Search); {
	case strings.TrimSpace(c.VisitID) != "":
		ordered = Filter(records, c, now)
	case search != "":
		var tiebreak func(a, b Record) int
		if Known(q.SortKey) {
			tiebreak = sorter.Compare(q.SortKey, q.Direction)
		}
		ordered = rankBySearch(applyPredicates(records, c.predicates(now)), search, tiebreak)
	default:
		ordered = sorter.Sort(Filter(records, c, now), q.SortKey, q.Direction)
	}

	res.Items, res.Pagination = Paginate(ordered, q.Page, q.Limit)
	return res
}
