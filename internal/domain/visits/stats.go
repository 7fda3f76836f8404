package visits

import (
	"time"

	"repair_visits/internal/domain/entities"
)

// Stats summarises a visit collection for dashboards.
type Stats struct {
	Total           int            `json:"total"`
	Today           int            `json:"today"`
	ThisWeek        int            `json:"thisWeek"`
	ByStatus        map[string]int `json:"byStatus"`
	ByType          map[string]int `json:"byType"`
	ByPriority      map[string]int `json:"byPriority"`
	AverageDuration float64        `json:"averageDuration"`
	TotalCost       float64        `json:"totalCost"`
	TotalPartsCost  float64        `json:"totalPartsCost"`
}

// ComputeStats aggregates records in a single pass. Values outside the
// fixed status, type and priority sets are left out of the buckets. The
// week runs from Monday 00:00 in now's location to the next Monday.
func ComputeStats(records []Record, now time.Time) Stats {
	st := Stats{
		Total:      len(records),
		ByStatus:   make(map[string]int, len(entities.VisitStatuses)),
		ByType:     make(map[string]int, len(entities.VisitTypes)),
		ByPriority: make(map[string]int, len(entities.Priorities)),
	}
	for _, s := range entities.VisitStatuses {
		st.ByStatus[string(s)] = 0
	}
	for _, t := range entities.VisitTypes {
		st.ByType[string(t)] = 0
	}
	for _, p := range entities.Priorities {
		st.ByPriority[string(p)] = 0
	}

	today := now.Format(dateLayout)
	weekStart, weekEnd := isoWeek(now)

	var durationSum float64
	var durationCount int
	for _, r := range records {
		if r.Date == today {
			st.Today++
		}
		if d, err := time.ParseInLocation(dateLayout, r.Date, now.Location()); err == nil {
			if !d.Before(weekStart) && d.Before(weekEnd) {
				st.ThisWeek++
			}
		}
		bump(st.ByStatus, string(r.Visit.Status))
		bump(st.ByType, string(r.Visit.Type))
		bump(st.ByPriority, string(r.Priority))

		if r.Visit.ActualDuration != nil {
			durationSum += r.Visit.ActualDuration.Float64()
			durationCount++
		}
		st.TotalCost += r.TotalCost
		st.TotalPartsCost += r.PartsCost
	}
	if durationCount > 0 {
		st.AverageDuration = durationSum / float64(durationCount)
	}
	return st
}

func bump(buckets map[string]int, key string) {
	if _, ok := buckets[key]; ok {
		buckets[key]++
	}
}

func isoWeek(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	sinceMonday := (int(midnight.Weekday()) + 6) % 7
	start := midnight.AddDate(0, 0, -sinceMonday)
	return start, start.AddDate(0, 0, 7)
}
