package response

import (
	"repair_visits/internal/domain/entities"
	"repair_visits/internal/domain/visits"
)

type AppliedFilters struct {
	visits.Criteria
	Sort  string `json:"sort,omitempty"`
	Order string `json:"order"`
}

type VisitListResponse struct {
	Data       []visits.Record `json:"data"`
	Pagination visits.PageMeta `json:"pagination"`
	Stats      *visits.Stats   `json:"stats,omitempty"`
	Filters    AppliedFilters  `json:"filters"`
}

type VisitResponse struct {
	Data visits.Record `json:"data"`
}

type UpdatedVisitResponse struct {
	Data entities.Visit `json:"data"`
}

type StatsResponse struct {
	Data visits.Stats `json:"data"`
}

// FromResult echoes q back as the applied filters. Data is never null.
func FromResult(res visits.Result, q visits.Query) VisitListResponse {
	data := res.Items
	if data == nil {
		data = []visits.Record{}
	}
	return VisitListResponse{
		Data:       data,
		Pagination: res.Pagination,
		Stats:      res.Stats,
		Filters: AppliedFilters{
			Criteria: q.Criteria,
			Sort:     string(q.SortKey),
			Order:    string(q.Direction),
		},
	}
}
