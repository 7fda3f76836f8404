// Package visits is the in-memory visit query engine: it flattens the visits
// nested in orders into enriched records, then filters, ranks, sorts,
// paginates and aggregates them. Every function here is pure; callers own
// loading and persisting the snapshot.
package visits

import (
	"encoding/json"

	"repair_visits/internal/domain/entities"
)

// Record is a visit enriched with the order, client, device and technician
// fields needed for display and filtering. The enriched fields are
// projections recomputed on every extraction and are never stored.
type Record struct {
	Visit entities.Visit

	OrderID       string
	OrderNumber   string
	OrderStatus   string
	OrderPriority entities.Priority

	ClientName  string
	ClientPhone string
	ClientEmail string
	Address     string
	City        string
	PostalCode  string
	DeviceType  string
	Brand       string
	Model       string

	// Priority is the visit's own priority, or the order's when absent.
	Priority entities.Priority

	TechnicianID    string
	TechnicianName  string
	TechnicianPhone string
	TechnicianEmail string

	Date              string
	Time              string
	ScheduledDateTime string

	// Parts is partsUsed, or the legacy parts list when partsUsed is empty.
	Parts []entities.PartUsage

	TotalCost   float64
	PartsCost   float64
	TotalPhotos int
}

func (r Record) ID() string { return r.Visit.ID }

func (r Record) HasParts() bool { return len(r.Parts) > 0 || len(r.Visit.PartsUsed) > 0 }

func (r Record) HasPhotos() bool {
	return len(r.Visit.Photos) > 0 || r.TotalPhotos > 0
}

type recordProjection struct {
	OrderID           string            `json:"orderId"`
	OrderNumber       string            `json:"orderNumber,omitempty"`
	OrderStatus       string            `json:"orderStatus,omitempty"`
	OrderPriority     entities.Priority `json:"orderPriority,omitempty"`
	ClientName        string            `json:"clientName"`
	ClientPhone       string            `json:"clientPhone"`
	ClientEmail       string            `json:"clientEmail"`
	Address           string            `json:"address"`
	City              string            `json:"city"`
	PostalCode        string            `json:"postalCode"`
	DeviceType        string            `json:"deviceType"`
	Brand             string            `json:"brand"`
	Model             string            `json:"model"`
	Priority          entities.Priority `json:"priority"`
	TechnicianID      string            `json:"technicianId"`
	TechnicianName    string            `json:"technicianName"`
	TechnicianPhone   string            `json:"technicianPhone"`
	TechnicianEmail   string            `json:"technicianEmail"`
	ScheduledDateTime string            `json:"scheduledDateTime"`
	TotalCost         float64           `json:"totalCost"`
	PartsCost         float64           `json:"partsCost"`
	TotalPhotos       int               `json:"totalPhotos"`
}

// MarshalJSON renders the native visit fields with the projections laid
// over them, which is the flat shape the UI consumes.
func (r Record) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(r.Visit)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	proj, err := json.Marshal(recordProjection{
		OrderID:           r.OrderID,
		OrderNumber:       r.OrderNumber,
		OrderStatus:       r.OrderStatus,
		OrderPriority:     r.OrderPriority,
		ClientName:        r.ClientName,
		ClientPhone:       r.ClientPhone,
		ClientEmail:       r.ClientEmail,
		Address:           r.Address,
		City:              r.City,
		PostalCode:        r.PostalCode,
		DeviceType:        r.DeviceType,
		Brand:             r.Brand,
		Model:             r.Model,
		Priority:          r.Priority,
		TechnicianID:      r.TechnicianID,
		TechnicianName:    r.TechnicianName,
		TechnicianPhone:   r.TechnicianPhone,
		TechnicianEmail:   r.TechnicianEmail,
		ScheduledDateTime: r.ScheduledDateTime,
		TotalCost:         r.TotalCost,
		PartsCost:         r.PartsCost,
		TotalPhotos:       r.TotalPhotos,
	})
	if err != nil {
		return nil, err
	}
	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(proj, &overlay); err != nil {
		return nil, err
	}
	for k, v := range overlay {
		fields[k] = v
	}
	return json.Marshal(fields)
}
