package visits

import (
	"encoding/json"
	"strings"

	"repair_visits/internal/domain/entities"
)

// UnassignedTechnician is the technician name of visits whose technician
// cannot be resolved.
const UnassignedTechnician = "unassigned"

const defaultVisitTime = "00:00"

// ExtractReport counts the entries extraction refused to surface.
type ExtractReport struct {
	Orders     int `json:"orders"`
	Visits     int `json:"visits"`
	Orphaned   int `json:"orphaned"`
	Duplicates int `json:"duplicates"`
	Malformed  int `json:"malformed"`
}

// Skipped is the number of stored visit entries not surfaced.
func (r ExtractReport) Skipped() int { return r.Orphaned + r.Duplicates + r.Malformed }

// Extract flattens every visit nested in orders into an enriched Record.
//
// Rules:
//   - orderId comes from the visit, else the order number, else the order id
//   - a visit whose own orderId names no order in the snapshot is orphaned and skipped
//   - visit ids are unique in the output; later duplicates and id-less or undecodable entries are skipped
//   - missing dates and technicians degrade to defaults instead of failing
//   - parts come from partsUsed, else from the legacy parts list
//
// Output order follows the order and visit sequence of the input.
func Extract(orders []entities.Order, technicians []entities.Technician) ([]Record, ExtractReport) {
	report := ExtractReport{Orders: len(orders)}

	techByID := make(map[string]entities.Technician, len(technicians))
	for _, t := range technicians {
		if _, ok := techByID[t.ID]; !ok && t.ID != "" {
			techByID[t.ID] = t
		}
	}

	orderKeys := make(map[string]struct{}, len(orders)*2)
	for _, o := range orders {
		if o.ID != "" {
			orderKeys[o.ID] = struct{}{}
		}
		if o.OrderNumber != "" {
			orderKeys[o.OrderNumber] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	var out []Record
	for _, o := range orders {
		for _, v := range o.Visits {
			if v.Malformed() || strings.TrimSpace(v.ID) == "" {
				report.Malformed++
				continue
			}
			if v.OrderID != "" {
				if _, ok := orderKeys[v.OrderID]; !ok {
					report.Orphaned++
					continue
				}
			}
			if _, dup := seen[v.ID]; dup {
				report.Duplicates++
				continue
			}
			seen[v.ID] = struct{}{}
			out = append(out, enrich(o, v, techByID))
		}
	}
	report.Visits = len(out)
	return out, report
}

func enrich(o entities.Order, v entities.Visit, techByID map[string]entities.Technician) Record {
	r := Record{
		Visit:         v,
		OrderID:       firstNonEmpty(v.OrderID, o.OrderNumber, o.ID),
		OrderNumber:   o.OrderNumber,
		OrderStatus:   o.Status,
		OrderPriority: o.Priority,
		ClientName:    o.ClientName,
		ClientPhone:   o.ClientPhone,
		ClientEmail:   o.ClientEmail,
		Address:       o.Address,
		City:          o.City,
		PostalCode:    o.PostalCode,
		DeviceType:    o.DeviceType,
		Brand:         o.Brand,
		Model:         o.Model,
		Priority:      entities.Priority(firstNonEmpty(string(v.Priority), string(o.Priority))),
		TechnicianID:  firstNonEmpty(v.TechnicianID, v.EmployeeID),
		Date:          firstNonEmpty(v.ScheduledDate, v.Date),
		Time:          firstNonEmpty(v.ScheduledTime, v.Time, defaultVisitTime),
		TotalCost:     v.TotalCost.Float64(),
		TotalPhotos:   len(v.BeforePhotos) + len(v.AfterPhotos),
	}
	r.ScheduledDateTime = r.Date + "T" + r.Time

	r.TechnicianName = UnassignedTechnician
	if t, ok := lookupTechnician(techByID, v.TechnicianID, v.EmployeeID); ok {
		if name := t.DisplayName(); name != "" {
			r.TechnicianName = name
		}
		r.TechnicianPhone = t.Phone
		r.TechnicianEmail = t.Email
	}

	r.Parts = v.PartsUsed
	if len(r.Parts) == 0 {
		r.Parts = legacyParts(v.Extra["parts"])
	}
	for _, p := range r.Parts {
		r.PartsCost += p.Price.Float64()
	}
	return r
}

// legacyParts decodes the older parts key. Entries that are not objects,
// such as bare part names, still count as parts but carry no price.
func legacyParts(raw json.RawMessage) []entities.PartUsage {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	parts := make([]entities.PartUsage, 0, len(entries))
	for _, e := range entries {
		var p entities.PartUsage
		if err := json.Unmarshal(e, &p); err != nil {
			var name string
			_ = json.Unmarshal(e, &name)
			p = entities.PartUsage{Name: name}
		}
		parts = append(parts, p)
	}
	return parts
}

func lookupTechnician(byID map[string]entities.Technician, ids ...string) (entities.Technician, bool) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if t, ok := byID[id]; ok {
			return t, true
		}
	}
	return entities.Technician{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
