package entities

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"
)

// Order is the durable unit of work: one client repair request and the
// visits scheduled for it.
//
// Storage model:
//   - orders are read and written as a whole collection
//   - Version is an optimistic-concurrency stamp bumped on every write of the order
//   - a "visits" value that is not an array is preserved verbatim and yields no visits
type Order struct {
	ID          string   `json:"id"`
	OrderNumber string   `json:"orderNumber,omitempty"`
	ClientName  string   `json:"clientName,omitempty"`
	ClientPhone string   `json:"clientPhone,omitempty"`
	ClientEmail string   `json:"clientEmail,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	PostalCode  string   `json:"postalCode,omitempty"`
	DeviceType  string   `json:"deviceType,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Model       string   `json:"model,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	Status      string   `json:"status,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	Version     int64    `json:"version,omitempty"`

	Visits []Visit                    `json:"-"`
	Extra  map[string]json.RawMessage `json:"-"`

	visitsRaw json.RawMessage
}

var orderFields = jsonFieldNames(reflect.TypeOf(Order{}), "visits")

func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var head struct {
		Visits json.RawMessage `json:"visits"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	extra, err := unknownFields(data, orderFields)
	if err != nil {
		return err
	}
	*o = Order(a)
	o.Extra = extra
	o.Visits, o.visitsRaw = decodeVisits(head.Visits)
	return nil
}

func decodeVisits(raw json.RawMessage) ([]Visit, json.RawMessage) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, trimmed
	}
	visits := make([]Visit, 0, len(entries))
	for _, entry := range entries {
		var v Visit
		if err := json.Unmarshal(entry, &v); err != nil || !isJSONObject(entry) {
			visits = append(visits, Visit{raw: entry})
			continue
		}
		visits = append(visits, v)
	}
	return visits, nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	data, err := json.Marshal(alias(o))
	if err != nil {
		return nil, err
	}
	extra := make(map[string]json.RawMessage, len(o.Extra)+1)
	for k, v := range o.Extra {
		extra[k] = v
	}
	switch {
	case o.Visits != nil:
		visits, err := json.Marshal(o.Visits)
		if err != nil {
			return nil, err
		}
		extra["visits"] = visits
	case o.visitsRaw != nil:
		extra["visits"] = o.visitsRaw
	}
	return mergeFields(data, extra)
}

// Clone returns a copy whose visit list can be modified without touching o.
func (o Order) Clone() Order {
	c := o
	c.Visits = slices.Clone(o.Visits)
	return c
}

// HasUniqueID reports whether orders[i] has an id that no other order in
// orders shares, so the order can be addressed by id alone.
func HasUniqueID(orders []Order, i int) bool {
	id := orders[i].ID
	if id == "" {
		return false
	}
	for j, o := range orders {
		if j != i && o.ID == id {
			return false
		}
	}
	return true
}

// FindVisit returns the index of the visit with the given id, or -1.
func (o Order) FindVisit(id string) int {
	for i, v := range o.Visits {
		if !v.Malformed() && v.ID == id {
			return i
		}
	}
	return -1
}
