package entities

import (
	"encoding/json"
	"fmt"
	"reflect"
)

type VisitType string

const (
	VisitTypeDiagnosis    VisitType = "diagnosis"
	VisitTypeRepair       VisitType = "repair"
	VisitTypeFollowUp     VisitType = "follow-up"
	VisitTypeInstallation VisitType = "installation"
	VisitTypeMaintenance  VisitType = "maintenance"
)

var VisitTypes = []VisitType{
	VisitTypeDiagnosis,
	VisitTypeRepair,
	VisitTypeFollowUp,
	VisitTypeInstallation,
	VisitTypeMaintenance,
}

type VisitStatus string

const (
	VisitStatusScheduled   VisitStatus = "scheduled"
	VisitStatusInProgress  VisitStatus = "in-progress"
	VisitStatusCompleted   VisitStatus = "completed"
	VisitStatusCancelled   VisitStatus = "cancelled"
	VisitStatusRescheduled VisitStatus = "rescheduled"
)

var VisitStatuses = []VisitStatus{
	VisitStatusScheduled,
	VisitStatusInProgress,
	VisitStatusCompleted,
	VisitStatusCancelled,
	VisitStatusRescheduled,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities are the values visits are bucketed by; low is only known to the
// ranking table.
var Priorities = []Priority{PriorityNormal, PriorityHigh, PriorityUrgent}

// PartUsage is one line of parts consumed during a visit.
type PartUsage struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Price    Amount `json:"price,omitempty"`
	Quantity Amount `json:"quantity,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var partUsageFields = jsonFieldNames(reflect.TypeOf(PartUsage{}))

func (p *PartUsage) UnmarshalJSON(data []byte) error {
	type alias PartUsage
	var a alias
	var rejected map[string]json.RawMessage
	if err := json.Unmarshal(data, &a); err != nil {
		a = alias{}
		if rejected, err = decodeLenient(data, &a); err != nil {
			return err
		}
	}
	extra, err := unknownFields(data, partUsageFields)
	if err != nil {
		return err
	}
	*p = PartUsage(a)
	p.Extra = withFields(extra, rejected)
	return nil
}

func (p PartUsage) MarshalJSON() ([]byte, error) {
	type alias PartUsage
	data, err := json.Marshal(alias(p))
	if err != nil {
		return nil, err
	}
	return mergeFields(data, p.Extra)
}

// Visit is a visit as stored inside its order. Two generations of field
// names coexist in the data (scheduledDate/date, scheduledTime/time,
// technicianId/employeeId, partsUsed/parts); both are kept here exactly as
// stored and only reconciled when visits are extracted for querying.
//
// Decoding is lenient: a field holding a value of the wrong type keeps its
// zero value and the stored value is carried in Extra, so one bad field
// never hides the visit.
type Visit struct {
	ID             string            `json:"id"`
	OrderID        string            `json:"orderId,omitempty"`
	ScheduledDate  string            `json:"scheduledDate,omitempty"`
	Date           string            `json:"date,omitempty"`
	ScheduledTime  string            `json:"scheduledTime,omitempty"`
	Time           string            `json:"time,omitempty"`
	CreatedAt      string            `json:"createdAt,omitempty"`
	UpdatedAt      string            `json:"updatedAt,omitempty"`
	Type           VisitType         `json:"type,omitempty"`
	Status         VisitStatus       `json:"status,omitempty"`
	Priority       Priority          `json:"priority,omitempty"`
	TechnicianID   string            `json:"technicianId,omitempty"`
	EmployeeID     string            `json:"employeeId,omitempty"`
	TotalCost      Amount            `json:"totalCost,omitempty"`
	PartsUsed      []PartUsage       `json:"partsUsed,omitempty"`
	BeforePhotos   []json.RawMessage `json:"beforePhotos,omitempty"`
	AfterPhotos    []json.RawMessage `json:"afterPhotos,omitempty"`
	Photos         []json.RawMessage `json:"photos,omitempty"`
	WorkSessions   []json.RawMessage `json:"workSessions,omitempty"`
	ActualDuration *Amount           `json:"actualDuration,omitempty"`
	Notes          string            `json:"notes,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`

	// raw holds an entry that could not be decoded; it is written back as is.
	raw json.RawMessage
}

var visitFields = jsonFieldNames(reflect.TypeOf(Visit{}))

func (v *Visit) UnmarshalJSON(data []byte) error {
	type alias Visit
	var a alias
	var rejected map[string]json.RawMessage
	if err := json.Unmarshal(data, &a); err != nil {
		a = alias{}
		if rejected, err = decodeLenient(data, &a); err != nil {
			return err
		}
		if _, ok := rejected["id"]; ok {
			return fmt.Errorf("visit id has type %s", jsonKind(rejected["id"]))
		}
	}
	extra, err := unknownFields(data, visitFields)
	if err != nil {
		return err
	}
	*v = Visit(a)
	v.Extra = withFields(extra, rejected)
	return nil
}

func (v Visit) MarshalJSON() ([]byte, error) {
	if v.raw != nil {
		return v.raw, nil
	}
	type alias Visit
	data, err := json.Marshal(alias(v))
	if err != nil {
		return nil, err
	}
	return mergeFields(data, v.Extra)
}

// Malformed reports whether the stored entry could not be decoded.
func (v Visit) Malformed() bool { return v.raw != nil }

// Merge returns a copy of v with every key of changes replacing the stored
// key of the same name. The id key is never replaced.
func (v Visit) Merge(changes map[string]any) (Visit, error) {
	if v.Malformed() {
		return Visit{}, fmt.Errorf("visit entry is malformed")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return Visit{}, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Visit{}, err
	}
	replaced := make(map[string]json.RawMessage, len(changes))
	for k, val := range changes {
		if k == "id" {
			continue
		}
		enc, err := json.Marshal(val)
		if err != nil {
			return Visit{}, fmt.Errorf("field %s: %w", k, err)
		}
		replaced[k] = enc
		fields[k] = enc
	}
	if err := checkFieldTypes(replaced); err != nil {
		return Visit{}, err
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return Visit{}, err
	}
	var out Visit
	if err := json.Unmarshal(merged, &out); err != nil {
		return Visit{}, err
	}
	return out, nil
}

// checkFieldTypes decodes fields strictly, so a change of the wrong type is
// refused instead of being carried leniently.
func checkFieldTypes(fields map[string]json.RawMessage) error {
	type alias Visit
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	var a alias
	return json.Unmarshal(data, &a)
}
