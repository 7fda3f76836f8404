package entities

import "time"

type AuditAction string

const (
	AuditActionUpdated AuditAction = "updated"
	AuditActionDeleted AuditAction = "deleted"
)

// SystemActor is recorded when a change arrives without an actor.
const SystemActor = "system"

// AuditEvent describes one committed visit mutation. Before and After are
// full snapshots of the stored visit.
type AuditEvent struct {
	ID            string      `json:"id"`
	VisitID       string      `json:"visitId"`
	OrderID       string      `json:"orderId"`
	ActorID       string      `json:"actorId"`
	ActorName     string      `json:"actorName"`
	Action        AuditAction `json:"action"`
	Reason        string      `json:"reason"`
	ChangedFields []string    `json:"changedFields"`
	Before        Visit       `json:"before"`
	After         Visit       `json:"after"`
	Timestamp     time.Time   `json:"timestamp"`
}
