package interfaces

import (
	"context"

	"repair_visits/internal/domain/entities"
)

//go:generate mockgen -source=audit_interface.go -destination=mocks/audit_interface_mock.go -package=mock_interfaces

// IAuditSink persists or forwards one audit event.
type IAuditSink interface {
	Record(ctx context.Context, event entities.AuditEvent) error
}

// IAuditDispatcher hands audit events to sinks in the background.
// Dispatch never blocks; it reports false when the event was dropped.
type IAuditDispatcher interface {
	Dispatch(event entities.AuditEvent) bool
}
