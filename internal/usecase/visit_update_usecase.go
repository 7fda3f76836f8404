package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/infrastructure/metrics"
	"repair_visits/internal/usecase/interfaces"
)

// UpdateVisitCommand is a partial update of one visit. Every key of Changes
// replaces the stored key of the same name; the id key is ignored.
type UpdateVisitCommand struct {
	VisitID   string
	Changes   map[string]any
	ActorID   string
	ActorName string
	Reason    string
}

// IVisitUpdateUseCase applies partial updates to stored visits.
//
// Failures:
//   - ErrInvalidVisitID, ErrInvalidUpdate: nothing is loaded or written
//   - ErrVisitNotFound: no order holds the visit, nothing is written
//   - ErrStorageFailure: load or save failed (or timed out), no audit event is emitted;
//     a lost optimistic version check also matches interfaces.ErrVersionConflict
type IVisitUpdateUseCase interface {
	UpdateVisit(ctx context.Context, cmd UpdateVisitCommand) (entities.Visit, error)
}

// VisitUpdateUseCase serializes every write through one mutex, so two
// updates in this process never read the same snapshot. Stores implementing
// interfaces.IOrderPatcher additionally reject writes from other processes
// that raced on the same order.
type VisitUpdateUseCase struct {
	mu      sync.Mutex
	store   interfaces.IRecordStore
	audit   interfaces.IAuditDispatcher
	log     *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

var _ IVisitUpdateUseCase = (*VisitUpdateUseCase)(nil)

func NewVisitUpdateUseCase(store interfaces.IRecordStore, audit interfaces.IAuditDispatcher, log *zap.Logger, timeout time.Duration) *VisitUpdateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &VisitUpdateUseCase{store: store, audit: audit, log: log, timeout: timeout, now: time.Now}
}

func (u *VisitUpdateUseCase) UpdateVisit(ctx context.Context, cmd UpdateVisitCommand) (entities.Visit, error) {
	id := strings.TrimSpace(cmd.VisitID)
	if id == "" {
		return entities.Visit{}, ErrInvalidVisitID
	}
	if len(cmd.Changes) == 0 {
		return entities.Visit{}, ErrInvalidUpdate
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	orders, err := u.store.LoadOrders(ctx)
	if err != nil {
		u.log.Error("could not load orders for update", zap.String("visit_id", id), zap.Error(err))
		metrics.RecordVisitUpdate("storage_failure")
		return entities.Visit{}, fmt.Errorf("%w: load orders: %w", ErrStorageFailure, err)
	}

	oi, vi := locateVisit(orders, id)
	if oi < 0 {
		metrics.RecordVisitUpdate("not_found")
		return entities.Visit{}, ErrVisitNotFound
	}

	before := orders[oi].Visits[vi]
	after, err := before.Merge(cmd.Changes)
	if err != nil {
		metrics.RecordVisitUpdate("invalid")
		return entities.Visit{}, fmt.Errorf("%w: %w", ErrInvalidUpdate, err)
	}
	now := u.now().UTC()
	after.UpdatedAt = now.Format(time.RFC3339)

	order := orders[oi].Clone()
	order.Visits[vi] = after
	expected := order.Version
	order.Version++

	if err := u.persist(ctx, orders, oi, order, expected); err != nil {
		u.log.Error("could not save visit update",
			zap.String("visit_id", id),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		metrics.RecordVisitUpdate("storage_failure")
		return entities.Visit{}, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	metrics.RecordVisitUpdate("ok")

	event := buildAuditEvent(cmd, order.ID, before, after, now)
	if u.audit != nil && !u.audit.Dispatch(event) {
		u.log.Warn("audit event dropped", zap.String("visit_id", id), zap.String("event_id", event.ID))
	}
	return after, nil
}

// persist writes the changed order. orders itself is never modified. An
// order without an id of its own is stored under a position key, so it is
// written back with the whole collection instead of patched.
func (u *VisitUpdateUseCase) persist(ctx context.Context, orders []entities.Order, index int, order entities.Order, expected int64) error {
	if patcher, ok := u.store.(interfaces.IOrderPatcher); ok && entities.HasUniqueID(orders, index) {
		return patcher.PatchOrder(ctx, order, expected)
	}
	next := slices.Clone(orders)
	next[index] = order
	return u.store.SaveOrders(ctx, next)
}

// locateVisit returns the first order and visit index holding id, or -1, -1.
func locateVisit(orders []entities.Order, id string) (int, int) {
	for oi, o := range orders {
		if vi := o.FindVisit(id); vi >= 0 {
			return oi, vi
		}
	}
	return -1, -1
}

func buildAuditEvent(cmd UpdateVisitCommand, orderID string, before, after entities.Visit, at time.Time) entities.AuditEvent {
	fields := changedFields(cmd.Changes)

	action := entities.AuditActionUpdated
	if after.Status == entities.VisitStatusCancelled && before.Status != entities.VisitStatusCancelled {
		action = entities.AuditActionDeleted
	}

	actorID := strings.TrimSpace(cmd.ActorID)
	if actorID == "" {
		actorID = entities.SystemActor
	}
	actorName := strings.TrimSpace(cmd.ActorName)
	if actorName == "" {
		actorName = entities.SystemActor
	}

	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		reason = defaultReason(action, after.ID, fields)
	}

	return entities.AuditEvent{
		ID:            uuid.NewString(),
		VisitID:       after.ID,
		OrderID:       orderID,
		ActorID:       actorID,
		ActorName:     actorName,
		Action:        action,
		Reason:        reason,
		ChangedFields: fields,
		Before:        before,
		After:         after,
		Timestamp:     at,
	}
}

func changedFields(changes map[string]any) []string {
	fields := make([]string, 0, len(changes))
	for k := range changes {
		if k != "id" {
			fields = append(fields, k)
		}
	}
	slices.Sort(fields)
	return fields
}

func defaultReason(action entities.AuditAction, visitID string, fields []string) string {
	if action == entities.AuditActionDeleted {
		return fmt.Sprintf("Visit %s cancelled", visitID)
	}
	if len(fields) == 0 {
		return fmt.Sprintf("Visit %s updated", visitID)
	}
	return fmt.Sprintf("Visit %s updated: %s", visitID, strings.Join(fields, ", "))
}

// IsRetryable reports whether err is a failure worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}
