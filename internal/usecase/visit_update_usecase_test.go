package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/usecase/interfaces"
	mock_interfaces "repair_visits/internal/usecase/interfaces/mocks"
)

var updateNow = time.Date(2025, time.March, 3, 14, 30, 0, 0, time.FixedZone("WET", 3600))

func updateOrders() []entities.Order {
	return []entities.Order{
		{ID: "order-1", Version: 3, Visits: []entities.Visit{
			{ID: "V1", Status: entities.VisitStatusScheduled, Notes: "bring belt"},
			{ID: "V2", Status: entities.VisitStatusScheduled},
		}},
		{ID: "order-2", Visits: []entities.Visit{{ID: "V3", Status: entities.VisitStatusInProgress}}},
	}
}

func newUpdateUseCase(store interfaces.IRecordStore, audit interfaces.IAuditDispatcher) *VisitUpdateUseCase {
	uc := NewVisitUpdateUseCase(store, audit, nil, time.Second)
	uc.now = func() time.Time { return updateNow }
	return uc
}

func TestVisitUpdateUseCase_Validation(t *testing.T) {
	uc := newUpdateUseCase(nil, nil)

	t.Run("invalid id", func(t *testing.T) {
		_, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: " ", Changes: map[string]any{"notes": "x"}})
		if !errors.Is(err, ErrInvalidVisitID) {
			t.Fatalf("expected ErrInvalidVisitID, got %v", err)
		}
	})

	t.Run("no changes", func(t *testing.T) {
		_, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V1"})
		if !errors.Is(err, ErrInvalidUpdate) {
			t.Fatalf("expected ErrInvalidUpdate, got %v", err)
		}
	})
}

func TestVisitUpdateUseCase_UpdateVisit(t *testing.T) {
	t.Run("unknown visit is not found and nothing is saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		audit := mock_interfaces.NewMockIAuditDispatcher(ctrl)
		uc := newUpdateUseCase(store, audit)

		store.EXPECT().LoadOrders(gomock.Any()).Return([]entities.Order{{ID: "order-9", Visits: []entities.Visit{{ID: "V7"}}}}, nil)
		store.EXPECT().SaveOrders(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V1", Changes: map[string]any{"status": "completed"}})
		if !errors.Is(err, ErrVisitNotFound) {
			t.Fatalf("expected ErrVisitNotFound, got %v", err)
		}
	})

	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newUpdateUseCase(store, nil)

		store.EXPECT().LoadOrders(gomock.Any()).Return(nil, errors.New("disk"))

		_, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V1", Changes: map[string]any{"notes": "x"}})
		if !errors.Is(err, ErrStorageFailure) || !IsRetryable(err) {
			t.Fatalf("expected retryable ErrStorageFailure, got %v", err)
		}
	})

	t.Run("type mismatch is rejected before saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newUpdateUseCase(store, nil)

		store.EXPECT().LoadOrders(gomock.Any()).Return(updateOrders(), nil)

		_, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V1", Changes: map[string]any{"status": 5}})
		if !errors.Is(err, ErrInvalidUpdate) {
			t.Fatalf("expected ErrInvalidUpdate, got %v", err)
		}
	})

	t.Run("save error leaves snapshot intact and emits no audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		audit := mock_interfaces.NewMockIAuditDispatcher(ctrl)
		uc := newUpdateUseCase(store, audit)

		loaded := updateOrders()
		store.EXPECT().LoadOrders(gomock.Any()).Return(loaded, nil)
		store.EXPECT().SaveOrders(gomock.Any(), gomock.Any()).Return(errors.New("read-only filesystem"))
		audit.EXPECT().Dispatch(gomock.Any()).Times(0)

		_, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V1", Changes: map[string]any{"status": "completed"}})
		if !errors.Is(err, ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
		if loaded[0].Visits[0].Status != entities.VisitStatusScheduled || loaded[0].Visits[0].UpdatedAt != "" || loaded[0].Version != 3 {
			t.Fatalf("loaded snapshot was modified: %+v", loaded[0])
		}
	})

	t.Run("success saves the whole collection and dispatches audit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		audit := mock_interfaces.NewMockIAuditDispatcher(ctrl)
		uc := newUpdateUseCase(store, audit)

		loaded := updateOrders()
		store.EXPECT().LoadOrders(gomock.Any()).Return(loaded, nil)
		store.EXPECT().SaveOrders(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, orders []entities.Order) error {
			if len(orders) != 2 {
				t.Fatalf("expected the whole collection, got %d orders", len(orders))
			}
			v := orders[0].Visits[0]
			if v.Status != entities.VisitStatusCompleted || v.Notes != "bring belt" || v.ID != "V1" {
				t.Fatalf("unexpected saved visit: %+v", v)
			}
			if orders[0].Version != 4 || orders[1].Visits[0].ID != "V3" {
				t.Fatalf("unexpected saved orders: %+v", orders)
			}
			return nil
		})
		audit.EXPECT().Dispatch(gomock.Any()).DoAndReturn(func(ev entities.AuditEvent) bool {
			if ev.ID == "" || ev.VisitID != "V1" || ev.OrderID != "order-1" {
				t.Fatalf("unexpected event identity: %+v", ev)
			}
			if ev.Action != entities.AuditActionUpdated || ev.ActorID != "u-1" || ev.ActorName != entities.SystemActor {
				t.Fatalf("unexpected actor or action: %+v", ev)
			}
			if ev.Reason != "Visit V1 updated: status" || !slices.Equal(ev.ChangedFields, []string{"status"}) {
				t.Fatalf("unexpected reason: %q %v", ev.Reason, ev.ChangedFields)
			}
			if ev.Before.Status != entities.VisitStatusScheduled || ev.After.Status != entities.VisitStatusCompleted {
				t.Fatalf("unexpected snapshots: %+v", ev)
			}
			return true
		})

		got, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{
			VisitID: "V1",
			Changes: map[string]any{"status": "completed", "id": "hijack"},
			ActorID: "u-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "V1" || got.UpdatedAt != "2025-03-03T13:30:00Z" {
			t.Fatalf("unexpected result: %+v", got)
		}
		if loaded[0].Visits[0].Status != entities.VisitStatusScheduled {
			t.Fatalf("loaded snapshot was modified")
		}
	})

	t.Run("cancelling is audited as a deletion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		audit := mock_interfaces.NewMockIAuditDispatcher(ctrl)
		uc := newUpdateUseCase(store, audit)

		store.EXPECT().LoadOrders(gomock.Any()).Return(updateOrders(), nil)
		store.EXPECT().SaveOrders(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().Dispatch(gomock.Any()).DoAndReturn(func(ev entities.AuditEvent) bool {
			if ev.Action != entities.AuditActionDeleted || ev.ActorID != entities.SystemActor || ev.Reason != "Visit V3 cancelled" {
				t.Fatalf("unexpected event: %+v", ev)
			}
			return true
		})

		if _, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V3", Changes: map[string]any{"status": "cancelled"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit reason is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		audit := mock_interfaces.NewMockIAuditDispatcher(ctrl)
		uc := newUpdateUseCase(store, audit)

		store.EXPECT().LoadOrders(gomock.Any()).Return(updateOrders(), nil)
		store.EXPECT().SaveOrders(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().Dispatch(gomock.Any()).DoAndReturn(func(ev entities.AuditEvent) bool {
			if ev.Reason != "client asked" || ev.ActorName != "Dora" {
				t.Fatalf("unexpected event: %+v", ev)
			}
			return true
		})

		cmd := UpdateVisitCommand{VisitID: "V2", Changes: map[string]any{"notes": "call first"}, ActorName: "Dora", Reason: "client asked"}
		if _, err := uc.UpdateVisit(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("dropped audit does not fail the update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		audit := mock_interfaces.NewMockIAuditDispatcher(ctrl)
		uc := newUpdateUseCase(store, audit)

		store.EXPECT().LoadOrders(gomock.Any()).Return(updateOrders(), nil)
		store.EXPECT().SaveOrders(gomock.Any(), gomock.Any()).Return(nil)
		audit.EXPECT().Dispatch(gomock.Any()).Return(false)

		if _, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V2", Changes: map[string]any{"notes": "x"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVisitUpdateUseCase_PatchableStore(t *testing.T) {
	t.Run("patches only the owning order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIPatchableRecordStore(ctrl)
		uc := newUpdateUseCase(store, nil)

		store.EXPECT().LoadOrders(gomock.Any()).Return(updateOrders(), nil)
		store.EXPECT().SaveOrders(gomock.Any(), gomock.Any()).Times(0)
		store.EXPECT().PatchOrder(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(func(_ context.Context, o entities.Order, _ int64) error {
			if o.ID != "order-1" || o.Version != 4 || o.Visits[1].Notes != "ring twice" {
				t.Fatalf("unexpected patched order: %+v", o)
			}
			return nil
		})

		if _, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V2", Changes: map[string]any{"notes": "ring twice"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order without a unique id is saved with the collection", func(t *testing.T) {
		for name, orderID := range map[string]string{"duplicate id": "order-2", "empty id": ""} {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				store := mock_interfaces.NewMockIPatchableRecordStore(ctrl)
				uc := newUpdateUseCase(store, nil)

				loaded := updateOrders()
				loaded[0].ID = orderID
				store.EXPECT().LoadOrders(gomock.Any()).Return(loaded, nil)
				store.EXPECT().PatchOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().SaveOrders(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, orders []entities.Order) error {
					if len(orders) != 2 || orders[0].Visits[0].Notes != "moved" || orders[0].Version != 4 {
						t.Fatalf("unexpected saved orders: %+v", orders)
					}
					return nil
				})

				if _, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V1", Changes: map[string]any{"notes": "moved"}}); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			})
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIPatchableRecordStore(ctrl)
		audit := mock_interfaces.NewMockIAuditDispatcher(ctrl)
		uc := newUpdateUseCase(store, audit)

		store.EXPECT().LoadOrders(gomock.Any()).Return(updateOrders(), nil)
		store.EXPECT().PatchOrder(gomock.Any(), gomock.Any(), int64(3)).Return(interfaces.ErrVersionConflict)
		audit.EXPECT().Dispatch(gomock.Any()).Times(0)

		_, err := uc.UpdateVisit(context.Background(), UpdateVisitCommand{VisitID: "V1", Changes: map[string]any{"notes": "x"}})
		if !errors.Is(err, interfaces.ErrVersionConflict) || !errors.Is(err, ErrStorageFailure) {
			t.Fatalf("expected version conflict storage failure, got %v", err)
		}
	})
}

// memoryStore is a record store that keeps one snapshot in memory and
// deep-copies on every load and save.
type memoryStore struct {
	mu     sync.Mutex
	orders []entities.Order
}

func (s *memoryStore) LoadOrders(context.Context) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out, nil
}

func (s *memoryStore) LoadTechnicians(context.Context) ([]entities.Technician, error) {
	return nil, nil
}

func (s *memoryStore) SaveOrders(_ context.Context, orders []entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]entities.Order, len(orders))
	for i, o := range orders {
		s.orders[i] = o.Clone()
	}
	return nil
}

func TestVisitUpdateUseCase_ConcurrentUpdatesAreNotLost(t *testing.T) {
	var visitsList []entities.Visit
	for i := 0; i < 20; i++ {
		visitsList = append(visitsList, entities.Visit{ID: fmt.Sprintf("V%d", i)})
	}
	store := &memoryStore{orders: []entities.Order{{ID: "order-1", Visits: visitsList}}}
	uc := newUpdateUseCase(store, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cmd := UpdateVisitCommand{VisitID: fmt.Sprintf("V%d", i), Changes: map[string]any{"notes": fmt.Sprintf("note %d", i)}}
			if _, err := uc.UpdateVisit(context.Background(), cmd); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	orders, _ := store.LoadOrders(context.Background())
	for i, v := range orders[0].Visits {
		if v.Notes != fmt.Sprintf("note %d", i) {
			t.Fatalf("update of %s was lost", v.ID)
		}
	}
	if orders[0].Version != 20 {
		t.Fatalf("expected version 20, got %d", orders[0].Version)
	}
}
