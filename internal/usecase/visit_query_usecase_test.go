package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/domain/visits"
	mock_interfaces "repair_visits/internal/usecase/interfaces/mocks"
)

var queryNow = time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)

func sampleOrders() []entities.Order {
	return []entities.Order{
		{ID: "order-1", ClientName: "Maria Lopes", Visits: []entities.Visit{
			{ID: "V1", Status: entities.VisitStatusScheduled, ScheduledDate: "2025-01-10", TechnicianID: "t-1"},
			{ID: "V2", Status: entities.VisitStatusCompleted, ScheduledDate: "2025-01-08", TotalCost: 80},
		}},
		{ID: "order-2", ClientName: "Rui Sousa"},
		{ID: "order-3", ClientName: "Ana Reis", Visits: []entities.Visit{
			{ID: "V3", Status: entities.VisitStatusCancelled, Date: "2025-01-12"},
			{ID: "V4", OrderID: "missing"},
		}},
	}
}

func sampleTechnicians() []entities.Technician {
	return []entities.Technician{{ID: "t-1", FirstName: "Tiago", LastName: "Neves"}}
}

func newQueryUseCase(store *mock_interfaces.MockIRecordStore) *VisitQueryUseCase {
	uc := NewVisitQueryUseCase(store, nil, time.Second, language.English)
	uc.now = func() time.Time { return queryNow }
	return uc
}

func TestVisitQueryUseCase_Query(t *testing.T) {
	t.Run("orders load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newQueryUseCase(store)

		cause := errors.New("disk")
		store.EXPECT().LoadOrders(gomock.Any()).Return(nil, cause)

		_, err := uc.Query(context.Background(), visits.Query{})
		if !errors.Is(err, ErrStorageFailure) || !errors.Is(err, cause) {
			t.Fatalf("expected storage failure wrapping cause, got %v", err)
		}
	})

	t.Run("technicians load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newQueryUseCase(store)

		store.EXPECT().LoadOrders(gomock.Any()).Return(sampleOrders(), nil)
		store.EXPECT().LoadTechnicians(gomock.Any()).Return(nil, errors.New("gone"))

		_, err := uc.Query(context.Background(), visits.Query{})
		if !errors.Is(err, ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
	})

	t.Run("loads with a deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newQueryUseCase(store)

		store.EXPECT().LoadOrders(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entities.Order, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Fatalf("expected a deadline on the store context")
			}
			return nil, ctx.Err()
		})
		store.EXPECT().LoadTechnicians(gomock.Any()).Return(nil, nil)

		res, err := uc.Query(context.Background(), visits.Query{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 0 || res.Pagination.Total != 0 {
			t.Fatalf("expected empty result, got %+v", res)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newQueryUseCase(store)

		store.EXPECT().LoadOrders(gomock.Any()).Return(sampleOrders(), nil)
		store.EXPECT().LoadTechnicians(gomock.Any()).Return(sampleTechnicians(), nil)

		q := visits.Query{
			Criteria:  visits.Criteria{Statuses: []string{"scheduled", "completed"}},
			SortKey:   visits.SortByDate,
			Direction: visits.Ascending,
			Page:      1,
			Limit:     10,
			WithStats: true,
		}
		res, err := uc.Query(context.Background(), q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 2 || res.Items[0].ID() != "V2" || res.Items[1].ID() != "V1" {
			t.Fatalf("unexpected items: %+v", res.Items)
		}
		if res.Items[1].TechnicianName != "Tiago Neves" || res.Items[1].ClientName != "Maria Lopes" {
			t.Fatalf("expected enriched record, got %+v", res.Items[1])
		}
		if res.Stats == nil || res.Stats.Total != 3 || res.Stats.Today != 1 {
			t.Fatalf("unexpected stats: %+v", res.Stats)
		}
		if res.Report.Orphaned != 1 {
			t.Fatalf("expected one orphan, got %+v", res.Report)
		}
	})
}

func TestVisitQueryUseCase_Stats(t *testing.T) {
	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newQueryUseCase(store)

		store.EXPECT().LoadOrders(gomock.Any()).Return(nil, errors.New("disk"))

		if _, err := uc.Stats(context.Background()); !errors.Is(err, ErrStorageFailure) {
			t.Fatalf("expected ErrStorageFailure, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newQueryUseCase(store)

		store.EXPECT().LoadOrders(gomock.Any()).Return(sampleOrders(), nil)
		store.EXPECT().LoadTechnicians(gomock.Any()).Return(sampleTechnicians(), nil)

		st, err := uc.Stats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if st.Total != 3 || st.ByStatus["cancelled"] != 1 || st.TotalCost != 80 {
			t.Fatalf("unexpected stats: %+v", st)
		}
	})
}

func TestVisitQueryUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewVisitQueryUseCase(nil, nil, 0, language.English)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidVisitID) {
			t.Fatalf("expected ErrInvalidVisitID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newQueryUseCase(store)

		store.EXPECT().LoadOrders(gomock.Any()).Return(sampleOrders(), nil)
		store.EXPECT().LoadTechnicians(gomock.Any()).Return(nil, nil)

		if _, err := uc.GetByID(context.Background(), "V4"); !errors.Is(err, ErrVisitNotFound) {
			t.Fatalf("expected orphan to be invisible, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		uc := newQueryUseCase(store)

		store.EXPECT().LoadOrders(gomock.Any()).Return(sampleOrders(), nil)
		store.EXPECT().LoadTechnicians(gomock.Any()).Return(nil, nil)

		r, err := uc.GetByID(context.Background(), " V3 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.OrderID != "order-3" || r.Date != "2025-01-12" {
			t.Fatalf("unexpected record: %+v", r)
		}
	})
}
