package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"repair_visits/internal/adapter/http/handlers"
	"repair_visits/internal/adapter/http/handlers/mocks"
	"repair_visits/internal/domain/visits"
	"repair_visits/internal/infrastructure/config"
)

func TestAddVisitRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	query := mocks.NewMockIVisitQueryUseCase(ctrl)
	update := mocks.NewMockIVisitUpdateUseCase(ctrl)

	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addVisitRoutes(v1, handlers.NewVisitHandler(query, update))

	query.EXPECT().Stats(gomock.Any()).Return(visits.Stats{}, nil)
	query.EXPECT().GetByID(gomock.Any(), "V9").Return(visits.Record{}, nil)

	for _, path := range []string{"/v1/ping", "/v1/visits/stats", "/v1/visits/V9"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestNewRecordStore(t *testing.T) {
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		store, cleanup, err := NewRecordStore(ctx, config.Config{StoreDriver: "json", DataDir: t.TempDir()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()
		if orders, err := store.LoadOrders(ctx); err != nil || len(orders) != 0 {
			t.Fatalf("expected empty store, got %v %v", orders, err)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.Config{StoreDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "visits.db")}
		store, cleanup, err := NewRecordStore(ctx, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cleanup()
		if techs, err := store.LoadTechnicians(ctx); err != nil || len(techs) != 0 {
			t.Fatalf("expected empty store, got %v %v", techs, err)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, _, err := NewRecordStore(ctx, config.Config{StoreDriver: "mongo"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestNewAuditSink(t *testing.T) {
	ctx := context.Background()

	sink, cleanup, err := newAuditSink(ctx, config.Config{AuditSinks: []string{"log"}}, zap.NewNop())
	if err != nil || sink == nil {
		t.Fatalf("expected log sink, got %v %v", sink, err)
	}
	cleanup()

	if _, _, err := newAuditSink(ctx, config.Config{AuditSinks: []string{"http"}}, zap.NewNop()); err == nil {
		t.Fatalf("expected error for http sink without url")
	}
}
