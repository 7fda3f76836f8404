package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/domain/visits"
	"repair_visits/internal/infrastructure/metrics"
	"repair_visits/internal/usecase/interfaces"
)

// IVisitQueryUseCase exposes the read side of the visit engine.
//
// Every call loads a fresh snapshot; a load failure fails the whole call with
// ErrStorageFailure.
type IVisitQueryUseCase interface {
	Query(ctx context.Context, q visits.Query) (visits.Result, error)
	Stats(ctx context.Context) (visits.Stats, error)
	GetByID(ctx context.Context, id string) (visits.Record, error)
}

type VisitQueryUseCase struct {
	store   interfaces.IRecordStore
	log     *zap.Logger
	timeout time.Duration
	locale  language.Tag
	now     func() time.Time
}

var _ IVisitQueryUseCase = (*VisitQueryUseCase)(nil)

func NewVisitQueryUseCase(store interfaces.IRecordStore, log *zap.Logger, timeout time.Duration, locale language.Tag) *VisitQueryUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &VisitQueryUseCase{store: store, log: log, timeout: timeout, locale: locale, now: time.Now}
}

func (u *VisitQueryUseCase) Query(ctx context.Context, q visits.Query) (visits.Result, error) {
	start := time.Now()
	orders, techs, err := u.load(ctx)
	if err != nil {
		metrics.RecordVisitQuery("list", "error", time.Since(start))
		return visits.Result{}, err
	}

	res := visits.Run(orders, techs, q, u.now(), u.locale)
	u.logReport(res.Report)
	metrics.RecordVisitQuery("list", "ok", time.Since(start))
	return res, nil
}

func (u *VisitQueryUseCase) Stats(ctx context.Context) (visits.Stats, error) {
	start := time.Now()
	orders, techs, err := u.load(ctx)
	if err != nil {
		metrics.RecordVisitQuery("stats", "error", time.Since(start))
		return visits.Stats{}, err
	}

	records, report := visits.Extract(orders, techs)
	u.logReport(report)
	metrics.RecordVisitQuery("stats", "ok", time.Since(start))
	return visits.ComputeStats(records, u.now()), nil
}

func (u *VisitQueryUseCase) GetByID(ctx context.Context, id string) (visits.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return visits.Record{}, ErrInvalidVisitID
	}

	start := time.Now()
	orders, techs, err := u.load(ctx)
	if err != nil {
		metrics.RecordVisitQuery("get", "error", time.Since(start))
		return visits.Record{}, err
	}

	records, _ := visits.Extract(orders, techs)
	found := visits.Filter(records, visits.Criteria{VisitID: id}, u.now())
	if len(found) == 0 {
		metrics.RecordVisitQuery("get", "not_found", time.Since(start))
		return visits.Record{}, ErrVisitNotFound
	}
	metrics.RecordVisitQuery("get", "ok", time.Since(start))
	return found[0], nil
}

func (u *VisitQueryUseCase) load(ctx context.Context) ([]entities.Order, []entities.Technician, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	orders, err := u.store.LoadOrders(ctx)
	if err != nil {
		u.log.Error("could not load orders", zap.Error(err))
		return nil, nil, fmt.Errorf("%w: load orders: %w", ErrStorageFailure, err)
	}
	techs, err := u.store.LoadTechnicians(ctx)
	if err != nil {
		u.log.Error("could not load technicians", zap.Error(err))
		return nil, nil, fmt.Errorf("%w: load technicians: %w", ErrStorageFailure, err)
	}
	return orders, techs, nil
}

func (u *VisitQueryUseCase) logReport(r visits.ExtractReport) {
	if r.Skipped() == 0 {
		return
	}
	metrics.RecordSkippedVisits(r.Orphaned, r.Duplicates, r.Malformed)
	u.log.Warn("visits skipped during extraction",
		zap.Int("orders", r.Orders),
		zap.Int("visits", r.Visits),
		zap.Int("orphaned", r.Orphaned),
		zap.Int("duplicates", r.Duplicates),
		zap.Int("malformed", r.Malformed),
	)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
