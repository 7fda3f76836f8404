// Package audit delivers visit audit events to sinks in the background.
package audit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/infrastructure/metrics"
	"repair_visits/internal/usecase/interfaces"
)

// Stats exposes current dispatcher counters.
type Stats struct {
	Length    int
	Capacity  int
	Workers   int
	Delivered uint64
	Failed    uint64
	Dropped   uint64
}

// Dispatcher is a bounded event queue drained by a fixed worker pool. Each
// event gets its own timeout; sink failures are logged and counted only.
type Dispatcher struct {
	events  chan entities.AuditEvent
	sink    interfaces.IAuditSink
	workers int
	timeout time.Duration
	log     *zap.Logger

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup

	delivered atomic.Uint64
	failed    atomic.Uint64
	dropped   atomic.Uint64
}

var _ interfaces.IAuditDispatcher = (*Dispatcher)(nil)

func NewDispatcher(sink interfaces.IAuditSink, capacity, workers int, timeout time.Duration, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		events:  make(chan entities.AuditEvent, max(capacity, 1)),
		sink:    sink,
		workers: max(workers, 1),
		timeout: timeout,
		log:     log,
	}
}

// Start launches the worker pool. Events are delivered with contexts derived
// from ctx.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.stopped {
		return
	}
	d.started = true
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
}

// Dispatch queues event without blocking. It returns false when the event
// was dropped because the queue is full or the dispatcher is not running.
func (d *Dispatcher) Dispatch(event entities.AuditEvent) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.started || d.stopped {
		d.drop(event, "dispatcher not running")
		return false
	}
	select {
	case d.events <- event:
		metrics.RecordAuditEvent("queued")
		return true
	default:
		d.drop(event, "queue full")
		return false
	}
}

func (d *Dispatcher) drop(event entities.AuditEvent, reason string) {
	d.dropped.Add(1)
	metrics.RecordAuditEvent("dropped")
	d.log.Warn("audit event dropped",
		zap.String("reason", reason),
		zap.String("event_id", event.ID),
		zap.String("visit_id", event.VisitID),
	)
}

// Stop stops accepting events and waits until queued events are delivered
// or ctx is done.
func (d *Dispatcher) Stop(ctx context.Context) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.events)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		d.log.Warn("audit dispatcher stopped before draining", zap.Int("pending", len(d.events)))
	}
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Length:    len(d.events),
		Capacity:  cap(d.events),
		Workers:   d.workers,
		Delivered: d.delivered.Load(),
		Failed:    d.failed.Load(),
		Dropped:   d.dropped.Load(),
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for event := range d.events {
		d.deliver(ctx, event)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event entities.AuditEvent) {
	start := time.Now()
	err := d.record(ctx, event)
	if err != nil {
		d.failed.Add(1)
		metrics.RecordAuditEvent("failed")
		d.log.Error("audit event not recorded",
			zap.String("event_id", event.ID),
			zap.String("visit_id", event.VisitID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	d.delivered.Add(1)
	metrics.RecordAuditEvent("delivered")
	d.log.Debug("audit event recorded",
		zap.String("event_id", event.ID),
		zap.String("visit_id", event.VisitID),
		zap.Duration("duration", time.Since(start)),
	)
}

func (d *Dispatcher) record(ctx context.Context, event entities.AuditEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{value: r}
		}
	}()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	return d.sink.Record(ctx, event)
}
