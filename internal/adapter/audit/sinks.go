package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/usecase/interfaces"
)

type panicError struct{ value any }

func (p panicError) Error() string { return fmt.Sprintf("audit sink panic: %v", p.value) }

// LogSink writes audit events to the service log.
type LogSink struct {
	log *zap.Logger
}

var _ interfaces.IAuditSink = (*LogSink)(nil)

func NewLogSink(log *zap.Logger) *LogSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Record(_ context.Context, event entities.AuditEvent) error {
	s.log.Info("visit audit",
		zap.String("event_id", event.ID),
		zap.String("visit_id", event.VisitID),
		zap.String("order_id", event.OrderID),
		zap.String("action", string(event.Action)),
		zap.String("actor_id", event.ActorID),
		zap.String("actor_name", event.ActorName),
		zap.String("reason", event.Reason),
		zap.Strings("changed_fields", event.ChangedFields),
		zap.Time("timestamp", event.Timestamp),
	)
	return nil
}

// streamAdder is the part of redis.Cmdable used by RedisStreamSink.
type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamSink appends every event to a Redis stream. The entry holds the
// identifying fields flat plus the whole event as JSON under "payload".
type RedisStreamSink struct {
	client streamAdder
	stream string
	maxLen int64
}

var _ interfaces.IAuditSink = (*RedisStreamSink)(nil)

// NewRedisStreamSink trims the stream to about maxLen entries when maxLen > 0.
func NewRedisStreamSink(client streamAdder, stream string, maxLen int64) *RedisStreamSink {
	return &RedisStreamSink{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisStreamSink) Record(ctx context.Context, event entities.AuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	args := &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]interface{}{
			"event_id": event.ID,
			"visit_id": event.VisitID,
			"order_id": event.OrderID,
			"action":   string(event.Action),
			"payload":  string(payload),
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}
	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}

// HTTPSink posts every event as JSON to a webhook. Any non-2xx answer is a
// failure.
type HTTPSink struct {
	url    string
	client *http.Client
}

var _ interfaces.IAuditSink = (*HTTPSink)(nil)

func NewHTTPSink(url string, client *http.Client) *HTTPSink {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSink{url: url, client: client}
}

func (s *HTTPSink) Record(ctx context.Context, event entities.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode audit event: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Audit-Event-Id", event.ID)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post audit event: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post audit event: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// MultiSink records every event in all sinks and joins their errors.
type MultiSink []interfaces.IAuditSink

var _ interfaces.IAuditSink = MultiSink(nil)

func (m MultiSink) Record(ctx context.Context, event entities.AuditEvent) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SinkOptions configures the sinks BuildSink can create.
type SinkOptions struct {
	Redis       redis.Cmdable
	RedisStream string
	RedisMaxLen int64
	WebhookURL  string
	WebhookHTTP *http.Client
	Log         *zap.Logger
}

// BuildSink creates the sinks named in kinds (log, redis, http). Unknown
// kinds and kinds missing their settings are errors.
func BuildSink(kinds []string, opts SinkOptions) (interfaces.IAuditSink, error) {
	var sinks MultiSink
	for _, kind := range kinds {
		switch strings.ToLower(strings.TrimSpace(kind)) {
		case "log":
			sinks = append(sinks, NewLogSink(opts.Log))
		case "redis":
			if opts.Redis == nil {
				return nil, errors.New("audit sink redis: no redis client")
			}
			sinks = append(sinks, NewRedisStreamSink(opts.Redis, opts.RedisStream, opts.RedisMaxLen))
		case "http":
			if opts.WebhookURL == "" {
				return nil, errors.New("audit sink http: AUDIT_WEBHOOK_URL is empty")
			}
			sinks = append(sinks, NewHTTPSink(opts.WebhookURL, opts.WebhookHTTP))
		default:
			return nil, fmt.Errorf("unknown audit sink %q", kind)
		}
	}
	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return sinks, nil
}
