package routes

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"repair_visits/internal/adapter/audit"
	"repair_visits/internal/adapter/persistence/repository"
	"repair_visits/internal/infrastructure/cache"
	"repair_visits/internal/infrastructure/config"
	"repair_visits/internal/infrastructure/database"
	"repair_visits/internal/usecase/interfaces"
)

const auditStreamMaxLen = 100_000

// RecordStore is what the wiring hands to the use cases; every driver can
// also replace the technician collection.
type RecordStore interface {
	interfaces.IRecordStore
	interfaces.ITechnicianWriter
}

// NewRecordStore opens the store selected by cfg.StoreDriver. The returned
// func releases its connections.
func NewRecordStore(ctx context.Context, cfg config.Config) (RecordStore, func(), error) {
	switch cfg.StoreDriver {
	case "json":
		return repository.NewJSONFileStore(cfg.DataDir), func() {}, nil
	case "sqlite":
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := repository.NewSQLiteStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettings{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return repository.NewDynamoStore(ddb, cfg.OrdersTable, cfg.TechniciansTable), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// newAuditSink builds the sinks named in cfg.AuditSinks. Redis is only
// dialed when a redis sink is configured.
func newAuditSink(ctx context.Context, cfg config.Config, log *zap.Logger) (interfaces.IAuditSink, func(), error) {
	opts := audit.SinkOptions{
		RedisStream: cfg.AuditRedisStream,
		RedisMaxLen: auditStreamMaxLen,
		WebhookURL:  cfg.AuditWebhookURL,
		WebhookHTTP: &http.Client{Timeout: cfg.AuditTimeout},
		Log:         log.Named("audit"),
	}

	cleanup := func() {}
	if slices.Contains(cfg.AuditSinks, "redis") {
		client, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StoreTimeout)
		if err != nil {
			return nil, nil, err
		}
		opts.Redis = client
		cleanup = func() { closeRedis(client, log) }
	}

	sink, err := audit.BuildSink(cfg.AuditSinks, opts)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return sink, cleanup, nil
}

func closeRedis(client *redis.Client, log *zap.Logger) {
	if err := client.Close(); err != nil {
		log.Warn("closing redis", zap.Error(err))
	}
}
