// Command seed copies orders.json and technicians.json from a directory into
// the store selected by STORE_DRIVER.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"repair_visits/internal/adapter/http/routes"
	"repair_visits/internal/adapter/persistence/repository"
	"repair_visits/internal/infrastructure/config"
	"repair_visits/pkg/logger"
)

func main() {
	from := flag.String("from", "seed", "directory holding orders.json and technicians.json")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline")
	flag.Parse()

	cfg := config.New()
	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, *from, log); err != nil {
		log.Error("seed failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, from string, log *zap.Logger) error {
	source := repository.NewJSONFileStore(from)
	orders, err := source.LoadOrders(ctx)
	if err != nil {
		return err
	}
	techs, err := source.LoadTechnicians(ctx)
	if err != nil {
		return err
	}

	target, closeTarget, err := routes.NewRecordStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeTarget()

	if err := target.SaveOrders(ctx, orders); err != nil {
		return err
	}
	if err := target.SaveTechnicians(ctx, techs); err != nil {
		return err
	}

	log.Info("seeded store",
		zap.String("driver", cfg.StoreDriver),
		zap.Int("orders", len(orders)),
		zap.Int("technicians", len(techs)),
	)
	return nil
}
