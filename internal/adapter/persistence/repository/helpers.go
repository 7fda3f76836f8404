package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/infrastructure/metrics"
)

const (
	ordersCollection      = "orders"
	techniciansCollection = "technicians"
)

// observe records how long a store operation took.
func observe(driver, operation string, start time.Time) {
	metrics.RecordStoreOperation(driver, operation, time.Since(start))
}

func decodeOrders(data []byte) ([]entities.Order, error) {
	if len(data) == 0 {
		return []entities.Order{}, nil
	}
	var orders []entities.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	if orders == nil {
		orders = []entities.Order{}
	}
	return orders, nil
}

func decodeTechnicians(data []byte) ([]entities.Technician, error) {
	if len(data) == 0 {
		return []entities.Technician{}, nil
	}
	var techs []entities.Technician
	if err := json.Unmarshal(data, &techs); err != nil {
		return nil, fmt.Errorf("decode technicians: %w", err)
	}
	if techs == nil {
		techs = []entities.Technician{}
	}
	return techs, nil
}

// encodeCollection writes a nil collection as an empty array.
func encodeCollection[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.MarshalIndent(items, "", "  ")
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
