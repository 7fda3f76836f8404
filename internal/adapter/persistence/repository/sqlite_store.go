package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/usecase/interfaces"
)

const sqliteDriver = "sqlite"

// SQLiteStore keeps each collection as one JSON blob row:
//
//	collections(name TEXT PRIMARY KEY, payload BLOB, updated_at TEXT)
//
// A collection without a row is empty.
type SQLiteStore struct {
	db *sql.DB
}

var (
	_ interfaces.IRecordStore      = (*SQLiteStore)(nil)
	_ interfaces.ITechnicianWriter = (*SQLiteStore)(nil)
)

// NewSQLiteStore creates the collections table when missing.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LoadOrders(ctx context.Context) ([]entities.Order, error) {
	defer observe(sqliteDriver, "load_orders", time.Now())
	data, err := s.read(ctx, ordersCollection)
	if err != nil {
		return nil, err
	}
	return decodeOrders(data)
}

func (s *SQLiteStore) LoadTechnicians(ctx context.Context) ([]entities.Technician, error) {
	defer observe(sqliteDriver, "load_technicians", time.Now())
	data, err := s.read(ctx, techniciansCollection)
	if err != nil {
		return nil, err
	}
	return decodeTechnicians(data)
}

func (s *SQLiteStore) SaveOrders(ctx context.Context, orders []entities.Order) error {
	defer observe(sqliteDriver, "save_orders", time.Now())
	data, err := encodeCollection(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	return s.write(ctx, ordersCollection, data)
}

func (s *SQLiteStore) SaveTechnicians(ctx context.Context, technicians []entities.Technician) error {
	defer observe(sqliteDriver, "save_technicians", time.Now())
	data, err := encodeCollection(technicians)
	if err != nil {
		return fmt.Errorf("encode technicians: %w", err)
	}
	return s.write(ctx, techniciansCollection, data)
}

func (s *SQLiteStore) read(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", name, err)
	}
	return payload, nil
}

func (s *SQLiteStore) write(ctx context.Context, name string, payload []byte) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO collections(name, payload, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name, payload, now,
	); err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", name, err)
	}
	return nil
}
