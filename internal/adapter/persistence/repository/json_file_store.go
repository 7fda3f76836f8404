package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"repair_visits/internal/domain/entities"
	"repair_visits/internal/usecase/interfaces"
)

const jsonDriver = "json"

// JSONFileStore keeps each collection in one JSON array file under a data
// directory, the layout the web UI also reads:
//   - <dir>/orders.json
//   - <dir>/technicians.json
//
// A missing file is an empty collection. Writes go to a temp file in the same
// directory which is then renamed over the target, so readers never see a
// partial file.
type JSONFileStore struct {
	mu  sync.RWMutex
	dir string
}

var (
	_ interfaces.IRecordStore      = (*JSONFileStore)(nil)
	_ interfaces.ITechnicianWriter = (*JSONFileStore)(nil)
)

func NewJSONFileStore(dir string) *JSONFileStore {
	return &JSONFileStore{dir: dir}
}

func (s *JSONFileStore) LoadOrders(ctx context.Context) ([]entities.Order, error) {
	defer observe(jsonDriver, "load_orders", time.Now())
	data, err := s.read(ctx, ordersCollection)
	if err != nil {
		return nil, err
	}
	return decodeOrders(data)
}

func (s *JSONFileStore) LoadTechnicians(ctx context.Context) ([]entities.Technician, error) {
	defer observe(jsonDriver, "load_technicians", time.Now())
	data, err := s.read(ctx, techniciansCollection)
	if err != nil {
		return nil, err
	}
	return decodeTechnicians(data)
}

func (s *JSONFileStore) SaveOrders(ctx context.Context, orders []entities.Order) error {
	defer observe(jsonDriver, "save_orders", time.Now())
	data, err := encodeCollection(orders)
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	return s.write(ctx, ordersCollection, data)
}

func (s *JSONFileStore) SaveTechnicians(ctx context.Context, technicians []entities.Technician) error {
	defer observe(jsonDriver, "save_technicians", time.Now())
	data, err := encodeCollection(technicians)
	if err != nil {
		return fmt.Errorf("encode technicians: %w", err)
	}
	return s.write(ctx, techniciansCollection, data)
}

func (s *JSONFileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *JSONFileStore) read(ctx context.Context, collection string) ([]byte, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	return data, nil
}

func (s *JSONFileStore) write(ctx context.Context, collection string, data []byte) (retErr error) {
	if err := checkContext(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		return fmt.Errorf("replace %s: %w", collection, err)
	}
	return nil
}
