package interfaces

import (
	"context"
	"errors"

	"repair_visits/internal/domain/entities"
)

//go:generate mockgen -source=record_store_interface.go -destination=mocks/record_store_interface_mock.go -package=mock_interfaces

// ErrVersionConflict is returned by PatchOrder when the stored order changed
// since it was loaded.
var ErrVersionConflict = errors.New("order version conflict")

// IRecordStore reads and writes the order and technician collections.
//
// Loads return the whole collection as a snapshot. SaveOrders replaces the
// whole orders collection and is all-or-nothing.
type IRecordStore interface {
	LoadOrders(ctx context.Context) ([]entities.Order, error)
	LoadTechnicians(ctx context.Context) ([]entities.Technician, error)
	SaveOrders(ctx context.Context, orders []entities.Order) error
}

// IOrderPatcher is implemented by stores that can write a single order with an
// optimistic version check. expectedVersion is the version the order had when
// it was loaded; the stored version becomes order.Version.
type IOrderPatcher interface {
	PatchOrder(ctx context.Context, order entities.Order, expectedVersion int64) error
}

// IPatchableRecordStore is a record store that can also patch single orders.
type IPatchableRecordStore interface {
	IRecordStore
	IOrderPatcher
}

// ITechnicianWriter replaces the technicians collection. Used for seeding.
type ITechnicianWriter interface {
	SaveTechnicians(ctx context.Context, technicians []entities.Technician) error
}
