// Package memory provides an in-process implementation of the persistence
// ports backed by plain maps. It is the default store for local development
// and for the test suite; the postgres adapter replaces it in deployments
// that need durability.
//
// The store keeps aggregates as detached record snapshots, so aggregates
// handed out by repositories never alias the stored state. Writes go through
// the unit of work, which stages them and applies everything on Commit.
package memory

import (
	"fmt"
	"sync"
	"time"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Store holds every aggregate snapshot behind a single mutex. The mutex is
// owned by whichever unit of work is between Begin and Commit/Rollback,
// which serializes transactions and keeps multi-aggregate writes atomic.
type Store struct {
	mu sync.Mutex

	drivers   map[uuid.UUID]driverRecord
	driverIDs []uuid.UUID

	orders   map[uuid.UUID]orderRecord
	orderIDs []uuid.UUID

	collections   map[uuid.UUID]collectionRecord
	collectionIDs []uuid.UUID
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		drivers:     make(map[uuid.UUID]driverRecord),
		orders:      make(map[uuid.UUID]orderRecord),
		collections: make(map[uuid.UUID]collectionRecord),
	}
}

func errAlreadyExists(entity string, id kernel.UUID) error {
	return fmt.Errorf("%s %s already exists", entity, id)
}

// driverRecord is the stored snapshot of a driver aggregate.
type driverRecord struct {
	id              uuid.UUID
	name            string
	vehicle         string
	status          int
	latitude        *float64
	longitude       *float64
	totalDeliveries int
	completedToday  int
	pendingCash     int64
}

func driverToRecord(aggregate *driver.Driver) driverRecord {
	rec := driverRecord{
		id:              aggregate.ID().Bytes(),
		name:            aggregate.Name(),
		vehicle:         aggregate.Vehicle(),
		status:          int(aggregate.Status()),
		totalDeliveries: aggregate.TotalDeliveries(),
		completedToday:  aggregate.CompletedToday(),
		pendingCash:     aggregate.PendingCash().Cents(),
	}

	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		rec.latitude = &lat
		rec.longitude = &lon
	}

	return rec
}

func driverFromRecord(rec driverRecord) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(rec.id[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Geolocation
	if rec.latitude != nil && rec.longitude != nil {
		loc, locErr := kernel.NewGeolocation(*rec.latitude, *rec.longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	pendingCash, err := kernel.NewMoney(rec.pendingCash)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, rec.name, rec.vehicle, driver.Status(rec.status),
		location, rec.totalDeliveries, rec.completedToday, pendingCash)
}

// orderRecord is the stored snapshot of an order aggregate.
type orderRecord struct {
	id             uuid.UUID
	orderNumber    string
	trackingNumber string
	customerName   string
	customerPhone  string
	address        string
	amount         int64
	payment        int
	status         int
	driverID       *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func orderToRecord(aggregate *order.Order) orderRecord {
	rec := orderRecord{
		id:             aggregate.ID().Bytes(),
		orderNumber:    aggregate.OrderNumber(),
		trackingNumber: aggregate.TrackingNumber(),
		customerName:   aggregate.CustomerName(),
		customerPhone:  aggregate.CustomerPhone(),
		address:        aggregate.Address(),
		amount:         aggregate.Amount().Cents(),
		payment:        int(aggregate.Payment()),
		status:         int(aggregate.Status()),
		createdAt:      aggregate.CreatedAt(),
		updatedAt:      aggregate.UpdatedAt(),
	}

	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		rec.driverID = &raw
	}

	return rec
}

func orderFromRecord(rec orderRecord) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(rec.id[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if rec.driverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*rec.driverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	amount, err := kernel.NewMoney(rec.amount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, rec.orderNumber, rec.trackingNumber,
		rec.customerName, rec.customerPhone, rec.address, amount,
		order.PaymentMethod(rec.payment), order.Status(rec.status), driverID,
		rec.createdAt, rec.updatedAt)
}

// collectionRecord is the stored snapshot of a cash collection aggregate.
type collectionRecord struct {
	id          uuid.UUID
	driverID    uuid.UUID
	orderIDs    []uuid.UUID
	amount      int64
	status      int
	notes       string
	submittedAt time.Time
	approvedBy  *string
	approvedAt  *time.Time
}

func collectionToRecord(aggregate *cash.Collection) collectionRecord {
	orders := aggregate.Orders()
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, orderID := range orders {
		orderIDs = append(orderIDs, orderID.Bytes())
	}

	rec := collectionRecord{
		id:          aggregate.ID().Bytes(),
		driverID:    aggregate.Driver().Bytes(),
		orderIDs:    orderIDs,
		amount:      aggregate.Amount().Cents(),
		status:      int(aggregate.Status()),
		notes:       aggregate.Notes(),
		submittedAt: aggregate.SubmittedAt(),
	}

	if by := aggregate.ApprovedBy(); by != nil {
		copied := *by
		rec.approvedBy = &copied
	}
	if at := aggregate.ApprovedAt(); at != nil {
		copied := *at
		rec.approvedAt = &copied
	}

	return rec
}

func collectionFromRecord(rec collectionRecord) (*cash.Collection, error) {
	id, err := kernel.UUIDFromBytes(rec.id[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(rec.driverID[:])
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(rec.orderIDs))
	for _, raw := range rec.orderIDs {
		orderID, orderErr := kernel.UUIDFromBytes(raw[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	amount, err := kernel.NewMoney(rec.amount)
	if err != nil {
		return nil, err
	}

	return cash.RestoreCollection(id, driverID, orderIDs, amount,
		cash.Status(rec.status), rec.notes, rec.submittedAt,
		rec.approvedBy, rec.approvedAt)
}
