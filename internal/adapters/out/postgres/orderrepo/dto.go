// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and driver assignment.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber    string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	TrackingNumber string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	CustomerName   string     `gorm:"type:varchar(255);not null"`
	CustomerPhone  string     `gorm:"type:varchar(32);not null"`
	Address        string     `gorm:"type:text;not null"`
	Amount         int64      `gorm:"type:bigint;not null"`
	Payment        int        `gorm:"type:int;not null"`
	Status         int        `gorm:"type:int;not null;index"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time  `gorm:"not null;index"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional driver assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrderNumber:    aggregate.OrderNumber(),
		TrackingNumber: aggregate.TrackingNumber(),
		CustomerName:   aggregate.CustomerName(),
		CustomerPhone:  aggregate.CustomerPhone(),
		Address:        aggregate.Address(),
		Amount:         aggregate.Amount().Cents(),
		Payment:        int(aggregate.Payment()),
		Status:         int(aggregate.Status()),
		DriverID:       driverID,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and driver assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.OrderNumber, dto.TrackingNumber,
		dto.CustomerName, dto.CustomerPhone, dto.Address, amount,
		order.PaymentMethod(dto.Payment), order.Status(dto.Status), driverID,
		dto.CreatedAt, dto.UpdatedAt)
}
