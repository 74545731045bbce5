// Package collectionrepo provides data transfer objects and mapping functions for
// cash collection persistence. This package implements the repository pattern for
// the collection domain aggregate, handling the conversion between domain entities
// and database representations.
package collectionrepo

import (
	"time"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CollectionDTO represents the database structure for persisting cash collection
// aggregates. The covered orders live in a child table so that eligibility checks
// can query order membership directly.
type CollectionDTO struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey"`
	DriverID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	Orders      []CollectionOrderDTO `gorm:"foreignKey:CollectionID;constraint:OnDelete:CASCADE"`
	Amount      int64                `gorm:"type:bigint;not null"`
	Status      int                  `gorm:"type:int;not null;index"`
	Notes       string               `gorm:"type:text"`
	SubmittedAt time.Time            `gorm:"not null;index"`
	ApprovedBy  *string              `gorm:"type:varchar(255)"`
	ApprovedAt  *time.Time
}

// TableName specifies the database table name for collection entities.
// Overrides GORM's default naming convention to use "cash_collections".
func (CollectionDTO) TableName() string {
	return "cash_collections"
}

// CollectionOrderDTO links a collection to one of the orders it covers.
// Position preserves the submission order of the order list.
type CollectionOrderDTO struct {
	CollectionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position     int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for collection order links.
func (CollectionOrderDTO) TableName() string {
	return "cash_collection_orders"
}

// fromDomain converts a collection domain aggregate to its database representation.
func fromDomain(aggregate *cash.Collection) CollectionDTO {
	collectionID := aggregate.ID().Bytes()

	orderIDs := aggregate.Orders()
	orders := make([]CollectionOrderDTO, 0, len(orderIDs))
	for i, orderID := range orderIDs {
		orders = append(orders, CollectionOrderDTO{
			CollectionID: collectionID,
			OrderID:      orderID.Bytes(),
			Position:     i,
		})
	}

	dto := CollectionDTO{
		ID:          collectionID,
		DriverID:    aggregate.Driver().Bytes(),
		Orders:      orders,
		Amount:      aggregate.Amount().Cents(),
		Status:      int(aggregate.Status()),
		Notes:       aggregate.Notes(),
		SubmittedAt: aggregate.SubmittedAt(),
	}

	if by := aggregate.ApprovedBy(); by != nil {
		copied := *by
		dto.ApprovedBy = &copied
	}
	if at := aggregate.ApprovedAt(); at != nil {
		copied := *at
		dto.ApprovedAt = &copied
	}

	return dto
}

// toDomain converts a database DTO to a collection domain aggregate.
// Reconstructs the complete aggregate including the ordered order list
// using RestoreCollection.
func toDomain(dto CollectionDTO) (*cash.Collection, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.Orders))
	for _, link := range dto.Orders {
		orderID, orderErr := kernel.UUIDFromBytes(link.OrderID[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return cash.RestoreCollection(id, driverID, orderIDs, amount,
		cash.Status(dto.Status), dto.Notes, dto.SubmittedAt,
		dto.ApprovedBy, dto.ApprovedAt)
}
