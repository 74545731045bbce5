// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The live location is stored as a nullable coordinate pair; it is present
// exactly while the driver is active and has reported a position.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Vehicle         string    `gorm:"type:varchar(255);not null"`
	Status          int       `gorm:"type:int;not null;index"`
	Latitude        *float64  `gorm:"type:double precision"`
	Longitude       *float64  `gorm:"type:double precision"`
	TotalDeliveries int       `gorm:"type:int;not null"`
	CompletedToday  int       `gorm:"type:int;not null"`
	PendingCash     int64     `gorm:"type:bigint;not null"`
	RegisteredAt    time.Time `gorm:"not null;index;autoCreateTime"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Vehicle:         aggregate.Vehicle(),
		Status:          int(aggregate.Status()),
		TotalDeliveries: aggregate.TotalDeliveries(),
		CompletedToday:  aggregate.CompletedToday(),
		PendingCash:     aggregate.PendingCash().Cents(),
	}

	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

// toDomain converts a database DTO to a driver domain aggregate.
// Reconstructs the complete aggregate including the optional live location
// using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Geolocation
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewGeolocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	pendingCash, err := kernel.NewMoney(dto.PendingCash)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Vehicle, driver.Status(dto.Status),
		location, dto.TotalDeliveries, dto.CompletedToday, pendingCash)
}
