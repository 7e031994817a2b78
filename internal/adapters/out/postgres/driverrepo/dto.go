// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Driver ids come from the fleet roster, so the primary key is not generated
// by the database.
type DriverDTO struct {
	ID         int         `gorm:"primaryKey;autoIncrement:false"`
	Location   LocationDTO `gorm:"embedded"`
	LastUpdate time.Time   `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers" instead of "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// LocationDTO represents grid coordinates embedded within a table row.
type LocationDTO struct {
	Lat int `gorm:"type:int;not null"`
	Lng int `gorm:"type:int;not null"`
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID: aggregate.ID(),
		Location: LocationDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
		LastUpdate: aggregate.LastUpdate(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.NewDriver(
		dto.ID,
		kernel.NewLocation(dto.Location.Lat, dto.Location.Lng),
		dto.LastUpdate,
	)
}
