// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The id is database-assigned. The driver foreign key is RESTRICT on delete:
// a driver cannot be removed while orders still reference them.
type OrderDTO struct {
	ID         int                   `gorm:"primaryKey"`
	DriverID   int                   `gorm:"not null;index:idx_orders_driver_pickup,priority:1"`
	Driver     *driverrepo.DriverDTO `gorm:"foreignKey:DriverID;constraint:OnDelete:RESTRICT"`
	PickupTime time.Time             `gorm:"not null;index;index:idx_orders_driver_pickup,priority:2"`
	Pickup     LocationDTO           `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery   LocationDTO           `gorm:"embedded;embeddedPrefix:delivery_"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO represents grid coordinates embedded within a table row.
type LocationDTO struct {
	Lat int `gorm:"type:int;not null"`
	Lng int `gorm:"type:int;not null"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID(),
		DriverID:   aggregate.DriverID(),
		PickupTime: aggregate.PickupTime(),
		Pickup: LocationDTO{
			Lat: aggregate.PickupLocation().Lat(),
			Lng: aggregate.PickupLocation().Lng(),
		},
		Delivery: LocationDTO{
			Lat: aggregate.DeliveryLocation().Lat(),
			Lng: aggregate.DeliveryLocation().Lng(),
		},
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.DriverID,
		dto.PickupTime,
		kernel.NewLocation(dto.Pickup.Lat, dto.Pickup.Lng),
		kernel.NewLocation(dto.Delivery.Lat, dto.Delivery.Lng),
	)
}
