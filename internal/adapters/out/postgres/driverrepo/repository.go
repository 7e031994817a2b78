package driverrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Upsert inserts the driver or replaces the position fields of the existing
// row with the same id. One row per driver id is the write contract of the
// location-ingestion feed.
func (r *GormDriverRepository) Upsert(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "last_update"}),
	}).Create(&dto).Error
}

// Get retrieves a driver by id.
func (r *GormDriverRepository) Get(ctx context.Context, id int) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a driver by id with a row-level lock held until the
// surrounding transaction ends. Callers must run it inside a transaction.
func (r *GormDriverRepository) GetForUpdate(ctx context.Context, id int) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all drivers ordered ascending by id.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, aggregate)
	}

	return drivers, nil
}

// Delete removes a driver by id. The RESTRICT foreign key on orders makes
// the database reject the delete while any order references the driver;
// that violation surfaces as ports.ErrDriverHasOrders.
func (r *GormDriverRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&DriverDTO{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ports.ErrDriverHasOrders
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver_id", id)
	}

	return nil
}
