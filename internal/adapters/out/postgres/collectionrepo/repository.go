package collectionrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/cash"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCollectionRepository implements CollectionRepository using GORM.
type GormCollectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCollectionRepository creates a new GORM collection repository.
func NewGormCollectionRepository(db *gorm.DB, tracker aggregateTracker) *GormCollectionRepository {
	return &GormCollectionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new collection to the database, including the order links.
func (r *GormCollectionRepository) Add(ctx context.Context, aggregate *cash.Collection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing collection to the database. The order list is
// immutable after submission, so only the review fields are written; the
// column list is explicit so clearing a field would actually persist.
func (r *GormCollectionRepository) Update(ctx context.Context, aggregate *cash.Collection) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CollectionDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "notes", "approved_by", "approved_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a collection by ID.
func (r *GormCollectionRepository) Get(ctx context.Context, id kernel.UUID) (*cash.Collection, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CollectionDTO
	if err := r.db.WithContext(ctx).
		Preload("Orders", orderLinkOrdering).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collection", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every collection in submission order.
func (r *GormCollectionRepository) GetAll(ctx context.Context) ([]*cash.Collection, error) {
	var dtos []CollectionDTO
	if err := r.db.WithContext(ctx).
		Preload("Orders", orderLinkOrdering).
		Order("submitted_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllForDriver retrieves a driver's collections in submission order.
func (r *GormCollectionRepository) GetAllForDriver(
	ctx context.Context, driverID kernel.UUID,
) ([]*cash.Collection, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CollectionDTO
	if err := r.db.WithContext(ctx).
		Preload("Orders", orderLinkOrdering).
		Where("driver_id = ?", driverID.Bytes()).
		Order("submitted_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []CollectionDTO) ([]*cash.Collection, error) {
	collections := make([]*cash.Collection, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	return collections, nil
}

// orderLinkOrdering keeps the preloaded order links in submission order.
func orderLinkOrdering(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
