package shipmentnoterepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentNoteRepository implements ShipmentNoteRepository using GORM.
type GormShipmentNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentNoteRepository creates a new GORM shipment note repository.
func NewGormShipmentNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentNoteRepository {
	return &GormShipmentNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment note to the database.
func (r *GormShipmentNoteRepository) Add(ctx context.Context, aggregate *shipment.ShipmentNote) error {
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

// Update saves an existing shipment note to the database.
func (r *GormShipmentNoteRepository) Update(ctx context.Context, aggregate *shipment.ShipmentNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") forces a full-row write; plain Updates skips zero-value
	// fields and would drop a column that returns to its zero value.
	result := r.db.WithContext(ctx).
		Model(&ShipmentNoteDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
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

// Get retrieves a shipment note by ID.
func (r *GormShipmentNoteRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.ShipmentNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentNoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment note", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all shipment notes in the given status.
func (r *GormShipmentNoteRepository) GetAllInStatus(
	ctx context.Context,
	status shipment.Status,
) ([]*shipment.ShipmentNote, error) {
	var dtos []ShipmentNoteDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	notes := make([]*shipment.ShipmentNote, 0, len(dtos))
	for _, dto := range dtos {
		note, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, nil
}
