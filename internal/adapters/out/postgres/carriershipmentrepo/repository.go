package carriershipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCarrierShipmentRepository implements CarrierShipmentRepository using GORM.
type GormCarrierShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCarrierShipmentRepository creates a new GORM carrier shipment repository.
func NewGormCarrierShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormCarrierShipmentRepository {
	return &GormCarrierShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new carrier shipment to the database.
func (r *GormCarrierShipmentRepository) Add(ctx context.Context, aggregate *shipment.CarrierShipment) error {
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

// Update saves an existing carrier shipment to the database.
// Uses Save rather than Updates so nil snapshot columns are written out,
// keeping drafts and booked records symmetrical.
func (r *GormCarrierShipmentRepository) Update(ctx context.Context, aggregate *shipment.CarrierShipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CarrierShipmentDTO{}).Where("id = ?", dto.ID).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a carrier shipment by ID.
func (r *GormCarrierShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.CarrierShipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShipmentNote retrieves the carrier shipment created from a shipment note.
func (r *GormCarrierShipmentRepository) GetByShipmentNote(
	ctx context.Context,
	shipmentNoteID kernel.UUID,
) (*shipment.CarrierShipment, error) {
	if err := shipmentNoteID.Validate(); err != nil {
		return nil, err
	}

	var dto CarrierShipmentDTO
	err := r.db.WithContext(ctx).First(&dto, "shipment_note_id = ?", shipmentNoteID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("carrier shipment for shipment note", shipmentNoteID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
