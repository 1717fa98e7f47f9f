package inspectionrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// GormInspectionRepository implements InspectionRepository using GORM.
type GormInspectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInspectionRepository creates a new GORM inspection repository.
func NewGormInspectionRepository(db *gorm.DB, tracker aggregateTracker) *GormInspectionRepository {
	return &GormInspectionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inspection record with its worksheet rows.
func (r *GormInspectionRepository) Add(ctx context.Context, rec *inspection.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rec)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rec.ID(), rec)
	return nil
}

// Update saves worksheet edits, finalize results and putaway progress of an
// existing record. Worksheet rows and result lines are replaced wholesale.
func (r *GormInspectionRepository) Update(ctx context.Context, rec *inspection.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rec)
	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Rows", "Items", "id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inspection record", rec.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("record_id = ?", dto.ID).
		Delete(&WorksheetRowDTO{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("record_id = ?", dto.ID).
		Delete(&InspectionItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Rows) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Rows).Error; err != nil {
			return err
		}
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(rec.ID(), rec)
	return nil
}

// Get retrieves an inspection record by ID with its worksheet and result lines.
func (r *GormInspectionRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "id = ?", id.Bytes(), id.String())
}

// GetByOrder retrieves the inspection record attached to an order.
func (r *GormInspectionRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID,
) (*inspection.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "order_id = ?", orderID.Bytes(), orderID.String())
}

func (r *GormInspectionRepository) getOne(
	ctx context.Context, condition string, value any, id string,
) (*inspection.Record, error) {
	var dto RecordDTO
	err := r.db.WithContext(ctx).
		Preload("Rows").
		Preload("Items").
		First(&dto, condition, value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inspection record", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
