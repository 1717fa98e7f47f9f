package stockrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
)

// GormStockRepository implements StockRepository using GORM.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// GetBatch retrieves the ledger entry for a (productID, batchNumber) pair.
func (r *GormStockRepository) GetBatch(ctx context.Context, key stock.BatchKey) (*stock.Entry, error) {
	if err := key.ProductID.Validate(); err != nil {
		return nil, err
	}

	var dto StockEntryDTO
	err := r.db.WithContext(ctx).
		Preload("Placements").
		First(&dto, "product_id = ? AND batch_number = ?",
			key.ProductID.Bytes(), key.BatchNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock entry", key.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert creates the entry on first putaway of a batch or overwrites an
// existing one. Placement rows are replaced wholesale.
func (r *GormStockRepository) Upsert(ctx context.Context, entry *stock.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	err := r.db.WithContext(ctx).
		Omit("Placements").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "batch_number"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).
		Where("product_id = ? AND batch_number = ?", dto.ProductID, dto.BatchNumber).
		Delete(&StockPlacementDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Placements) > 0 {
		if err = r.db.WithContext(ctx).Create(&dto.Placements).Error; err != nil {
			return err
		}
	}

	return nil
}

// GetAll retrieves every ledger entry, ordered by batch key for stable
// job sweeps.
func (r *GormStockRepository) GetAll(ctx context.Context) ([]*stock.Entry, error) {
	var dtos []StockEntryDTO
	err := r.db.WithContext(ctx).
		Preload("Placements").
		Order("product_id, batch_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*stock.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
