package warehouserepo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/pkg/errs"
)

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GORM warehouse repository.
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// ListAreas retrieves all warehouse areas ordered by code.
func (r *GormWarehouseRepository) ListAreas(ctx context.Context) ([]location.Area, error) {
	var dtos []AreaDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	areas := make([]location.Area, 0, len(dtos))
	for _, dto := range dtos {
		area, err := areaToDomain(dto)
		if err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// ListShelves retrieves the shelves of an area ordered by code.
func (r *GormWarehouseRepository) ListShelves(
	ctx context.Context, areaID kernel.UUID,
) ([]location.Shelf, error) {
	if err := areaID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShelfDTO
	err := r.db.WithContext(ctx).
		Order("code").
		Find(&dtos, "area_id = ?", areaID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	shelves := make([]location.Shelf, 0, len(dtos))
	for _, dto := range dtos {
		shelf, shelfErr := shelfToDomain(dto)
		if shelfErr != nil {
			return nil, shelfErr
		}
		shelves = append(shelves, shelf)
	}
	return shelves, nil
}

// ListStorages retrieves the storage slots of a shelf with their live status,
// ordered by code.
func (r *GormWarehouseRepository) ListStorages(
	ctx context.Context, shelfID kernel.UUID,
) ([]location.Storage, error) {
	if err := shelfID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StorageDTO
	err := r.db.WithContext(ctx).
		Order("code").
		Find(&dtos, "shelf_id = ?", shelfID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	storages := make([]location.Storage, 0, len(dtos))
	for _, dto := range dtos {
		storage, storageErr := storageToDomain(dto)
		if storageErr != nil {
			return nil, storageErr
		}
		storages = append(storages, storage)
	}
	return storages, nil
}

// ReserveStorages atomically flips every listed slot from free to occupied.
// The rows are locked for the duration of the check, so two commits racing
// for the same slot serialize here: the loser finds the slot no longer free
// and fails with a ConflictError naming it. All slots are checked before any
// is flipped, so a failed call reserves nothing.
func (r *GormWarehouseRepository) ReserveStorages(
	ctx context.Context, storageIDs []kernel.UUID,
) error {
	if len(storageIDs) == 0 {
		return errs.NewValueIsRequiredError("storageIDs")
	}

	ids := make([]uuid.UUID, 0, len(storageIDs))
	for _, id := range storageIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		ids = append(ids, id.Bytes())
	}

	var dtos []StorageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "id IN ?", ids).Error
	if err != nil {
		return err
	}

	found := make(map[uuid.UUID]StorageDTO, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = dto
	}
	for _, id := range ids {
		dto, ok := found[id]
		if !ok {
			return errs.NewObjectNotFoundError("storage", id.String())
		}
		if dto.Status != int(location.SlotFree) {
			return errs.NewConflictError("storage", dto.Code)
		}
	}

	return r.db.WithContext(ctx).
		Model(&StorageDTO{}).
		Where("id IN ?", ids).
		Update("status", int(location.SlotOccupied)).Error
}
