// Package warehouserepo provides data transfer objects and mapping functions
// for the storage hierarchy master data: areas, shelves and storage slots.
// Master data is read-mostly; the only write path is the slot reservation.
package warehouserepo

import (
	"github.com/google/uuid"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

// AreaDTO represents the database structure for warehouse areas.
type AreaDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName specifies the database table name for area entities.
func (AreaDTO) TableName() string {
	return "areas"
}

// ShelfDTO represents the database structure for shelves within an area.
type ShelfDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	AreaID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code   string    `gorm:"type:varchar(64);not null"`
}

// TableName specifies the database table name for shelf entities.
func (ShelfDTO) TableName() string {
	return "shelves"
}

// StorageDTO represents the database structure for storage slots on a shelf.
// Status is the authoritative availability state guarded by ReserveStorages.
type StorageDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShelfID uuid.UUID `gorm:"type:uuid;not null;index"`
	Code    string    `gorm:"type:varchar(64);not null"`
	Status  int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for storage slot entities.
func (StorageDTO) TableName() string {
	return "storages"
}

func areaToDomain(dto AreaDTO) (location.Area, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return location.Area{}, err
	}
	return location.NewArea(id, dto.Code)
}

func shelfToDomain(dto ShelfDTO) (location.Shelf, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return location.Shelf{}, err
	}
	areaID, err := kernel.UUIDFromBytes(dto.AreaID[:])
	if err != nil {
		return location.Shelf{}, err
	}
	return location.NewShelf(id, areaID, dto.Code)
}

func storageToDomain(dto StorageDTO) (location.Storage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return location.Storage{}, err
	}
	shelfID, err := kernel.UUIDFromBytes(dto.ShelfID[:])
	if err != nil {
		return location.Storage{}, err
	}
	return location.NewStorage(id, shelfID, dto.Code, location.SlotStatus(dto.Status))
}
