// Package stockrepo provides data transfer objects and mapping functions for
// the batch-keyed stock ledger. Entries are identified by the (productID,
// batchNumber) pair, mapped to a composite primary key.
package stockrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"
)

// StockEntryDTO represents the database structure for persisting ledger entries.
type StockEntryDTO struct {
	ProductID         uuid.UUID            `gorm:"type:uuid;primaryKey"`
	BatchNumber       string               `gorm:"type:varchar(64);primaryKey"`
	AreaID            uuid.UUID            `gorm:"type:uuid;not null"`
	Quantity          int                  `gorm:"type:int;not null"`
	AvailableQuantity int                  `gorm:"type:int;not null"`
	AlertStatus       int                  `gorm:"type:int;not null;index"`
	UpdatedAt         time.Time            `gorm:"not null"`
	Placements        []StockPlacementDTO  `gorm:"foreignKey:ProductID,BatchNumber;references:ProductID,BatchNumber;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for ledger entries.
func (StockEntryDTO) TableName() string {
	return "stock_entries"
}

// StockPlacementDTO is one shelf row of an entry's merged placements.
type StockPlacementDTO struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index:idx_stock_placements_batch"`
	BatchNumber string         `gorm:"type:varchar(64);not null;index:idx_stock_placements_batch"`
	ShelfID     uuid.UUID      `gorm:"type:uuid;not null"`
	StorageIDs  pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for ledger placement rows.
func (StockPlacementDTO) TableName() string {
	return "stock_entry_placements"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *stock.Entry) StockEntryDTO {
	key := entry.Key()

	placements := make([]StockPlacementDTO, 0, len(entry.Placements()))
	for _, p := range entry.Placements() {
		storageIDs := make(pq.StringArray, 0, len(p.StorageIDs))
		for _, id := range p.StorageIDs {
			storageIDs = append(storageIDs, id.String())
		}
		placements = append(placements, StockPlacementDTO{
			ProductID:   key.ProductID.Bytes(),
			BatchNumber: key.BatchNumber,
			ShelfID:     p.ShelfID.Bytes(),
			StorageIDs:  storageIDs,
		})
	}

	return StockEntryDTO{
		ProductID:         key.ProductID.Bytes(),
		BatchNumber:       key.BatchNumber,
		AreaID:            entry.AreaID().Bytes(),
		Quantity:          entry.Quantity(),
		AvailableQuantity: entry.AvailableQuantity(),
		AlertStatus:       int(entry.AlertStatus()),
		UpdatedAt:         entry.UpdatedAt(),
		Placements:        placements,
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto StockEntryDTO) (*stock.Entry, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	areaID, err := kernel.UUIDFromBytes(dto.AreaID[:])
	if err != nil {
		return nil, err
	}
	key, err := stock.NewBatchKey(productID, dto.BatchNumber)
	if err != nil {
		return nil, err
	}

	placements := make([]order.Placement, 0, len(dto.Placements))
	for _, pDTO := range dto.Placements {
		shelfID, pErr := kernel.UUIDFromBytes(pDTO.ShelfID[:])
		if pErr != nil {
			return nil, pErr
		}
		storageIDs := make([]kernel.UUID, 0, len(pDTO.StorageIDs))
		for _, raw := range pDTO.StorageIDs {
			storageID, sErr := kernel.UUIDFromString(raw)
			if sErr != nil {
				return nil, sErr
			}
			storageIDs = append(storageIDs, storageID)
		}
		placements = append(placements, order.Placement{ShelfID: shelfID, StorageIDs: storageIDs})
	}

	return stock.RestoreEntry(
		key,
		areaID,
		placements,
		dto.Quantity,
		dto.AvailableQuantity,
		stock.AlertStatus(dto.AlertStatus),
		dto.UpdatedAt,
	)
}
