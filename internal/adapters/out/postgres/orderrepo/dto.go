// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and direction.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderNo       string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	Direction     int            `gorm:"type:int;not null;index"`
	OrderType     string         `gorm:"type:varchar(64);not null"`
	CreatorID     uuid.UUID      `gorm:"type:uuid;not null"`
	ApproverID    *uuid.UUID     `gorm:"type:uuid"`
	InspectorID   *uuid.UUID     `gorm:"type:uuid"`
	Status        int            `gorm:"type:int;not null;index"`
	QualityStatus int            `gorm:"type:int;not null"`
	TotalAmount   int64          `gorm:"type:bigint;not null"`
	TotalQuantity int            `gorm:"type:int;not null"`
	Remark        string         `gorm:"type:text"`
	Reason        string         `gorm:"type:text"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order lines.
type OrderItemDTO struct {
	ID               uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID               `gorm:"type:uuid;not null;index"`
	ProductID        uuid.UUID               `gorm:"type:uuid;not null;index"`
	BatchNumber      string                  `gorm:"type:varchar(64);not null"`
	ExpectedQuantity int                     `gorm:"type:int;not null"`
	ActualQuantity   *int                    `gorm:"type:int"`
	Price            int64                   `gorm:"type:bigint;not null"`
	Amount           int64                   `gorm:"type:bigint;not null"`
	AreaID           uuid.UUID               `gorm:"type:uuid;not null"`
	QualityStatus    int                     `gorm:"type:int;not null"`
	Placements       []OrderItemPlacementDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderItemPlacementDTO represents one committed shelf row of an order line:
// the shelf and the storage slots the goods went into.
type OrderItemPlacementDTO struct {
	ID         uint           `gorm:"primaryKey;autoIncrement"`
	ItemID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	ShelfID    uuid.UUID      `gorm:"type:uuid;not null"`
	StorageIDs pq.StringArray `gorm:"type:text[]"`
}

// TableName specifies the database table name for placement rows.
func (OrderItemPlacementDTO) TableName() string {
	return "order_item_placements"
}

// fromDomain converts an order domain aggregate to its database representation,
// including item lines and their committed placements.
func fromDomain(aggregate *order.Order) OrderDTO {
	var approverID, inspectorID *uuid.UUID
	if id := aggregate.ApproverID(); id != nil {
		raw := id.Bytes()
		approverID = &raw
	}
	if id := aggregate.InspectorID(); id != nil {
		raw := id.Bytes()
		inspectorID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNo:       aggregate.OrderNo(),
		Direction:     int(aggregate.Direction()),
		OrderType:     aggregate.OrderType(),
		CreatorID:     aggregate.CreatorID().Bytes(),
		ApproverID:    approverID,
		InspectorID:   inspectorID,
		Status:        int(aggregate.Status()),
		QualityStatus: int(aggregate.QualityStatus()),
		TotalAmount:   aggregate.TotalAmount(),
		TotalQuantity: aggregate.TotalQuantity(),
		Remark:        aggregate.Remark(),
		Reason:        aggregate.Reason(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Items:         items,
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) OrderItemDTO {
	var actualQuantity *int
	if quantity, recorded := item.ActualQuantity(); recorded {
		actualQuantity = &quantity
	}

	placements := make([]OrderItemPlacementDTO, 0, len(item.Placements()))
	for _, p := range item.Placements() {
		storageIDs := make(pq.StringArray, 0, len(p.StorageIDs))
		for _, id := range p.StorageIDs {
			storageIDs = append(storageIDs, id.String())
		}
		placements = append(placements, OrderItemPlacementDTO{
			ItemID:     item.ID().Bytes(),
			ShelfID:    p.ShelfID.Bytes(),
			StorageIDs: storageIDs,
		})
	}

	return OrderItemDTO{
		ID:               item.ID().Bytes(),
		OrderID:          orderID.Bytes(),
		ProductID:        item.ProductID().Bytes(),
		BatchNumber:      item.BatchNumber(),
		ExpectedQuantity: item.ExpectedQuantity(),
		ActualQuantity:   actualQuantity,
		Price:            item.Price(),
		Amount:           item.Amount(),
		AreaID:           item.AreaID().Bytes(),
		QualityStatus:    int(item.QualityStatus()),
		Placements:       placements,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including item lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	creatorID, err := kernel.UUIDFromBytes(dto.CreatorID[:])
	if err != nil {
		return nil, err
	}

	approverID, err := optionalUUID(dto.ApproverID)
	if err != nil {
		return nil, err
	}
	inspectorID, err := optionalUUID(dto.InspectorID)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNo,
		order.Direction(dto.Direction),
		dto.OrderType,
		creatorID,
		approverID,
		inspectorID,
		order.Status(dto.Status),
		order.QualityStatus(dto.QualityStatus),
		items,
		dto.Remark,
		dto.Reason,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	areaID, err := kernel.UUIDFromBytes(dto.AreaID[:])
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

	return order.RestoreItem(
		id,
		productID,
		dto.BatchNumber,
		dto.ExpectedQuantity,
		dto.ActualQuantity,
		dto.Price,
		areaID,
		placements,
		order.QualityStatus(dto.QualityStatus),
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
