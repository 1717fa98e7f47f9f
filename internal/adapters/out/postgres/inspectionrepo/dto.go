// Package inspectionrepo provides data transfer objects and mapping functions
// for inspection record persistence. A record is stored as three tables: the
// record row, the worksheet rows holding live verdicts, and the frozen result
// lines written at finalize.
package inspectionrepo

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// RecordDTO represents the database structure for persisting inspection records.
type RecordDTO struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	InspectionNo string              `gorm:"type:varchar(64);not null;uniqueIndex"`
	Kind         int                 `gorm:"type:int;not null"`
	OrderID      uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	InspectorID  uuid.UUID           `gorm:"type:uuid;not null"`
	Status       int                 `gorm:"type:int;not null"`
	CreatedAt    time.Time           `gorm:"not null"`
	FinalizedAt  *time.Time          `gorm:"type:timestamptz"`
	Rows         []WorksheetRowDTO   `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
	Items        []InspectionItemDTO `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for inspection records.
func (RecordDTO) TableName() string {
	return "inspection_records"
}

// WorksheetRowDTO is one keyed row of the working verdict set. Position
// preserves the registration order of the order's item lines; the verdict
// columns are only meaningful when HasVerdict is set.
type WorksheetRowDTO struct {
	ID                uint      `gorm:"primaryKey;autoIncrement"`
	RecordID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Position          int       `gorm:"type:int;not null"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null"`
	BatchNumber       string    `gorm:"type:varchar(64);not null"`
	ExpectedQuantity  int       `gorm:"type:int;not null"`
	AreaID            uuid.UUID `gorm:"type:uuid;not null"`
	HasVerdict        bool      `gorm:"not null"`
	ActualQuantity    int       `gorm:"type:int;not null"`
	QualifiedQuantity int       `gorm:"type:int;not null"`
	Approved          bool      `gorm:"not null"`
	Remark            string    `gorm:"type:text"`
}

// TableName specifies the database table name for worksheet rows.
func (WorksheetRowDTO) TableName() string {
	return "inspection_worksheet_rows"
}

// InspectionItemDTO is a frozen per-line inspection result, written once at
// finalize and mutated only by putaway progress.
type InspectionItemDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID           uuid.UUID `gorm:"type:uuid;not null"`
	BatchNumber         string    `gorm:"type:varchar(64);not null"`
	AreaID              uuid.UUID `gorm:"type:uuid;not null"`
	LocationCode        string    `gorm:"type:varchar(255)"`
	InspectionQuantity  int       `gorm:"type:int;not null"`
	QualifiedQuantity   int       `gorm:"type:int;not null"`
	UnqualifiedQuantity int       `gorm:"type:int;not null"`
	Quality             int       `gorm:"type:int;not null"`
	ReceiveStatus       int       `gorm:"type:int;not null"`
	Remark              string    `gorm:"type:text"`
}

// TableName specifies the database table name for inspection result lines.
func (InspectionItemDTO) TableName() string {
	return "inspection_items"
}

// fromDomain converts an inspection record to its database representation.
func fromDomain(rec *inspection.Record) RecordDTO {
	ws := rec.Worksheet()
	rows := make([]WorksheetRowDTO, 0, len(ws.Keys()))
	for position, key := range ws.Keys() {
		expected, _ := ws.ExpectedQuantity(key)
		areaID, _ := ws.AreaID(key)

		row := WorksheetRowDTO{
			RecordID:         rec.ID().Bytes(),
			Position:         position,
			ProductID:        key.ProductID.Bytes(),
			BatchNumber:      key.BatchNumber,
			ExpectedQuantity: expected,
			AreaID:           areaID.Bytes(),
		}
		if v, ok := ws.Verdict(key); ok {
			row.HasVerdict = true
			row.ActualQuantity = v.ActualQuantity
			row.QualifiedQuantity = v.QualifiedQuantity
			row.Approved = v.Approved
			row.Remark = v.Remark
		}
		rows = append(rows, row)
	}

	items := make([]InspectionItemDTO, 0, len(rec.Items()))
	for _, item := range rec.Items() {
		items = append(items, InspectionItemDTO{
			ID:                  item.ID().Bytes(),
			RecordID:            rec.ID().Bytes(),
			ProductID:           item.ProductID().Bytes(),
			BatchNumber:         item.BatchNumber(),
			AreaID:              item.AreaID().Bytes(),
			LocationCode:        item.LocationCode(),
			InspectionQuantity:  item.InspectionQuantity(),
			QualifiedQuantity:   item.QualifiedQuantity(),
			UnqualifiedQuantity: item.UnqualifiedQuantity(),
			Quality:             int(item.Quality()),
			ReceiveStatus:       int(item.ReceiveStatus()),
			Remark:              item.Remark(),
		})
	}

	return RecordDTO{
		ID:           rec.ID().Bytes(),
		InspectionNo: rec.InspectionNo(),
		Kind:         int(rec.Kind()),
		OrderID:      rec.OrderID().Bytes(),
		InspectorID:  rec.InspectorID().Bytes(),
		Status:       int(rec.Status()),
		CreatedAt:    rec.CreatedAt(),
		FinalizedAt:  rec.FinalizedAt(),
		Rows:         rows,
		Items:        items,
	}
}

// toDomain converts a database DTO to an inspection record aggregate.
func toDomain(dto RecordDTO) (*inspection.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	inspectorID, err := kernel.UUIDFromBytes(dto.InspectorID[:])
	if err != nil {
		return nil, err
	}

	ws, err := worksheetToDomain(dto.Rows)
	if err != nil {
		return nil, err
	}

	items := make([]*inspection.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return inspection.RestoreRecord(
		id,
		dto.InspectionNo,
		inspection.Type(dto.Kind),
		orderID,
		inspectorID,
		order.QualityStatus(dto.Status),
		ws,
		items,
		dto.CreatedAt,
		dto.FinalizedAt,
	)
}

func worksheetToDomain(rows []WorksheetRowDTO) (*inspection.Worksheet, error) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	keys := make([]inspection.ItemKey, 0, len(rows))
	expected := make(map[inspection.ItemKey]int, len(rows))
	areas := make(map[inspection.ItemKey]kernel.UUID, len(rows))
	verdicts := make(map[inspection.ItemKey]inspection.Verdict)

	for _, row := range rows {
		productID, err := kernel.UUIDFromBytes(row.ProductID[:])
		if err != nil {
			return nil, err
		}
		areaID, err := kernel.UUIDFromBytes(row.AreaID[:])
		if err != nil {
			return nil, err
		}
		key, err := inspection.NewItemKey(productID, row.BatchNumber)
		if err != nil {
			return nil, err
		}

		keys = append(keys, key)
		expected[key] = row.ExpectedQuantity
		areas[key] = areaID
		if row.HasVerdict {
			verdicts[key] = inspection.Verdict{
				ActualQuantity:    row.ActualQuantity,
				QualifiedQuantity: row.QualifiedQuantity,
				Approved:          row.Approved,
				Remark:            row.Remark,
			}
		}
	}

	return inspection.RestoreWorksheet(keys, expected, areas, verdicts)
}

func itemToDomain(dto InspectionItemDTO) (*inspection.Item, error) {
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

	return inspection.RestoreItem(
		id,
		productID,
		dto.BatchNumber,
		areaID,
		dto.LocationCode,
		dto.InspectionQuantity,
		dto.QualifiedQuantity,
		dto.UnqualifiedQuantity,
		inspection.ItemQuality(dto.Quality),
		inspection.ReceiveStatus(dto.ReceiveStatus),
		dto.Remark,
	)
}
