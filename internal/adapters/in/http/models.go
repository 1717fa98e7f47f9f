package http

import "time"

type createOrderRequest struct {
	Direction string             `json:"direction"`
	OrderType string             `json:"orderType"`
	CreatorID string             `json:"creatorId"`
	Remark    string             `json:"remark,omitempty"`
	Items     []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ProductID        string `json:"productId"`
	BatchNumber      string `json:"batchNumber"`
	ExpectedQuantity int    `json:"expectedQuantity"`
	Price            int64  `json:"price"`
	AreaID           string `json:"areaId"`
}

type reviewRequest struct {
	ApproverID string `json:"approverId"`
	Reason     string `json:"reason,omitempty"`
}

type cancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

type startProcessingRequest struct {
	InspectorID string `json:"inspectorId"`
}

type verdictRequest struct {
	ProductID         string `json:"productId"`
	BatchNumber       string `json:"batchNumber"`
	ActualQuantity    int    `json:"actualQuantity"`
	QualifiedQuantity int    `json:"qualifiedQuantity"`
	Approved          bool   `json:"approved"`
	Remark            string `json:"remark,omitempty"`
}

type putawayRequest struct {
	ProductID   string             `json:"productId"`
	BatchNumber string             `json:"batchNumber"`
	Placements  []placementRequest `json:"placements"`
}

type placementRequest struct {
	ShelfID    string   `json:"shelfId"`
	StorageIDs []string `json:"storageIds"`
}

type addStockRequest struct {
	ProductID   string `json:"productId"`
	BatchNumber string `json:"batchNumber"`
	AreaID      string `json:"areaId"`
	Quantity    int    `json:"quantity"`
}

type editStockRequest struct {
	ProductID   string `json:"productId"`
	BatchNumber string `json:"batchNumber"`
	NewQuantity int    `json:"newQuantity"`
}

type idResponse struct {
	ID string `json:"id"`
}

type orderResponse struct {
	ID            string    `json:"id"`
	OrderNo       string    `json:"orderNo"`
	Direction     string    `json:"direction"`
	OrderType     string    `json:"orderType"`
	Status        string    `json:"status"`
	QualityStatus string    `json:"qualityStatus"`
	TotalAmount   int64     `json:"totalAmount"`
	TotalQuantity int       `json:"totalQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
}

type orderDetailResponse struct {
	ID            string                    `json:"id"`
	OrderNo       string                    `json:"orderNo"`
	Direction     string                    `json:"direction"`
	OrderType     string                    `json:"orderType"`
	Status        string                    `json:"status"`
	QualityStatus string                    `json:"qualityStatus"`
	TotalAmount   int64                     `json:"totalAmount"`
	TotalQuantity int                       `json:"totalQuantity"`
	Remark        string                    `json:"remark,omitempty"`
	Reason        string                    `json:"reason,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
	Items         []orderDetailItemResponse `json:"items"`
}

type orderDetailItemResponse struct {
	ID               string `json:"id"`
	ProductID        string `json:"productId"`
	BatchNumber      string `json:"batchNumber"`
	ExpectedQuantity int    `json:"expectedQuantity"`
	ActualQuantity   *int   `json:"actualQuantity,omitempty"`
	Price            int64  `json:"price"`
	Amount           int64  `json:"amount"`
	QualityStatus    string `json:"qualityStatus"`
}

type shelfResponse struct {
	ShelfID   string `json:"shelfId"`
	ShelfCode string `json:"shelfCode"`
	FreeSlots int    `json:"freeSlots"`
}

type stockResponse struct {
	ProductID         string    `json:"productId"`
	BatchNumber       string    `json:"batchNumber"`
	AreaID            string    `json:"areaId"`
	Quantity          int       `json:"quantity"`
	AvailableQuantity int       `json:"availableQuantity"`
	AlertStatus       string    `json:"alertStatus"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
