// Package http exposes the fulfillment workflow over a REST API built on
// echo. Handlers translate JSON payloads into commands and queries, and map
// domain failures onto HTTP status codes: validation errors become 400,
// unknown objects 404, lifecycle and slot conflicts 409.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	approveOrderHandler       commands.ApproveOrderCommandHandler
	rejectOrderHandler        commands.RejectOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	startProcessingHandler    commands.StartProcessingCommandHandler
	recordVerdictHandler      commands.RecordVerdictCommandHandler
	finalizeInspectionHandler commands.FinalizeInspectionCommandHandler
	commitPutawayHandler      commands.CommitPutawayCommandHandler
	addStockHandler           commands.AddStockCommandHandler
	editStockHandler          commands.EditStockCommandHandler

	// Query handlers
	getOrdersHandler      queries.GetOrdersQueryHandler
	getOrderHandler       queries.GetOrderQueryHandler
	getFreeShelvesHandler queries.GetFreeShelvesQueryHandler
	getStockHandler       queries.GetStockQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	startProcessingHandler commands.StartProcessingCommandHandler,
	recordVerdictHandler commands.RecordVerdictCommandHandler,
	finalizeInspectionHandler commands.FinalizeInspectionCommandHandler,
	commitPutawayHandler commands.CommitPutawayCommandHandler,
	addStockHandler commands.AddStockCommandHandler,
	editStockHandler commands.EditStockCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getFreeShelvesHandler queries.GetFreeShelvesQueryHandler,
	getStockHandler queries.GetStockQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		approveOrderHandler:       approveOrderHandler,
		rejectOrderHandler:        rejectOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		startProcessingHandler:    startProcessingHandler,
		recordVerdictHandler:      recordVerdictHandler,
		finalizeInspectionHandler: finalizeInspectionHandler,
		commitPutawayHandler:      commitPutawayHandler,
		addStockHandler:           addStockHandler,
		editStockHandler:          editStockHandler,
		getOrdersHandler:          getOrdersHandler,
		getOrderHandler:           getOrderHandler,
		getFreeShelvesHandler:     getFreeShelvesHandler,
		getStockHandler:           getStockHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/approve", s.ApproveOrder)
	api.POST("/orders/:id/reject", s.RejectOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/start-processing", s.StartProcessing)

	api.POST("/inspections/:id/verdicts", s.RecordVerdict)
	api.POST("/inspections/:id/finalize", s.FinalizeInspection)
	api.POST("/inspections/:id/putaway", s.CommitPutaway)

	api.GET("/areas/:id/free-shelves", s.GetFreeShelves)

	api.GET("/stock", s.GetStock)
	api.POST("/stock", s.AddStock)
	api.PUT("/stock", s.EditStock)
}

// CreateOrder handles POST /api/v1/orders - submits a new order for review.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	creatorID, err := kernel.UUIDFromString(req.CreatorID)
	if err != nil {
		return badRequest(ctx, "Invalid creatorId: "+err.Error())
	}
	direction, err := parseDirection(req.Direction)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid productId: "+itemErr.Error())
		}
		areaID, itemErr := kernel.UUIDFromString(item.AreaID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid areaId: "+itemErr.Error())
		}
		items = append(items, commands.ItemInput{
			ProductID:        productID,
			BatchNumber:      item.BatchNumber,
			ExpectedQuantity: item.ExpectedQuantity,
			Price:            item.Price,
			AreaID:           areaID,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, direction, req.OrderType, creatorID, items, req.Remark)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by direction and status.
func (s *Server) GetOrders(ctx echo.Context) error {
	direction := order.DirectionUnknown
	if raw := ctx.QueryParam("direction"); raw != "" {
		parsed, err := parseDirection(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		direction = parsed
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := parseStatus(raw)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(direction, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]orderResponse, 0, len(orders))
	for _, row := range orders {
		response = append(response, orderResponse{
			ID:            row.ID.String(),
			OrderNo:       row.OrderNo,
			Direction:     row.Direction.String(),
			OrderType:     row.OrderType,
			Status:        row.Status.String(),
			QualityStatus: row.QualityStatus.String(),
			TotalAmount:   row.TotalAmount,
			TotalQuantity: row.TotalQuantity,
			CreatedAt:     row.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - returns one order with its
// item lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	items := make([]orderDetailItemResponse, 0, len(detail.Items))
	for _, row := range detail.Items {
		items = append(items, orderDetailItemResponse{
			ID:               row.ID.String(),
			ProductID:        row.ProductID.String(),
			BatchNumber:      row.BatchNumber,
			ExpectedQuantity: row.ExpectedQuantity,
			ActualQuantity:   row.ActualQuantity,
			Price:            row.Price,
			Amount:           row.Amount,
			QualityStatus:    row.QualityStatus.String(),
		})
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse{
		ID:            detail.ID.String(),
		OrderNo:       detail.OrderNo,
		Direction:     detail.Direction.String(),
		OrderType:     detail.OrderType,
		Status:        detail.Status.String(),
		QualityStatus: detail.QualityStatus.String(),
		TotalAmount:   detail.TotalAmount,
		TotalQuantity: detail.TotalQuantity,
		Remark:        detail.Remark,
		Reason:        detail.Reason,
		CreatedAt:     detail.CreatedAt,
		Items:         items,
	})
}

// ApproveOrder handles POST /api/v1/orders/:id/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req reviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	approverID, err := kernel.UUIDFromString(req.ApproverID)
	if err != nil {
		return badRequest(ctx, "Invalid approverId: "+err.Error())
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, approverID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req reviewRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	approverID, err := kernel.UUIDFromString(req.ApproverID)
	if err != nil {
		return badRequest(ctx, "Invalid approverId: "+err.Error())
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, approverID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req cancelRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartProcessing handles POST /api/v1/orders/:id/start-processing.
// Moves the order to InProgress and opens its inspection record.
func (s *Server) StartProcessing(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req startProcessingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	inspectorID, err := kernel.UUIDFromString(req.InspectorID)
	if err != nil {
		return badRequest(ctx, "Invalid inspectorId: "+err.Error())
	}

	cmd, err := commands.NewStartProcessingCommand(orderID, inspectorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.startProcessingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordVerdict handles POST /api/v1/inspections/:id/verdicts.
// Records or overwrites one per-item verdict on the open worksheet.
func (s *Server) RecordVerdict(ctx echo.Context) error {
	recordID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req verdictRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid productId: "+err.Error())
	}

	cmd, err := commands.NewRecordVerdictCommand(
		recordID, productID, req.BatchNumber,
		req.ActualQuantity, req.QualifiedQuantity, req.Approved, req.Remark)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.recordVerdictHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeInspection handles POST /api/v1/inspections/:id/finalize.
// Aggregates the worksheet into the order-level quality outcome.
func (s *Server) FinalizeInspection(ctx echo.Context) error {
	recordID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewFinalizeInspectionCommand(recordID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.finalizeInspectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CommitPutaway handles POST /api/v1/inspections/:id/putaway.
// Commits the confirmed shelf/slot rows for one finalized line.
func (s *Server) CommitPutaway(ctx echo.Context) error {
	recordID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req putawayRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid productId: "+err.Error())
	}

	placements := make([]order.Placement, 0, len(req.Placements))
	for _, row := range req.Placements {
		shelfID, rowErr := kernel.UUIDFromString(row.ShelfID)
		if rowErr != nil {
			return badRequest(ctx, "Invalid shelfId: "+rowErr.Error())
		}
		storageIDs := make([]kernel.UUID, 0, len(row.StorageIDs))
		for _, raw := range row.StorageIDs {
			storageID, rowErr := kernel.UUIDFromString(raw)
			if rowErr != nil {
				return badRequest(ctx, "Invalid storageId: "+rowErr.Error())
			}
			storageIDs = append(storageIDs, storageID)
		}
		placements = append(placements, order.Placement{ShelfID: shelfID, StorageIDs: storageIDs})
	}

	cmd, err := commands.NewCommitPutawayCommand(recordID, productID, req.BatchNumber, placements)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.commitPutawayHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetFreeShelves handles GET /api/v1/areas/:id/free-shelves - lists the
// area's shelves with their free slot counts for allocation drafting.
func (s *Server) GetFreeShelves(ctx echo.Context) error {
	areaID, err := pathUUID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetFreeShelvesQuery(areaID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	shelves, err := s.getFreeShelvesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]shelfResponse, 0, len(shelves))
	for _, row := range shelves {
		response = append(response, shelfResponse{
			ShelfID:   row.ShelfID.String(),
			ShelfCode: row.ShelfCode,
			FreeSlots: row.FreeSlots,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStock handles GET /api/v1/stock - lists ledger entries, optionally
// filtered by product.
func (s *Server) GetStock(ctx echo.Context) error {
	var productID *kernel.UUID
	if raw := ctx.QueryParam("productId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid productId: "+err.Error())
		}
		productID = &parsed
	}

	query, err := queries.NewGetStockQuery(productID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.getStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]stockResponse, 0, len(entries))
	for _, row := range entries {
		response = append(response, stockResponse{
			ProductID:         row.ProductID.String(),
			BatchNumber:       row.BatchNumber,
			AreaID:            row.AreaID.String(),
			Quantity:          row.Quantity,
			AvailableQuantity: row.AvailableQuantity,
			AlertStatus:       row.AlertStatus.String(),
			UpdatedAt:         row.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddStock handles POST /api/v1/stock - adds stock outside the putaway flow.
func (s *Server) AddStock(ctx echo.Context) error {
	var req addStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid productId: "+err.Error())
	}
	areaID, err := kernel.UUIDFromString(req.AreaID)
	if err != nil {
		return badRequest(ctx, "Invalid areaId: "+err.Error())
	}

	cmd, err := commands.NewAddStockCommand(productID, req.BatchNumber, areaID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EditStock handles PUT /api/v1/stock - corrects a batch quantity upward.
func (s *Server) EditStock(ctx echo.Context) error {
	var req editStockRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid productId: "+err.Error())
	}

	cmd, err := commands.NewEditStockCommand(productID, req.BatchNumber, req.NewQuantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.editStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func parseDirection(raw string) (order.Direction, error) {
	switch raw {
	case order.Inbound.String():
		return order.Inbound, nil
	case order.Outbound.String():
		return order.Outbound, nil
	default:
		return order.DirectionUnknown, errs.NewValueIsInvalidError("direction")
	}
}

func parseStatus(raw string) (order.Status, error) {
	for _, status := range []order.Status{
		order.PendingReview, order.Approved, order.InProgress,
		order.Completed, order.Cancelled, order.Rejected,
	} {
		if raw == status.String() {
			return status, nil
		}
	}
	return order.PendingReview, errs.NewValueIsInvalidError("status")
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a use case failure onto the HTTP status that describes
// it: unknown aggregates are 404, lifecycle/worksheet/slot conflicts are
// 409, validation failures are 400, everything else is a 500.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrIncomplete),
		errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, errorBody{Code: code, Message: err.Error()})
}
