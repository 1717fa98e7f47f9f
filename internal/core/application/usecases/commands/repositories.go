// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InspectionRepoFactory provides access to the inspection repository within a transaction.
	InspectionRepoFactory interface {
		InspectionRepository() ports.InspectionRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// WarehouseRepoFactory provides access to the master-data repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InspectionUoW manages transactions spanning orders and their
	// inspection records. Finalize and the order transition it implies are
	// applied through one of these, so either both commit or neither does.
	InspectionUoW interface {
		TxManager
		OrderRepoFactory
		InspectionRepoFactory
	}

	// InspectionUoWFactory creates new inspection unit of work instances.
	InspectionUoWFactory interface {
		Create() InspectionUoW
	}

	// StockUoW manages transactions for ledger-only operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// PutawayUoW manages transactions for the putaway commit, which spans
	// every aggregate: slot reservation, inspection progress, order items
	// and the stock ledger.
	PutawayUoW interface {
		TxManager
		OrderRepoFactory
		InspectionRepoFactory
		StockRepoFactory
		WarehouseRepoFactory
	}

	// PutawayUoWFactory creates new putaway unit of work instances.
	PutawayUoWFactory interface {
		Create() PutawayUoW
	}
)
