// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"jobshop/internal/core/ports"
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

	// WorkOrderRepoFactory provides access to the work-order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// CategoryEntryRepoFactory provides access to the category-entry repository within a transaction.
	CategoryEntryRepoFactory interface {
		CategoryEntryRepository() ports.CategoryEntryRepository
	}

	// AssignmentRepoFactory provides access to the assignment ledger within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// POServiceRepoFactory provides access to the PO service repository within a transaction.
	POServiceRepoFactory interface {
		POServiceRepository() ports.POServiceRepository
	}

	// WorkOrderUoW manages transactions for work-order-only operations.
	// Used when commands only modify work-order aggregates.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
	}

	// WorkOrderUoWFactory creates new work-order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// CategoryEntryUoW manages transactions for category-entry-only operations.
	CategoryEntryUoW interface {
		TxManager
		CategoryEntryRepoFactory
	}

	// CategoryEntryUoWFactory creates new category-entry unit of work instances.
	CategoryEntryUoWFactory interface {
		Create() CategoryEntryUoW
	}

	// AssignmentUoW manages transactions over the assignment ledger together
	// with the work orders it draws from. Reservation holds a row lock on
	// the work order, so both repositories must share one transaction.
	AssignmentUoW interface {
		TxManager
		WorkOrderRepoFactory
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// POServiceUoW manages transactions for PO service records.
	POServiceUoW interface {
		TxManager
		POServiceRepoFactory
	}

	// POServiceUoWFactory creates new PO service unit of work instances.
	POServiceUoWFactory interface {
		Create() POServiceUoW
	}

	// UrgencyUoW manages transactions spanning work orders and category
	// entries. Urgency escalation updates both under one transaction so the
	// two aggregates cannot diverge.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   woRepo := uow.WorkOrderRepository()
	//   ceRepo := uow.CategoryEntryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UrgencyUoW interface {
		TxManager
		WorkOrderRepoFactory
		CategoryEntryRepoFactory
	}

	// UrgencyUoWFactory creates new unit of work instances for urgency escalation.
	UrgencyUoWFactory interface {
		Create() UrgencyUoW
	}
)
