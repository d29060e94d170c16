package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// WorkOrderRepository returns a WorkOrderRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	WorkOrderRepository() WorkOrderRepository

	// CategoryEntryRepository returns a CategoryEntryRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	CategoryEntryRepository() CategoryEntryRepository

	// AssignmentRepository returns an AssignmentRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	AssignmentRepository() AssignmentRepository

	// POServiceRepository returns a POServiceRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	POServiceRepository() POServiceRepository
}
