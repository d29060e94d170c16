// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the job-shop system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - QuantityAllocator: guards the work-order quantity pool, recomputing
//     remaining quantity from the assignment ledger and rejecting reservations
//     that would exceed it
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
