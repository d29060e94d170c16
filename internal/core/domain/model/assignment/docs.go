// Package assignment provides the Assignment aggregate: the append-only
// ledger of work handed from work orders to machines and workers, and the
// quality-check state machine each ledger entry moves through.
//
// The package includes:
//   - Assignment: one ledger entry binding a work-order serial, a machine and
//     worker selection, a unit count, and a date
//   - Status: the quality-check state machine
//     (Pending -> ReadyForQC -> Accepted | Rejected)
//
// Key business rules:
//   - Ledger entries are never updated or deleted; only their status moves
//   - Accepted is terminal and accepting twice is a no-op
//   - Rejected units return to the allocatable pool and re-enter the workflow
//     as new assignments
//   - A machine code may only accompany a selection that carries a size
package assignment
