// Package workorder provides domain entities and business logic for work-order
// management in the job-shop system. It implements the WorkOrder aggregate root
// covering the intake, approval, and urgency-escalation stages of the shop
// lifecycle.
//
// The package includes:
//   - WorkOrder: The aggregate root that manages order identity, item details,
//     approval, and urgency
//   - JobType / SubType: Tagged classification of an order, with a required-field
//     set per variant
//
// Key business rules:
//   - Each job type has its own required fields, enforced by per-variant
//     constructors (NewJobServiceOrder, NewTsoServiceOrder, NewKanbanOrder)
//   - Quantity is positive and fixed at creation
//   - Approval is one-way and idempotent
//   - Urgency is one-way and carries a due date that may not lie in the past
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package workorder
