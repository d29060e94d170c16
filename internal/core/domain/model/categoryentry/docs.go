// Package categoryentry provides the CategoryEntry aggregate: a
// specification/drawing record that accompanies work orders sharing its job
// number. Entries pass through an approval gate before downstream use and
// participate in urgency escalation together with their work orders.
//
// Key business rules:
//   - Job number and quantity are positive; description, material type, and
//     client name are required
//   - Approval is one-way and idempotent
//   - Urgency is one-way and carries a due date that may not lie in the past
//   - Edits replace specification fields only and never re-open approval
package categoryentry
