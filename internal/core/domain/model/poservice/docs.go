// Package poservice provides the POService aggregate: independent
// purchase-order fulfillment records kept alongside the shop's work orders.
// They reference job numbers but carry no cross-aggregate invariant.
package poservice
