// Package kernel holds the value objects shared by the order and carrier
// aggregates: UUID identifiers and price validation.
package kernel
