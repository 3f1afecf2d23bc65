// Package order provides the sales order aggregate.
//
// An Order owns its lines. Product lines are added while the order is
// editable; the delivery line is created from a carrier and replaces any
// previous one. Orders shipped through the EasyPost integration also keep a
// Shipment: the rate id, shipment id and carrier name the rating returned.
//
// Status workflow:
//
//	Draft ──> Sale ──> Done
//	  │         │
//	  └─────────┴──> Cancelled
//
// Changes to the shipment carrier name are audited: the aggregate records a
// ShipmentCarrierChanged event that the persistence layer stores in the
// outbox together with the order.
package order
