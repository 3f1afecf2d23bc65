// Package services holds domain logic spanning the order and carrier
// aggregates. ShipmentAnnotator creates delivery lines and, for EasyPost
// carriers, copies the rating metadata onto the order.
package services
