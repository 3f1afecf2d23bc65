// Package carrier models delivery methods. A Carrier is what an order ships
// with; its DeliveryType decides which integration governs it. Only the
// EasypostOCA variant carries shipment metadata onto orders.
package carrier
