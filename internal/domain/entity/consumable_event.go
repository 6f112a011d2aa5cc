package entity

import "time"

// ConsumptionEvent registra un consumo de consumible (append-only, inmutable).
// Es la única justificación de un decremento de OnHand.
type ConsumptionEvent struct {
	ID           string
	ConsumableID string
	UserID       string
	Quantity     int // positivo
	Date         time.Time
}

// ConsumableDeliveryEvent registra una entrega de proveedor (append-only, inmutable).
// Es la única justificación de un incremento de OnHand.
type ConsumableDeliveryEvent struct {
	ID           string
	ConsumableID string
	UserID       string
	SupplierID   string
	Quantity     int // positivo
	Date         time.Time
}
