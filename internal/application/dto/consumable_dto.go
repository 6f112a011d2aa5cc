package dto

import "time"

// CreateConsumableRequest body para POST /api/consumables.
type CreateConsumableRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=60"`
	Description string `json:"description" validate:"max=200"`
	UnitID      string `json:"unit_id" validate:"required,uuid"`
	SupplierID  string `json:"supplier_id" validate:"required,uuid"`
	OnHand      int    `json:"on_hand" validate:"gte=0"`
	MinStock    int    `json:"min_stock" validate:"gte=0"`
}

// RecordConsumptionRequest body para POST /api/consumables/:id/consumption.
type RecordConsumptionRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// RecordConsumableDeliveryRequest body para POST /api/consumables/:id/delivery.
type RecordConsumableDeliveryRequest struct {
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	SupplierID string `json:"supplier_id" validate:"required,uuid"`
}

// ConsumableResponse representación de un consumible.
type ConsumableResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OnHand      int       `json:"on_hand"`
	MinStock    int       `json:"min_stock"`
	UnitID      string    `json:"unit_id"`
	SupplierID  string    `json:"supplier_id"`
	UserID      string    `json:"user_id"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ConsumableListResponse listado paginado.
type ConsumableListResponse struct {
	Items []ConsumableResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ConsumableEventResponse evento creado por el ledger de consumibles.
type ConsumableEventResponse struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"` // "consumption" | "delivery"
	ConsumableID string    `json:"consumable_id"`
	UserID       string    `json:"user_id"`
	SupplierID   string    `json:"supplier_id,omitempty"`
	Quantity     int       `json:"quantity"`
	Date         time.Time `json:"date"`
	OnHand       int       `json:"on_hand"` // saldo resultante
}
