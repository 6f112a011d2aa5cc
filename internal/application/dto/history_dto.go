package dto

import "time"

// HistoryEntry entrada del historial de eventos de un consumible o empaque,
// normalizada sobre los distintos tipos de evento.
type HistoryEntry struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"` // "consumption" | "delivery" | "send" | "receive"
	Quantity    int       `json:"quantity"`
	UserID      string    `json:"user_id"`
	SupplierID  string    `json:"supplier_id,omitempty"`
	ConditionID string    `json:"condition_id,omitempty"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

// HistoryResponse historial ordenado, más reciente primero.
type HistoryResponse struct {
	Total   int            `json:"total"`
	Entries []HistoryEntry `json:"entries"`
}

// LowStockItem consumible por debajo de su umbral mínimo.
type LowStockItem struct {
	ConsumableID string `json:"consumable_id"`
	Name         string `json:"name"`
	OnHand       int    `json:"on_hand"`
	MinStock     int    `json:"min_stock"`
	Deficit      int    `json:"deficit"`
}

// LowStockResponse listado de consumibles en stock bajo.
type LowStockResponse struct {
	Total int            `json:"total"`
	Items []LowStockItem `json:"items"`
}
