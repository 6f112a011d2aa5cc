package entity

import "time"

// Consumable representa un consumible del almacén con su saldo actual (on_hand).
// El saldo solo se muta a través de eventos de consumo y entrega; nunca directamente.
type Consumable struct {
	ID          string
	Name        string
	Description string
	OnHand      int // invariante: >= 0
	MinStock    int // umbral de stock bajo
	UnitID      string
	SupplierID  string
	UserID      string // empleado responsable
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el consumible está por debajo de su umbral mínimo.
func (c *Consumable) IsLowStock() bool {
	return c.OnHand < c.MinStock
}
