package entity

import "time"

// Unit unidad de medida de un consumible (ej. "pcs", "kg", "l").
type Unit struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
