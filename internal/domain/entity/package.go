package entity

import "time"

// Package representa un empaque retornable con su contabilidad de dos cubetas:
// Inside (en sitio) y Outside (enviado / en tránsito). Invariante tras cada
// transición confirmada: Inside + Outside == Quantity.
type Package struct {
	ID          string
	ParcelID    string
	Quantity    int // total bajo gestión
	Inside      int // unidades en el almacén
	Outside     int // unidades con proveedores / en tránsito
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
