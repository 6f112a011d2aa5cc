package entity

import "time"

// Supplier representa un proveedor o socio externo.
type Supplier struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
