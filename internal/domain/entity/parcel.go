package entity

import "time"

// Parcel tipo de empaque retornable (paleta, caja, contenedor...).
type Parcel struct {
	ID        string
	Name      string
	Weight    int // kg
	Dimension string
	Type      string
	CreatedAt time.Time
}
