package entity

import "time"

// Condition resultado de inspección de un lote recibido.
// Lossless marca la condición "sin pérdida": las unidades vuelven al almacén.
// Cualquier condición con Lossless=false se trata como baja (write-off).
// Debe existir exactamente una condición con Lossless=true.
type Condition struct {
	ID        string
	Name      string
	Lossless  bool
	CreatedAt time.Time
}
