// Package circulation implementa la aritmética de circulación de empaques
// retornables como servicio de dominio puro: dos cubetas (Inside, Outside)
// cuya suma debe ser siempre igual al total Quantity.
package circulation

import "github.com/piotrmaz/nvpApp/internal/domain"

// Balance cubetas de un empaque en un instante dado.
type Balance struct {
	Quantity int // total bajo gestión
	Inside   int // en el almacén
	Outside  int // enviado / en tránsito
}

// Consistent verifica el invariante de conservación Inside + Outside == Quantity.
func (b Balance) Consistent() bool {
	return b.Inside+b.Outside == b.Quantity
}

// ApplyDelivery aplica una entrega de proveedor: unidades nuevas entran al
// almacén y crecen el total bajo gestión.
func ApplyDelivery(b Balance, qty int) (Balance, error) {
	if qty <= 0 {
		return b, domain.ErrInvalidQuantity
	}
	b.Inside += qty
	b.Quantity += qty
	return b, nil
}

// ApplySend mueve unidades del almacén hacia fuera. El total no cambia
// (conservación dentro del stock existente).
func ApplySend(b Balance, qty int) (Balance, error) {
	if qty <= 0 {
		return b, domain.ErrInvalidQuantity
	}
	if qty > b.Inside {
		return b, domain.ErrInsufficientStock
	}
	b.Inside -= qty
	b.Outside += qty
	return b, nil
}

// ApplyReceive aplica la devolución de un lote inspeccionado. Con una condición
// sin pérdida las unidades regresan al almacén; en caso contrario se dan de
// baja: salen de Outside y del total Quantity sin tocar Inside.
func ApplyReceive(b Balance, qty int, lossless bool) (Balance, error) {
	if qty <= 0 {
		return b, domain.ErrInvalidQuantity
	}
	if qty > b.Outside {
		return b, domain.ErrInsufficientStock
	}
	b.Outside -= qty
	if lossless {
		b.Inside += qty
	} else {
		b.Quantity -= qty
	}
	return b, nil
}
