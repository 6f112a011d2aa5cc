package repository

import "github.com/piotrmaz/nvpApp/internal/domain/entity"

// ConsumptionRepository puerto de persistencia para eventos de consumo
// (append-only: sin update).
type ConsumptionRepository interface {
	Create(e *entity.ConsumptionEvent) error
	// ListByConsumable devuelve los consumos más recientes primero.
	ListByConsumable(consumableID string) ([]*entity.ConsumptionEvent, error)
	// DeleteByConsumable borra el historial al eliminar el consumible (cascada).
	DeleteByConsumable(consumableID string) error
}
