package repository

import "github.com/piotrmaz/nvpApp/internal/domain/entity"

// ConsumableDeliveryRepository puerto de persistencia para eventos de entrega
// de consumibles (append-only).
type ConsumableDeliveryRepository interface {
	Create(e *entity.ConsumableDeliveryEvent) error
	// ListByConsumable devuelve las entregas más recientes primero.
	ListByConsumable(consumableID string) ([]*entity.ConsumableDeliveryEvent, error)
	DeleteByConsumable(consumableID string) error
}
