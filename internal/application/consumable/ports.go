package consumable

import (
	"context"

	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el evento y la actualización
// del saldo se confirmen (o reviertan) como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		consumables repository.ConsumableRepository,
		consumptions repository.ConsumptionRepository,
		deliveries repository.ConsumableDeliveryRepository,
	) error) error
}

// CacheInvalidator invalida entradas del caché de lectura tras una transición
// confirmada. Puede ser nil (caché deshabilitado).
type CacheInvalidator interface {
	Del(ctx context.Context, keys ...string) error
}
