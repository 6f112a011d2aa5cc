package reconciliation

import (
	"context"
	"time"
)

// LowStockCacheKey clave del caché de lectura para el listado de stock bajo.
// Los ledgers de escritura la invalidan tras cada transición confirmada.
const LowStockCacheKey = "consumables:low_stock"

// ReadCache caché de lectura opcional para consultas derivadas.
// Get devuelve (nil, nil) en caso de miss.
type ReadCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
