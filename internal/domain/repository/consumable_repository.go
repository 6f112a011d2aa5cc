package repository

import (
	"time"

	"github.com/piotrmaz/nvpApp/internal/domain/entity"
)

// ConsumableRepository define el puerto de persistencia para consumibles.
// El saldo OnHand solo se actualiza dentro de transacciones del ledger.
type ConsumableRepository interface {
	Create(c *entity.Consumable) error
	GetByID(id string) (*entity.Consumable, error)
	// GetForUpdate bloquea la fila del consumible (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Consumable, error)
	UpdateOnHand(id string, onHand int, updatedAt time.Time) error
	List(limit, offset int) ([]*entity.Consumable, error)
	// ListBelowMinStock devuelve los consumibles con OnHand < MinStock,
	// ordenados por déficit descendente.
	ListBelowMinStock() ([]*entity.Consumable, error)
	Delete(id string) error
}
