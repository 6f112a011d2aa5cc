package repository

import (
	"time"

	"github.com/piotrmaz/nvpApp/internal/domain/entity"
)

// PackageRepository puerto de persistencia para empaques retornables.
// Las cubetas (Quantity, Inside, Outside) solo se actualizan dentro de
// transacciones del ledger de circulación.
type PackageRepository interface {
	Create(p *entity.Package) error
	GetByID(id string) (*entity.Package, error)
	// GetForUpdate bloquea la fila del empaque (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Package, error)
	UpdateBalance(id string, quantity, inside, outside int, updatedAt time.Time) error
	List(limit, offset int) ([]*entity.Package, error)
	Delete(id string) error
}
