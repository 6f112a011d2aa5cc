package repository

import "github.com/piotrmaz/nvpApp/internal/domain/entity"

// Puertos para las tablas de referencia que consume el ledger.

type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}

type UnitRepository interface {
	Create(u *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	List() ([]*entity.Unit, error)
}

type ParcelRepository interface {
	Create(p *entity.Parcel) error
	GetByID(id string) (*entity.Parcel, error)
	List() ([]*entity.Parcel, error)
}

type ConditionRepository interface {
	Create(c *entity.Condition) error
	GetByID(id string) (*entity.Condition, error)
	List() ([]*entity.Condition, error)
	// ListLossless devuelve las condiciones marcadas como "sin pérdida".
	// El ledger de circulación exige exactamente una.
	ListLossless() ([]*entity.Condition, error)
}
