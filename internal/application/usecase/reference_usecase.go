package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/domain"
	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// Casos de uso de las tablas de referencia (proveedores, unidades, tipos de
// empaque y condiciones). Solo alta y consulta: el ledger las referencia por
// ID y la edición/borrado queda fuera del alcance.

// SupplierUseCase alta y consulta de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	s := &entity.Supplier{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}, nil
}

func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SupplierResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt}, nil
}

func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt})
	}
	return out, nil
}

// UnitUseCase alta y consulta de unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

func (uc *UnitUseCase) Create(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	u := &entity.Unit{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return &dto.UnitResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}, nil
}

func (uc *UnitUseCase) GetByID(id string) (*dto.UnitResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.UnitResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}, nil
}

func (uc *UnitUseCase) List() ([]dto.UnitResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.UnitResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt})
	}
	return out, nil
}

// ParcelUseCase alta y consulta de tipos de empaque.
type ParcelUseCase struct {
	repo repository.ParcelRepository
}

func NewParcelUseCase(repo repository.ParcelRepository) *ParcelUseCase {
	return &ParcelUseCase{repo: repo}
}

func (uc *ParcelUseCase) Create(in dto.CreateParcelRequest) (*dto.ParcelResponse, error) {
	p := &entity.Parcel{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Weight:    in.Weight,
		Dimension: in.Dimension,
		Type:      in.Type,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toParcelResponse(p), nil
}

func (uc *ParcelUseCase) GetByID(id string) (*dto.ParcelResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toParcelResponse(p), nil
}

func (uc *ParcelUseCase) List() ([]dto.ParcelResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ParcelResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toParcelResponse(p))
	}
	return out, nil
}

func toParcelResponse(p *entity.Parcel) *dto.ParcelResponse {
	return &dto.ParcelResponse{
		ID:        p.ID,
		Name:      p.Name,
		Weight:    p.Weight,
		Dimension: p.Dimension,
		Type:      p.Type,
		CreatedAt: p.CreatedAt,
	}
}

// ConditionUseCase alta y consulta de condiciones de inspección.
type ConditionUseCase struct {
	repo repository.ConditionRepository
}

func NewConditionUseCase(repo repository.ConditionRepository) *ConditionUseCase {
	return &ConditionUseCase{repo: repo}
}

// Create registra una condición. Solo puede existir una condición sin
// pérdida; un alta que introduzca una segunda se rechaza.
func (uc *ConditionUseCase) Create(in dto.CreateConditionRequest) (*dto.ConditionResponse, error) {
	if in.Lossless {
		existing, err := uc.repo.ListLossless()
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			return nil, domain.ErrConfiguration
		}
	}
	c := &entity.Condition{ID: uuid.New().String(), Name: in.Name, Lossless: in.Lossless, CreatedAt: time.Now()}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toConditionResponse(c), nil
}

func (uc *ConditionUseCase) GetByID(id string) (*dto.ConditionResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toConditionResponse(c), nil
}

func (uc *ConditionUseCase) List() ([]dto.ConditionResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConditionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toConditionResponse(c))
	}
	return out, nil
}

func toConditionResponse(c *entity.Condition) *dto.ConditionResponse {
	return &dto.ConditionResponse{ID: c.ID, Name: c.Name, Lossless: c.Lossless, CreatedAt: c.CreatedAt}
}
