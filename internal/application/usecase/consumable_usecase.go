package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/domain"
	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// ConsumableTxRunner transacción para el borrado en cascada del historial.
// Misma firma que consumable.TxRunner; la satisface postgres.TxRunner.
type ConsumableTxRunner interface {
	Run(ctx context.Context, fn func(
		consumables repository.ConsumableRepository,
		consumptions repository.ConsumptionRepository,
		deliveries repository.ConsumableDeliveryRepository,
	) error) error
}

// ConsumableUseCase CRUD de consumibles. La mutación de saldos no pasa por
// aquí: eso es exclusivo del ledger (application/consumable).
type ConsumableUseCase struct {
	repo         repository.ConsumableRepository
	unitRepo     repository.UnitRepository
	supplierRepo repository.SupplierRepository
	txRunner     ConsumableTxRunner
}

// NewConsumableUseCase construye el caso de uso.
func NewConsumableUseCase(
	repo repository.ConsumableRepository,
	unitRepo repository.UnitRepository,
	supplierRepo repository.SupplierRepository,
	txRunner ConsumableTxRunner,
) *ConsumableUseCase {
	return &ConsumableUseCase{repo: repo, unitRepo: unitRepo, supplierRepo: supplierRepo, txRunner: txRunner}
}

// Create registra un consumible nuevo. La unidad y el proveedor deben existir.
func (uc *ConsumableUseCase) Create(userID string, in dto.CreateConsumableRequest) (*dto.ConsumableResponse, error) {
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if unit == nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.OnHand < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	cons := &entity.Consumable{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		OnHand:      in.OnHand,
		MinStock:    in.MinStock,
		UnitID:      in.UnitID,
		SupplierID:  in.SupplierID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(cons); err != nil {
		return nil, err
	}
	return toConsumableResponse(cons), nil
}

// GetByID obtiene un consumible por ID.
func (uc *ConsumableUseCase) GetByID(id string) (*dto.ConsumableResponse, error) {
	cons, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cons == nil {
		return nil, domain.ErrNotFound
	}
	return toConsumableResponse(cons), nil
}

// List lista consumibles con paginación.
func (uc *ConsumableUseCase) List(limit, offset int) (*dto.ConsumableListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConsumableResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConsumableResponse(c))
	}
	return &dto.ConsumableListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un consumible junto con su historial de eventos, en una
// sola transacción (cascada).
func (uc *ConsumableUseCase) Delete(ctx context.Context, id string) error {
	cons, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cons == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		consumables repository.ConsumableRepository,
		consumptions repository.ConsumptionRepository,
		deliveries repository.ConsumableDeliveryRepository,
	) error {
		if err := consumptions.DeleteByConsumable(id); err != nil {
			return err
		}
		if err := deliveries.DeleteByConsumable(id); err != nil {
			return err
		}
		return consumables.Delete(id)
	})
}

func toConsumableResponse(c *entity.Consumable) *dto.ConsumableResponse {
	return &dto.ConsumableResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		OnHand:      c.OnHand,
		MinStock:    c.MinStock,
		UnitID:      c.UnitID,
		SupplierID:  c.SupplierID,
		UserID:      c.UserID,
		LowStock:    c.IsLowStock(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
