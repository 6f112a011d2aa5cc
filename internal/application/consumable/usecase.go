package consumable

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/application/reconciliation"
	"github.com/piotrmaz/nvpApp/internal/domain"
	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// LedgerUseCase aplica eventos de consumo y entrega sobre el saldo de un
// consumible. Cada transición es transaccional: bloqueo de fila
// (SELECT FOR UPDATE), inserción del evento y actualización del saldo se
// confirman juntas o no se confirman.
type LedgerUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	cache        CacheInvalidator // opcional
}

// NewLedgerUseCase construye el caso de uso. cache puede ser nil.
func NewLedgerUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository, cache CacheInvalidator) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, supplierRepo: supplierRepo, cache: cache}
}

// RecordConsumption registra un consumo: on_hand -= quantity.
// La cantidad debe ser positiva y no exceder el saldo disponible.
// La fecha del evento la asigna el ledger al momento de la transición.
func (uc *LedgerUseCase) RecordConsumption(ctx context.Context, userID, consumableID string, in dto.RecordConsumptionRequest) (*dto.ConsumableEventResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var out dto.ConsumableEventResponse
	err := uc.txRunner.Run(ctx, func(
		consumables repository.ConsumableRepository,
		consumptions repository.ConsumptionRepository,
		_ repository.ConsumableDeliveryRepository,
	) error {
		// Bloquea la fila del consumible para serializar transiciones concurrentes
		cons, err := consumables.GetForUpdate(consumableID)
		if err != nil {
			return err
		}
		if cons == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > cons.OnHand {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		event := &entity.ConsumptionEvent{
			ID:           uuid.New().String(),
			ConsumableID: cons.ID,
			UserID:       userID,
			Quantity:     in.Quantity,
			Date:         now,
		}
		if err := consumptions.Create(event); err != nil {
			return err
		}
		newOnHand := cons.OnHand - in.Quantity
		if err := consumables.UpdateOnHand(cons.ID, newOnHand, now); err != nil {
			return err
		}

		out = dto.ConsumableEventResponse{
			ID:           event.ID,
			Kind:         "consumption",
			ConsumableID: event.ConsumableID,
			UserID:       event.UserID,
			Quantity:     event.Quantity,
			Date:         event.Date,
			OnHand:       newOnHand,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateLowStock(ctx)
	return &out, nil
}

// RecordDelivery registra una entrega de proveedor: on_hand += quantity.
func (uc *LedgerUseCase) RecordDelivery(ctx context.Context, userID, consumableID string, in dto.RecordConsumableDeliveryRequest) (*dto.ConsumableEventResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	var out dto.ConsumableEventResponse
	err = uc.txRunner.Run(ctx, func(
		consumables repository.ConsumableRepository,
		_ repository.ConsumptionRepository,
		deliveries repository.ConsumableDeliveryRepository,
	) error {
		cons, err := consumables.GetForUpdate(consumableID)
		if err != nil {
			return err
		}
		if cons == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		event := &entity.ConsumableDeliveryEvent{
			ID:           uuid.New().String(),
			ConsumableID: cons.ID,
			UserID:       userID,
			SupplierID:   supplier.ID,
			Quantity:     in.Quantity,
			Date:         now,
		}
		if err := deliveries.Create(event); err != nil {
			return err
		}
		newOnHand := cons.OnHand + in.Quantity
		if err := consumables.UpdateOnHand(cons.ID, newOnHand, now); err != nil {
			return err
		}

		out = dto.ConsumableEventResponse{
			ID:           event.ID,
			Kind:         "delivery",
			ConsumableID: event.ConsumableID,
			UserID:       event.UserID,
			SupplierID:   event.SupplierID,
			Quantity:     event.Quantity,
			Date:         event.Date,
			OnHand:       newOnHand,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateLowStock(ctx)
	return &out, nil
}

func (uc *LedgerUseCase) invalidateLowStock(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	// La invalidación es best-effort: la fuente de verdad es PostgreSQL.
	_ = uc.cache.Del(ctx, reconciliation.LowStockCacheKey)
}
