package circulation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/domain"
	domcirc "github.com/piotrmaz/nvpApp/internal/domain/circulation"
	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// LedgerUseCase aplica las transiciones Delivery/Send/Receive sobre las
// cubetas de un empaque retornable. La aritmética vive en
// domain/circulation; aquí se resuelven referencias, se bloquea la fila del
// empaque y se confirman evento + cubetas como una sola transacción.
type LedgerUseCase struct {
	txRunner      TxRunner
	supplierRepo  repository.SupplierRepository
	conditionRepo repository.ConditionRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository, conditionRepo repository.ConditionRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, supplierRepo: supplierRepo, conditionRepo: conditionRepo}
}

// RecordDelivery registra la llegada de unidades nuevas: inside y quantity
// crecen por la cantidad entregada.
func (uc *LedgerUseCase) RecordDelivery(ctx context.Context, userID, packageID string, in dto.PackageDeliveryRequest) (*dto.PackageEventResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	supplier, err := uc.resolveSupplier(in.SupplierID)
	if err != nil {
		return nil, err
	}

	var out dto.PackageEventResponse
	err = uc.txRunner.RunPackage(ctx, func(
		packages repository.PackageRepository,
		deliveries repository.PackageDeliveryRepository,
		_ repository.PackageSendRepository,
		_ repository.PackageReceiveRepository,
	) error {
		pkg, bal, err := lockPackage(packages, packageID)
		if err != nil {
			return err
		}
		newBal, err := domcirc.ApplyDelivery(bal, in.Quantity)
		if err != nil {
			return err
		}

		now := time.Now()
		event := &entity.PackageDeliveryEvent{
			ID:          uuid.New().String(),
			PackageID:   pkg.ID,
			UserID:      userID,
			SupplierID:  supplier.ID,
			Quantity:    in.Quantity,
			Description: in.Description,
			Date:        now,
		}
		if err := deliveries.Create(event); err != nil {
			return err
		}
		if err := packages.UpdateBalance(pkg.ID, newBal.Quantity, newBal.Inside, newBal.Outside, now); err != nil {
			return err
		}

		out = eventResponse("delivery", event.ID, pkg.ID, userID, supplier.ID, "", in.Quantity, in.Description, now, newBal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordSend registra un envío: inside -> outside, total sin cambio.
func (uc *LedgerUseCase) RecordSend(ctx context.Context, userID, packageID string, in dto.PackageSendRequest) (*dto.PackageEventResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	supplier, err := uc.resolveSupplier(in.SupplierID)
	if err != nil {
		return nil, err
	}

	var out dto.PackageEventResponse
	err = uc.txRunner.RunPackage(ctx, func(
		packages repository.PackageRepository,
		_ repository.PackageDeliveryRepository,
		sends repository.PackageSendRepository,
		_ repository.PackageReceiveRepository,
	) error {
		pkg, bal, err := lockPackage(packages, packageID)
		if err != nil {
			return err
		}
		newBal, err := domcirc.ApplySend(bal, in.Quantity)
		if err != nil {
			return err
		}

		now := time.Now()
		event := &entity.PackageSendEvent{
			ID:          uuid.New().String(),
			PackageID:   pkg.ID,
			UserID:      userID,
			SupplierID:  supplier.ID,
			Quantity:    in.Quantity,
			Description: in.Description,
			Date:        now,
		}
		if err := sends.Create(event); err != nil {
			return err
		}
		if err := packages.UpdateBalance(pkg.ID, newBal.Quantity, newBal.Inside, newBal.Outside, now); err != nil {
			return err
		}

		out = eventResponse("send", event.ID, pkg.ID, userID, supplier.ID, "", in.Quantity, in.Description, now, newBal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordReceive registra la devolución de un lote inspeccionado contra una
// condición. La condición referenciada decide la rama (retorno limpio o
// baja); además debe existir exactamente una condición sin pérdida
// configurada, de lo contrario la operación falla con ErrConfiguration.
func (uc *LedgerUseCase) RecordReceive(ctx context.Context, userID, packageID string, in dto.PackageReceiveRequest) (*dto.PackageEventResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	supplier, err := uc.resolveSupplier(in.SupplierID)
	if err != nil {
		return nil, err
	}
	condition, err := uc.conditionRepo.GetByID(in.ConditionID)
	if err != nil {
		return nil, err
	}
	if condition == nil {
		return nil, domain.ErrNotFound
	}
	lossless, err := uc.conditionRepo.ListLossless()
	if err != nil {
		return nil, err
	}
	if len(lossless) != 1 {
		return nil, domain.ErrConfiguration
	}

	var out dto.PackageEventResponse
	err = uc.txRunner.RunPackage(ctx, func(
		packages repository.PackageRepository,
		_ repository.PackageDeliveryRepository,
		_ repository.PackageSendRepository,
		receives repository.PackageReceiveRepository,
	) error {
		pkg, bal, err := lockPackage(packages, packageID)
		if err != nil {
			return err
		}
		newBal, err := domcirc.ApplyReceive(bal, in.Quantity, condition.Lossless)
		if err != nil {
			return err
		}

		now := time.Now()
		event := &entity.PackageReceiveEvent{
			ID:          uuid.New().String(),
			PackageID:   pkg.ID,
			UserID:      userID,
			SupplierID:  supplier.ID,
			ConditionID: condition.ID,
			Quantity:    in.Quantity,
			Description: in.Description,
			Date:        now,
		}
		if err := receives.Create(event); err != nil {
			return err
		}
		if err := packages.UpdateBalance(pkg.ID, newBal.Quantity, newBal.Inside, newBal.Outside, now); err != nil {
			return err
		}

		out = eventResponse("receive", event.ID, pkg.ID, userID, supplier.ID, condition.ID, in.Quantity, in.Description, now, newBal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *LedgerUseCase) resolveSupplier(id string) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

// lockPackage bloquea la fila del empaque y devuelve sus cubetas actuales.
func lockPackage(packages repository.PackageRepository, id string) (*entity.Package, domcirc.Balance, error) {
	pkg, err := packages.GetForUpdate(id)
	if err != nil {
		return nil, domcirc.Balance{}, err
	}
	if pkg == nil {
		return nil, domcirc.Balance{}, domain.ErrNotFound
	}
	return pkg, domcirc.Balance{Quantity: pkg.Quantity, Inside: pkg.Inside, Outside: pkg.Outside}, nil
}

func eventResponse(kind, id, packageID, userID, supplierID, conditionID string, qty int, description string, date time.Time, bal domcirc.Balance) dto.PackageEventResponse {
	return dto.PackageEventResponse{
		ID:          id,
		Kind:        kind,
		PackageID:   packageID,
		UserID:      userID,
		SupplierID:  supplierID,
		ConditionID: conditionID,
		Quantity:    qty,
		Description: description,
		Date:        date,
		Balance:     dto.PackageBalance{Quantity: bal.Quantity, Inside: bal.Inside, Outside: bal.Outside},
	}
}
