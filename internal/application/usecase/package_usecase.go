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

// PackageTxRunner transacción para el borrado en cascada del historial de
// circulación. Misma firma que circulation.TxRunner.
type PackageTxRunner interface {
	RunPackage(ctx context.Context, fn func(
		packages repository.PackageRepository,
		deliveries repository.PackageDeliveryRepository,
		sends repository.PackageSendRepository,
		receives repository.PackageReceiveRepository,
	) error) error
}

// PackageUseCase CRUD de empaques retornables. La creación no es una
// transición del ledger: el empaque nace con las tres cubetas en cero.
type PackageUseCase struct {
	repo       repository.PackageRepository
	parcelRepo repository.ParcelRepository
	txRunner   PackageTxRunner
}

// NewPackageUseCase construye el caso de uso.
func NewPackageUseCase(repo repository.PackageRepository, parcelRepo repository.ParcelRepository, txRunner PackageTxRunner) *PackageUseCase {
	return &PackageUseCase{repo: repo, parcelRepo: parcelRepo, txRunner: txRunner}
}

// Create registra un empaque nuevo con quantity = inside = outside = 0.
func (uc *PackageUseCase) Create(in dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	parcel, err := uc.parcelRepo.GetByID(in.ParcelID)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	pkg := &entity.Package{
		ID:          uuid.New().String(),
		ParcelID:    in.ParcelID,
		Quantity:    0,
		Inside:      0,
		Outside:     0,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(pkg); err != nil {
		return nil, err
	}
	return toPackageResponse(pkg), nil
}

// GetByID obtiene un empaque por ID.
func (uc *PackageUseCase) GetByID(id string) (*dto.PackageResponse, error) {
	pkg, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	return toPackageResponse(pkg), nil
}

// List lista empaques con paginación.
func (uc *PackageUseCase) List(limit, offset int) (*dto.PackageListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PackageResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPackageResponse(p))
	}
	return &dto.PackageListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un empaque junto con su historial de eventos (cascada).
func (uc *PackageUseCase) Delete(ctx context.Context, id string) error {
	pkg, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunPackage(ctx, func(
		packages repository.PackageRepository,
		deliveries repository.PackageDeliveryRepository,
		sends repository.PackageSendRepository,
		receives repository.PackageReceiveRepository,
	) error {
		if err := deliveries.DeleteByPackage(id); err != nil {
			return err
		}
		if err := sends.DeleteByPackage(id); err != nil {
			return err
		}
		if err := receives.DeleteByPackage(id); err != nil {
			return err
		}
		return packages.Delete(id)
	})
}

func toPackageResponse(p *entity.Package) *dto.PackageResponse {
	return &dto.PackageResponse{
		ID:          p.ID,
		ParcelID:    p.ParcelID,
		Quantity:    p.Quantity,
		Inside:      p.Inside,
		Outside:     p.Outside,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
