package repository

import "github.com/piotrmaz/nvpApp/internal/domain/entity"

// Puertos de persistencia para los tres tipos de evento de circulación.
// Todos son append-only; el borrado solo existe como cascada al eliminar
// el empaque.

type PackageDeliveryRepository interface {
	Create(e *entity.PackageDeliveryEvent) error
	ListByPackage(packageID string) ([]*entity.PackageDeliveryEvent, error)
	DeleteByPackage(packageID string) error
}

type PackageSendRepository interface {
	Create(e *entity.PackageSendEvent) error
	ListByPackage(packageID string) ([]*entity.PackageSendEvent, error)
	DeleteByPackage(packageID string) error
}

type PackageReceiveRepository interface {
	Create(e *entity.PackageReceiveEvent) error
	ListByPackage(packageID string) ([]*entity.PackageReceiveEvent, error)
	DeleteByPackage(packageID string) error
}
