package circulation

import (
	"context"

	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del ledger de circulación atados a esa tx.
type TxRunner interface {
	RunPackage(ctx context.Context, fn func(
		packages repository.PackageRepository,
		deliveries repository.PackageDeliveryRepository,
		sends repository.PackageSendRepository,
		receives repository.PackageReceiveRepository,
	) error) error
}
