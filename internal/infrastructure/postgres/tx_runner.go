package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/piotrmaz/nvpApp/internal/application/circulation"
	"github.com/piotrmaz/nvpApp/internal/application/consumable"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// Ensure TxRunner implements consumable.TxRunner and circulation.TxRunner.
var _ consumable.TxRunner = (*TxRunner)(nil)
var _ circulation.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// El ledger exige que bloqueo de fila, guardas, evento y saldo viajen juntos:
// o todo se confirma o nada queda.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del ledger de consumibles
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	consumables repository.ConsumableRepository,
	consumptions repository.ConsumptionRepository,
	deliveries repository.ConsumableDeliveryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	consumables := NewConsumableRepository(tx)
	consumptions := NewConsumptionRepository(tx)
	deliveries := NewConsumableDeliveryRepository(tx)

	if err := fn(consumables, consumptions, deliveries); err != nil {
		return translateError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

// RunPackage inicia una transacción con los repos del ledger de circulación
// de empaques retornables.
func (r *TxRunner) RunPackage(ctx context.Context, fn func(
	packages repository.PackageRepository,
	deliveries repository.PackageDeliveryRepository,
	sends repository.PackageSendRepository,
	receives repository.PackageReceiveRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	packages := NewPackageRepository(tx)
	deliveries := NewPackageDeliveryRepository(tx)
	sends := NewPackageSendRepository(tx)
	receives := NewPackageReceiveRepository(tx)

	if err := fn(packages, deliveries, sends, receives); err != nil {
		return translateError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return translateError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
