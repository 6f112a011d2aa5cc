package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

const packageColumns = `id, parcel_id, quantity, inside, outside, description, created_at, updated_at`

// PackageRepo implementación de PackageRepository sobre PostgreSQL (usable con pool o tx).
type PackageRepo struct {
	q Querier
}

// NewPackageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPackageRepository(q Querier) *PackageRepo {
	return &PackageRepo{q: q}
}

// Create persiste un empaque nuevo con las tres cubetas en cero.
func (r *PackageRepo) Create(p *entity.Package) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO packages (` + packageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ParcelID, p.Quantity, p.Inside, p.Outside,
		p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return translateError(fmt.Errorf("create package: %w", err))
	}
	return nil
}

// GetByID obtiene un empaque por ID. Devuelve nil, nil si no existe.
func (r *PackageRepo) GetByID(id string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el empaque y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del ledger.
func (r *PackageRepo) GetForUpdate(id string) (*entity.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// UpdateBalance fija las tres cubetas resultantes de una transición del ledger.
func (r *PackageRepo) UpdateBalance(id string, quantity, inside, outside int, updatedAt time.Time) error {
	query := `UPDATE packages SET quantity = $2, inside = $3, outside = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, quantity, inside, outside, updatedAt)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update balance: empaque %s no encontrado", id)
	}
	return nil
}

// List devuelve empaques paginados, los más recientes primero.
func (r *PackageRepo) List(limit, offset int) ([]*entity.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Package
	for rows.Next() {
		var p entity.Package
		if err := rows.Scan(&p.ID, &p.ParcelID, &p.Quantity, &p.Inside, &p.Outside,
			&p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina el empaque. El historial se borra aparte, en la misma tx.
func (r *PackageRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete package: %s no encontrado", id)
	}
	return nil
}

func (r *PackageRepo) scanOne(row pgx.Row) (*entity.Package, error) {
	var p entity.Package
	err := row.Scan(&p.ID, &p.ParcelID, &p.Quantity, &p.Inside, &p.Outside,
		&p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan package: %w", err)
	}
	return &p, nil
}
