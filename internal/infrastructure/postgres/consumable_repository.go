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

var _ repository.ConsumableRepository = (*ConsumableRepo)(nil)

const consumableColumns = `id, name, description, on_hand, min_stock, unit_id, supplier_id, user_id, created_at, updated_at`

// ConsumableRepo implementación de ConsumableRepository sobre PostgreSQL (usable con pool o tx).
type ConsumableRepo struct {
	q Querier
}

// NewConsumableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsumableRepository(q Querier) *ConsumableRepo {
	return &ConsumableRepo{q: q}
}

// Create persiste un consumible nuevo.
func (r *ConsumableRepo) Create(c *entity.Consumable) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO consumables (` + consumableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Description, c.OnHand, c.MinStock,
		c.UnitID, c.SupplierID, c.UserID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return translateError(fmt.Errorf("create consumable: %w", err))
	}
	return nil
}

// GetByID obtiene un consumible por ID. Devuelve nil, nil si no existe.
func (r *ConsumableRepo) GetByID(id string) (*entity.Consumable, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumables WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el consumible y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del ledger.
func (r *ConsumableRepo) GetForUpdate(id string) (*entity.Consumable, error) {
	query := `SELECT ` + consumableColumns + ` FROM consumables WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// UpdateOnHand fija el saldo resultante de una transición del ledger.
func (r *ConsumableRepo) UpdateOnHand(id string, onHand int, updatedAt time.Time) error {
	query := `UPDATE consumables SET on_hand = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, onHand, updatedAt)
	if err != nil {
		return fmt.Errorf("update on_hand: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update on_hand: consumible %s no encontrado", id)
	}
	return nil
}

// List devuelve consumibles paginados, los más recientes primero.
func (r *ConsumableRepo) List(limit, offset int) ([]*entity.Consumable, error) {
	query := `SELECT ` + consumableColumns + `
		FROM consumables ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list consumables: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListBelowMinStock devuelve los consumibles con on_hand < min_stock,
// ordenados por déficit descendente.
func (r *ConsumableRepo) ListBelowMinStock() ([]*entity.Consumable, error) {
	query := `SELECT ` + consumableColumns + `
		FROM consumables WHERE on_hand < min_stock
		ORDER BY (min_stock - on_hand) DESC, name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list below min_stock: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Delete elimina el consumible. El historial se borra aparte, en la misma tx.
func (r *ConsumableRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM consumables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consumable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete consumable: %s no encontrado", id)
	}
	return nil
}

func (r *ConsumableRepo) scanOne(row pgx.Row) (*entity.Consumable, error) {
	var c entity.Consumable
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.OnHand, &c.MinStock,
		&c.UnitID, &c.SupplierID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan consumable: %w", err)
	}
	return &c, nil
}

func (r *ConsumableRepo) scanMany(rows pgx.Rows) ([]*entity.Consumable, error) {
	var list []*entity.Consumable
	for rows.Next() {
		var c entity.Consumable
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.OnHand, &c.MinStock,
			&c.UnitID, &c.SupplierID, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan consumable: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
