package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

var _ repository.ConsumptionRepository = (*ConsumptionRepo)(nil)

// ConsumptionRepo persistencia de eventos de consumo (append-only).
type ConsumptionRepo struct {
	q Querier
}

// NewConsumptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsumptionRepository(q Querier) *ConsumptionRepo {
	return &ConsumptionRepo{q: q}
}

// Create persiste un evento de consumo.
func (r *ConsumptionRepo) Create(e *entity.ConsumptionEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO consumption_events (id, consumable_id, user_id, quantity, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ConsumableID, e.UserID, e.Quantity, e.Date)
	if err != nil {
		return translateError(fmt.Errorf("create consumption event: %w", err))
	}
	return nil
}

// ListByConsumable devuelve los consumos más recientes primero.
func (r *ConsumptionRepo) ListByConsumable(consumableID string) ([]*entity.ConsumptionEvent, error) {
	query := `
		SELECT id, consumable_id, user_id, quantity, date
		FROM consumption_events WHERE consumable_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, consumableID)
	if err != nil {
		return nil, fmt.Errorf("list consumption events: %w", err)
	}
	defer rows.Close()
	var list []*entity.ConsumptionEvent
	for rows.Next() {
		var e entity.ConsumptionEvent
		if err := rows.Scan(&e.ID, &e.ConsumableID, &e.UserID, &e.Quantity, &e.Date); err != nil {
			return nil, fmt.Errorf("scan consumption event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// DeleteByConsumable borra el historial de consumo (cascada al eliminar el consumible).
func (r *ConsumptionRepo) DeleteByConsumable(consumableID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM consumption_events WHERE consumable_id = $1`, consumableID)
	if err != nil {
		return fmt.Errorf("delete consumption events: %w", err)
	}
	return nil
}
