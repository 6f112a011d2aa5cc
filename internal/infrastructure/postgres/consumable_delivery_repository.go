package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

var _ repository.ConsumableDeliveryRepository = (*ConsumableDeliveryRepo)(nil)

// ConsumableDeliveryRepo persistencia de entregas de consumibles (append-only).
type ConsumableDeliveryRepo struct {
	q Querier
}

// NewConsumableDeliveryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConsumableDeliveryRepository(q Querier) *ConsumableDeliveryRepo {
	return &ConsumableDeliveryRepo{q: q}
}

// Create persiste un evento de entrega de proveedor.
func (r *ConsumableDeliveryRepo) Create(e *entity.ConsumableDeliveryEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO consumable_delivery_events (id, consumable_id, user_id, supplier_id, quantity, date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ConsumableID, e.UserID, e.SupplierID, e.Quantity, e.Date)
	if err != nil {
		return translateError(fmt.Errorf("create delivery event: %w", err))
	}
	return nil
}

// ListByConsumable devuelve las entregas más recientes primero.
func (r *ConsumableDeliveryRepo) ListByConsumable(consumableID string) ([]*entity.ConsumableDeliveryEvent, error) {
	query := `
		SELECT id, consumable_id, user_id, supplier_id, quantity, date
		FROM consumable_delivery_events WHERE consumable_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, consumableID)
	if err != nil {
		return nil, fmt.Errorf("list delivery events: %w", err)
	}
	defer rows.Close()
	var list []*entity.ConsumableDeliveryEvent
	for rows.Next() {
		var e entity.ConsumableDeliveryEvent
		if err := rows.Scan(&e.ID, &e.ConsumableID, &e.UserID, &e.SupplierID, &e.Quantity, &e.Date); err != nil {
			return nil, fmt.Errorf("scan delivery event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// DeleteByConsumable borra el historial de entregas (cascada al eliminar el consumible).
func (r *ConsumableDeliveryRepo) DeleteByConsumable(consumableID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM consumable_delivery_events WHERE consumable_id = $1`, consumableID)
	if err != nil {
		return fmt.Errorf("delete delivery events: %w", err)
	}
	return nil
}
