package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// Adaptadores de los tres tipos de evento de circulación. Comparten forma
// (append-only, listado por empaque, borrado en cascada) y solo difieren en
// tabla y columnas, así que viven juntos.

var _ repository.PackageDeliveryRepository = (*PackageDeliveryRepo)(nil)
var _ repository.PackageSendRepository = (*PackageSendRepo)(nil)
var _ repository.PackageReceiveRepository = (*PackageReceiveRepo)(nil)

// PackageDeliveryRepo persistencia de entregas de empaques (append-only).
type PackageDeliveryRepo struct {
	q Querier
}

func NewPackageDeliveryRepository(q Querier) *PackageDeliveryRepo {
	return &PackageDeliveryRepo{q: q}
}

func (r *PackageDeliveryRepo) Create(e *entity.PackageDeliveryEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO package_delivery_events (id, package_id, user_id, supplier_id, quantity, description, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PackageID, e.UserID, e.SupplierID, e.Quantity, e.Description, e.Date)
	if err != nil {
		return translateError(fmt.Errorf("create package delivery event: %w", err))
	}
	return nil
}

func (r *PackageDeliveryRepo) ListByPackage(packageID string) ([]*entity.PackageDeliveryEvent, error) {
	query := `
		SELECT id, package_id, user_id, supplier_id, quantity, description, date
		FROM package_delivery_events WHERE package_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, packageID)
	if err != nil {
		return nil, fmt.Errorf("list package delivery events: %w", err)
	}
	defer rows.Close()
	var list []*entity.PackageDeliveryEvent
	for rows.Next() {
		var e entity.PackageDeliveryEvent
		if err := rows.Scan(&e.ID, &e.PackageID, &e.UserID, &e.SupplierID,
			&e.Quantity, &e.Description, &e.Date); err != nil {
			return nil, fmt.Errorf("scan package delivery event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *PackageDeliveryRepo) DeleteByPackage(packageID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM package_delivery_events WHERE package_id = $1`, packageID)
	if err != nil {
		return fmt.Errorf("delete package delivery events: %w", err)
	}
	return nil
}

// PackageSendRepo persistencia de envíos de empaques (append-only).
type PackageSendRepo struct {
	q Querier
}

func NewPackageSendRepository(q Querier) *PackageSendRepo {
	return &PackageSendRepo{q: q}
}

func (r *PackageSendRepo) Create(e *entity.PackageSendEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO package_send_events (id, package_id, user_id, supplier_id, quantity, description, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PackageID, e.UserID, e.SupplierID, e.Quantity, e.Description, e.Date)
	if err != nil {
		return translateError(fmt.Errorf("create package send event: %w", err))
	}
	return nil
}

func (r *PackageSendRepo) ListByPackage(packageID string) ([]*entity.PackageSendEvent, error) {
	query := `
		SELECT id, package_id, user_id, supplier_id, quantity, description, date
		FROM package_send_events WHERE package_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, packageID)
	if err != nil {
		return nil, fmt.Errorf("list package send events: %w", err)
	}
	defer rows.Close()
	var list []*entity.PackageSendEvent
	for rows.Next() {
		var e entity.PackageSendEvent
		if err := rows.Scan(&e.ID, &e.PackageID, &e.UserID, &e.SupplierID,
			&e.Quantity, &e.Description, &e.Date); err != nil {
			return nil, fmt.Errorf("scan package send event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *PackageSendRepo) DeleteByPackage(packageID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM package_send_events WHERE package_id = $1`, packageID)
	if err != nil {
		return fmt.Errorf("delete package send events: %w", err)
	}
	return nil
}

// PackageReceiveRepo persistencia de recepciones de empaques (append-only).
// Incluye la condición de inspección del lote.
type PackageReceiveRepo struct {
	q Querier
}

func NewPackageReceiveRepository(q Querier) *PackageReceiveRepo {
	return &PackageReceiveRepo{q: q}
}

func (r *PackageReceiveRepo) Create(e *entity.PackageReceiveEvent) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO package_receive_events (id, package_id, user_id, supplier_id, condition_id, quantity, description, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.PackageID, e.UserID, e.SupplierID, e.ConditionID,
		e.Quantity, e.Description, e.Date)
	if err != nil {
		return translateError(fmt.Errorf("create package receive event: %w", err))
	}
	return nil
}

func (r *PackageReceiveRepo) ListByPackage(packageID string) ([]*entity.PackageReceiveEvent, error) {
	query := `
		SELECT id, package_id, user_id, supplier_id, condition_id, quantity, description, date
		FROM package_receive_events WHERE package_id = $1
		ORDER BY date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, packageID)
	if err != nil {
		return nil, fmt.Errorf("list package receive events: %w", err)
	}
	defer rows.Close()
	var list []*entity.PackageReceiveEvent
	for rows.Next() {
		var e entity.PackageReceiveEvent
		if err := rows.Scan(&e.ID, &e.PackageID, &e.UserID, &e.SupplierID,
			&e.ConditionID, &e.Quantity, &e.Description, &e.Date); err != nil {
			return nil, fmt.Errorf("scan package receive event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func (r *PackageReceiveRepo) DeleteByPackage(packageID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM package_receive_events WHERE package_id = $1`, packageID)
	if err != nil {
		return fmt.Errorf("delete package receive events: %w", err)
	}
	return nil
}
