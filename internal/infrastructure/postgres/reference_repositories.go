package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// Adaptadores de las tablas de referencia. Solo alta y lectura; el ledger
// nunca las muta.

var _ repository.SupplierRepository = (*SupplierRepo)(nil)
var _ repository.UnitRepository = (*UnitRepo)(nil)
var _ repository.ParcelRepository = (*ParcelRepo)(nil)
var _ repository.ConditionRepository = (*ConditionRepo)(nil)

// SupplierRepo persistencia de proveedores.
type SupplierRepo struct {
	q Querier
}

func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(s *entity.Supplier) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO suppliers (id, name, created_at) VALUES ($1, $2, $3)`,
		s.ID, s.Name, s.CreatedAt)
	if err != nil {
		return translateError(fmt.Errorf("create supplier: %w", err))
	}
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM suppliers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UnitRepo persistencia de unidades de medida.
type UnitRepo struct {
	q Querier
}

func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

func (r *UnitRepo) Create(u *entity.Unit) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO units (id, name, created_at) VALUES ($1, $2, $3)`,
		u.ID, u.Name, u.CreatedAt)
	if err != nil {
		return translateError(fmt.Errorf("create unit: %w", err))
	}
	return nil
}

func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, created_at FROM units WHERE id = $1`, id).
		Scan(&u.ID, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

func (r *UnitRepo) List() ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM units ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ParcelRepo persistencia de tipos de empaque.
type ParcelRepo struct {
	q Querier
}

func NewParcelRepository(q Querier) *ParcelRepo {
	return &ParcelRepo{q: q}
}

func (r *ParcelRepo) Create(p *entity.Parcel) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO parcels (id, name, weight, dimension, type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Weight, p.Dimension, p.Type, p.CreatedAt)
	if err != nil {
		return translateError(fmt.Errorf("create parcel: %w", err))
	}
	return nil
}

func (r *ParcelRepo) GetByID(id string) (*entity.Parcel, error) {
	var p entity.Parcel
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, weight, dimension, type, created_at FROM parcels WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Weight, &p.Dimension, &p.Type, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return &p, nil
}

func (r *ParcelRepo) List() ([]*entity.Parcel, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, weight, dimension, type, created_at FROM parcels ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}
	defer rows.Close()
	var list []*entity.Parcel
	for rows.Next() {
		var p entity.Parcel
		if err := rows.Scan(&p.ID, &p.Name, &p.Weight, &p.Dimension, &p.Type, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan parcel: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ConditionRepo persistencia de condiciones de inspección.
type ConditionRepo struct {
	q Querier
}

func NewConditionRepository(q Querier) *ConditionRepo {
	return &ConditionRepo{q: q}
}

func (r *ConditionRepo) Create(c *entity.Condition) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO conditions (id, name, lossless, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Lossless, c.CreatedAt)
	if err != nil {
		return translateError(fmt.Errorf("create condition: %w", err))
	}
	return nil
}

func (r *ConditionRepo) GetByID(id string) (*entity.Condition, error) {
	var c entity.Condition
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, lossless, created_at FROM conditions WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Lossless, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get condition: %w", err)
	}
	return &c, nil
}

func (r *ConditionRepo) List() ([]*entity.Condition, error) {
	return r.list(`SELECT id, name, lossless, created_at FROM conditions ORDER BY name ASC`)
}

// ListLossless devuelve las condiciones marcadas como "sin pérdida".
func (r *ConditionRepo) ListLossless() ([]*entity.Condition, error) {
	return r.list(`SELECT id, name, lossless, created_at FROM conditions WHERE lossless ORDER BY name ASC`)
}

func (r *ConditionRepo) list(query string) ([]*entity.Condition, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list conditions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Condition
	for rows.Next() {
		var c entity.Condition
		if err := rows.Scan(&c.ID, &c.Name, &c.Lossless, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan condition: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
