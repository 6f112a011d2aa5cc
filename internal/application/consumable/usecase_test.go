package consumable_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piotrmaz/nvpApp/internal/application/consumable"
	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/domain"
	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeLedgerStore simula las tres tablas del ledger de consumibles y el
// runner transaccional. Si fn devuelve error, el estado se restaura
// (rollback).
type fakeLedgerStore struct {
	consumables map[string]*entity.Consumable
	events      []*entity.ConsumptionEvent
	deliveries  []*entity.ConsumableDeliveryEvent
}

func newFakeLedgerStore(items ...*entity.Consumable) *fakeLedgerStore {
	s := &fakeLedgerStore{consumables: make(map[string]*entity.Consumable)}
	for _, c := range items {
		cp := *c
		s.consumables[c.ID] = &cp
	}
	return s
}

func (s *fakeLedgerStore) snapshot() *fakeLedgerStore {
	cp := newFakeLedgerStore()
	for id, c := range s.consumables {
		cc := *c
		cp.consumables[id] = &cc
	}
	cp.events = append([]*entity.ConsumptionEvent(nil), s.events...)
	cp.deliveries = append([]*entity.ConsumableDeliveryEvent(nil), s.deliveries...)
	return cp
}

func (s *fakeLedgerStore) restore(snap *fakeLedgerStore) {
	s.consumables = snap.consumables
	s.events = snap.events
	s.deliveries = snap.deliveries
}

// Run implementa consumable.TxRunner con semántica de rollback.
func (s *fakeLedgerStore) Run(_ context.Context, fn func(
	consumables repository.ConsumableRepository,
	consumptions repository.ConsumptionRepository,
	deliveries repository.ConsumableDeliveryRepository,
) error) error {
	snap := s.snapshot()
	if err := fn(
		&fakeConsumableRepo{s: s},
		&fakeConsumptionRepo{s: s},
		&fakeDeliveryRepo{s: s},
	); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type fakeConsumableRepo struct{ s *fakeLedgerStore }

func (r *fakeConsumableRepo) Create(c *entity.Consumable) error {
	r.s.consumables[c.ID] = c
	return nil
}

func (r *fakeConsumableRepo) GetByID(id string) (*entity.Consumable, error) {
	c, ok := r.s.consumables[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConsumableRepo) GetForUpdate(id string) (*entity.Consumable, error) {
	return r.GetByID(id)
}

func (r *fakeConsumableRepo) UpdateOnHand(id string, onHand int, updatedAt time.Time) error {
	c, ok := r.s.consumables[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.OnHand = onHand
	c.UpdatedAt = updatedAt
	return nil
}

func (r *fakeConsumableRepo) List(limit, offset int) ([]*entity.Consumable, error) {
	var out []*entity.Consumable
	for _, c := range r.s.consumables {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeConsumableRepo) ListBelowMinStock() ([]*entity.Consumable, error) {
	var out []*entity.Consumable
	for _, c := range r.s.consumables {
		if c.IsLowStock() {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeConsumableRepo) Delete(id string) error {
	delete(r.s.consumables, id)
	return nil
}

type fakeConsumptionRepo struct {
	s         *fakeLedgerStore
	createErr error
}

func (r *fakeConsumptionRepo) Create(e *entity.ConsumptionEvent) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.s.events = append(r.s.events, e)
	return nil
}

func (r *fakeConsumptionRepo) ListByConsumable(consumableID string) ([]*entity.ConsumptionEvent, error) {
	var out []*entity.ConsumptionEvent
	for _, e := range r.s.events {
		if e.ConsumableID == consumableID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeConsumptionRepo) DeleteByConsumable(consumableID string) error {
	var kept []*entity.ConsumptionEvent
	for _, e := range r.s.events {
		if e.ConsumableID != consumableID {
			kept = append(kept, e)
		}
	}
	r.s.events = kept
	return nil
}

type fakeDeliveryRepo struct{ s *fakeLedgerStore }

func (r *fakeDeliveryRepo) Create(e *entity.ConsumableDeliveryEvent) error {
	r.s.deliveries = append(r.s.deliveries, e)
	return nil
}

func (r *fakeDeliveryRepo) ListByConsumable(consumableID string) ([]*entity.ConsumableDeliveryEvent, error) {
	var out []*entity.ConsumableDeliveryEvent
	for _, e := range r.s.deliveries {
		if e.ConsumableID == consumableID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeDeliveryRepo) DeleteByConsumable(consumableID string) error {
	var kept []*entity.ConsumableDeliveryEvent
	for _, e := range r.s.deliveries {
		if e.ConsumableID != consumableID {
			kept = append(kept, e)
		}
	}
	r.s.deliveries = kept
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

type fakeInvalidator struct {
	deleted []string
}

func (f *fakeInvalidator) Del(_ context.Context, keys ...string) error {
	f.deleted = append(f.deleted, keys...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID       = "00000000-0000-0000-0000-0000000000aa"
	testConsumableID = "00000000-0000-0000-0000-000000000001"
	testSupplierID   = "00000000-0000-0000-0000-000000000002"
)

func guantes(onHand int) *entity.Consumable {
	return &entity.Consumable{
		ID:       testConsumableID,
		Name:     "Guantes de nitrilo",
		OnHand:   onHand,
		MinStock: 5,
		UserID:   testUserID,
	}
}

func supplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		testSupplierID: {ID: testSupplierID, Name: "Proveedor Norte"},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordConsumption
// ──────────────────────────────────────────────────────────────────────────────

// Consumir 3 de un saldo de 10 debe dejar 7 y registrar el evento.
func TestRecordConsumption_DecrementaSaldo(t *testing.T) {
	store := newFakeLedgerStore(guantes(10))
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), nil)

	out, err := uc.RecordConsumption(context.Background(), testUserID, testConsumableID,
		dto.RecordConsumptionRequest{Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, "consumption", out.Kind)
	assert.Equal(t, 3, out.Quantity)
	assert.Equal(t, 7, out.OnHand, "el saldo resultante debe ser 10-3=7")
	assert.Equal(t, testUserID, out.UserID)
	assert.False(t, out.Date.IsZero(), "la fecha la asigna el ledger")

	assert.Equal(t, 7, store.consumables[testConsumableID].OnHand)
	require.Len(t, store.events, 1, "debe quedar exactamente un evento")
	assert.Equal(t, 3, store.events[0].Quantity)
}

func TestRecordConsumption_CantidadNoPositiva(t *testing.T) {
	store := newFakeLedgerStore(guantes(10))
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), nil)

	for _, qty := range []int{0, -1, -50} {
		_, err := uc.RecordConsumption(context.Background(), testUserID, testConsumableID,
			dto.RecordConsumptionRequest{Quantity: qty})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %d debe rechazarse", qty)
	}
	assert.Equal(t, 10, store.consumables[testConsumableID].OnHand, "el saldo no debe cambiar")
	assert.Empty(t, store.events, "no debe registrarse ningún evento")
}

// Consumir más que el saldo disponible debe fallar sin tocar nada.
func TestRecordConsumption_SaldoInsuficiente(t *testing.T) {
	store := newFakeLedgerStore(guantes(2))
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), nil)

	_, err := uc.RecordConsumption(context.Background(), testUserID, testConsumableID,
		dto.RecordConsumptionRequest{Quantity: 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 2, store.consumables[testConsumableID].OnHand)
	assert.Empty(t, store.events)
}

func TestRecordConsumption_ConsumibleInexistente(t *testing.T) {
	store := newFakeLedgerStore()
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), nil)

	_, err := uc.RecordConsumption(context.Background(), testUserID, "no-existe",
		dto.RecordConsumptionRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si la inserción del evento falla, el saldo debe quedar intacto (rollback).
func TestRecordConsumption_RollbackSiFallaElEvento(t *testing.T) {
	store := newFakeLedgerStore(guantes(10))
	failing := &failingEventRunner{store: store}
	uc := consumable.NewLedgerUseCase(failing, supplierRepo(), nil)

	_, err := uc.RecordConsumption(context.Background(), testUserID, testConsumableID,
		dto.RecordConsumptionRequest{Quantity: 3})
	require.Error(t, err)
	assert.Equal(t, 10, store.consumables[testConsumableID].OnHand, "rollback: el saldo no cambia")
	assert.Empty(t, store.events, "rollback: el evento no queda")
}

// failingEventRunner corre la tx con un repo de eventos que siempre falla.
type failingEventRunner struct {
	store *fakeLedgerStore
}

func (f *failingEventRunner) Run(_ context.Context, fn func(
	consumables repository.ConsumableRepository,
	consumptions repository.ConsumptionRepository,
	deliveries repository.ConsumableDeliveryRepository,
) error) error {
	snap := f.store.snapshot()
	if err := fn(
		&fakeConsumableRepo{s: f.store},
		&fakeConsumptionRepo{s: f.store, createErr: assert.AnError},
		&fakeDeliveryRepo{s: f.store},
	); err != nil {
		f.store.restore(snap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordDelivery
// ──────────────────────────────────────────────────────────────────────────────

// Entregar 5 sobre un saldo de 10 debe dejar 15.
func TestRecordDelivery_IncrementaSaldo(t *testing.T) {
	store := newFakeLedgerStore(guantes(10))
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), nil)

	out, err := uc.RecordDelivery(context.Background(), testUserID, testConsumableID,
		dto.RecordConsumableDeliveryRequest{Quantity: 5, SupplierID: testSupplierID})
	require.NoError(t, err)

	assert.Equal(t, "delivery", out.Kind)
	assert.Equal(t, 15, out.OnHand, "el saldo resultante debe ser 10+5=15")
	assert.Equal(t, testSupplierID, out.SupplierID)
	assert.Equal(t, 15, store.consumables[testConsumableID].OnHand)
	require.Len(t, store.deliveries, 1)
}

func TestRecordDelivery_ProveedorInexistente(t *testing.T) {
	store := newFakeLedgerStore(guantes(10))
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), nil)

	_, err := uc.RecordDelivery(context.Background(), testUserID, testConsumableID,
		dto.RecordConsumableDeliveryRequest{Quantity: 5, SupplierID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, store.consumables[testConsumableID].OnHand)
	assert.Empty(t, store.deliveries)
}

func TestRecordDelivery_CantidadNoPositiva(t *testing.T) {
	store := newFakeLedgerStore(guantes(10))
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), nil)

	_, err := uc.RecordDelivery(context.Background(), testUserID, testConsumableID,
		dto.RecordConsumableDeliveryRequest{Quantity: 0, SupplierID: testSupplierID})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// El historial es append-only: cada transición añade un evento nuevo.
func TestLedger_HistorialAppendOnly(t *testing.T) {
	store := newFakeLedgerStore(guantes(10))
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), nil)
	ctx := context.Background()

	_, err := uc.RecordConsumption(ctx, testUserID, testConsumableID, dto.RecordConsumptionRequest{Quantity: 2})
	require.NoError(t, err)
	_, err = uc.RecordConsumption(ctx, testUserID, testConsumableID, dto.RecordConsumptionRequest{Quantity: 3})
	require.NoError(t, err)
	_, err = uc.RecordDelivery(ctx, testUserID, testConsumableID, dto.RecordConsumableDeliveryRequest{Quantity: 4, SupplierID: testSupplierID})
	require.NoError(t, err)

	assert.Len(t, store.events, 2)
	assert.Len(t, store.deliveries, 1)
	assert.Equal(t, 9, store.consumables[testConsumableID].OnHand, "10-2-3+4=9")
}

// Tras una transición confirmada se invalida la caché de stock bajo.
func TestLedger_InvalidaCacheDeStockBajo(t *testing.T) {
	store := newFakeLedgerStore(guantes(10))
	inv := &fakeInvalidator{}
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), inv)

	_, err := uc.RecordConsumption(context.Background(), testUserID, testConsumableID,
		dto.RecordConsumptionRequest{Quantity: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, inv.deleted, "la caché debe invalidarse tras confirmar")
}

// Si la transición falla, la caché no se toca.
func TestLedger_NoInvalidaCacheSiFalla(t *testing.T) {
	store := newFakeLedgerStore(guantes(1))
	inv := &fakeInvalidator{}
	uc := consumable.NewLedgerUseCase(store, supplierRepo(), inv)

	_, err := uc.RecordConsumption(context.Background(), testUserID, testConsumableID,
		dto.RecordConsumptionRequest{Quantity: 5})
	require.Error(t, err)
	assert.Empty(t, inv.deleted)
}
