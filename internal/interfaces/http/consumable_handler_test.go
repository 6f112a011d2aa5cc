package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piotrmaz/nvpApp/internal/application/circulation"
	"github.com/piotrmaz/nvpApp/internal/application/consumable"
	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/application/reconciliation"
	"github.com/piotrmaz/nvpApp/internal/application/report"
	"github.com/piotrmaz/nvpApp/internal/application/usecase"
	"github.com/piotrmaz/nvpApp/internal/domain"
	"github.com/piotrmaz/nvpApp/internal/domain/entity"
	"github.com/piotrmaz/nvpApp/internal/domain/repository"
	apphttp "github.com/piotrmaz/nvpApp/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia para la API completa
// ──────────────────────────────────────────────────────────────────────────────

// apiStore estado en memoria compartido por todos los repos fake.
type apiStore struct {
	consumables map[string]*entity.Consumable
	suppliers   map[string]*entity.Supplier
	units       map[string]*entity.Unit
	parcels     map[string]*entity.Parcel
	conditions  map[string]*entity.Condition
	packages    map[string]*entity.Package

	consumptions   []*entity.ConsumptionEvent
	consDeliveries []*entity.ConsumableDeliveryEvent
	pkgDeliveries  []*entity.PackageDeliveryEvent
	pkgSends       []*entity.PackageSendEvent
	pkgReceives    []*entity.PackageReceiveEvent
}

func newAPIStore() *apiStore {
	return &apiStore{
		consumables: make(map[string]*entity.Consumable),
		suppliers:   make(map[string]*entity.Supplier),
		units:       make(map[string]*entity.Unit),
		parcels:     make(map[string]*entity.Parcel),
		conditions:  make(map[string]*entity.Condition),
		packages:    make(map[string]*entity.Package),
	}
}

// Run / RunPackage: los tests de rollback viven en la capa de aplicación;
// aquí basta con propagar el error sin restaurar estado intermedio.
func (s *apiStore) Run(_ context.Context, fn func(
	repository.ConsumableRepository,
	repository.ConsumptionRepository,
	repository.ConsumableDeliveryRepository,
) error) error {
	return fn(&sConsumableRepo{s}, &sConsumptionRepo{s}, &sConsDeliveryRepo{s})
}

func (s *apiStore) RunPackage(_ context.Context, fn func(
	repository.PackageRepository,
	repository.PackageDeliveryRepository,
	repository.PackageSendRepository,
	repository.PackageReceiveRepository,
) error) error {
	return fn(&sPackageRepo{s}, &sPkgDeliveryRepo{s}, &sPkgSendRepo{s}, &sPkgReceiveRepo{s})
}

type sConsumableRepo struct{ s *apiStore }

func (r *sConsumableRepo) Create(c *entity.Consumable) error { r.s.consumables[c.ID] = c; return nil }
func (r *sConsumableRepo) GetByID(id string) (*entity.Consumable, error) {
	return r.s.consumables[id], nil
}
func (r *sConsumableRepo) GetForUpdate(id string) (*entity.Consumable, error) {
	return r.s.consumables[id], nil
}
func (r *sConsumableRepo) UpdateOnHand(id string, onHand int, updatedAt time.Time) error {
	c, ok := r.s.consumables[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.OnHand = onHand
	c.UpdatedAt = updatedAt
	return nil
}
func (r *sConsumableRepo) List(int, int) ([]*entity.Consumable, error) {
	var out []*entity.Consumable
	for _, c := range r.s.consumables {
		out = append(out, c)
	}
	return out, nil
}
func (r *sConsumableRepo) ListBelowMinStock() ([]*entity.Consumable, error) {
	var out []*entity.Consumable
	for _, c := range r.s.consumables {
		if c.IsLowStock() {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *sConsumableRepo) Delete(id string) error { delete(r.s.consumables, id); return nil }

type sConsumptionRepo struct{ s *apiStore }

func (r *sConsumptionRepo) Create(e *entity.ConsumptionEvent) error {
	r.s.consumptions = append(r.s.consumptions, e)
	return nil
}
func (r *sConsumptionRepo) ListByConsumable(id string) ([]*entity.ConsumptionEvent, error) {
	var out []*entity.ConsumptionEvent
	for _, e := range r.s.consumptions {
		if e.ConsumableID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *sConsumptionRepo) DeleteByConsumable(string) error { return nil }

type sConsDeliveryRepo struct{ s *apiStore }

func (r *sConsDeliveryRepo) Create(e *entity.ConsumableDeliveryEvent) error {
	r.s.consDeliveries = append(r.s.consDeliveries, e)
	return nil
}
func (r *sConsDeliveryRepo) ListByConsumable(id string) ([]*entity.ConsumableDeliveryEvent, error) {
	var out []*entity.ConsumableDeliveryEvent
	for _, e := range r.s.consDeliveries {
		if e.ConsumableID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *sConsDeliveryRepo) DeleteByConsumable(string) error { return nil }

type sPackageRepo struct{ s *apiStore }

func (r *sPackageRepo) Create(p *entity.Package) error { r.s.packages[p.ID] = p; return nil }
func (r *sPackageRepo) GetByID(id string) (*entity.Package, error) {
	return r.s.packages[id], nil
}
func (r *sPackageRepo) GetForUpdate(id string) (*entity.Package, error) {
	return r.s.packages[id], nil
}
func (r *sPackageRepo) UpdateBalance(id string, quantity, inside, outside int, updatedAt time.Time) error {
	p, ok := r.s.packages[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.Inside = inside
	p.Outside = outside
	p.UpdatedAt = updatedAt
	return nil
}
func (r *sPackageRepo) List(int, int) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, p := range r.s.packages {
		out = append(out, p)
	}
	return out, nil
}
func (r *sPackageRepo) Delete(id string) error { delete(r.s.packages, id); return nil }

type sPkgDeliveryRepo struct{ s *apiStore }

func (r *sPkgDeliveryRepo) Create(e *entity.PackageDeliveryEvent) error {
	r.s.pkgDeliveries = append(r.s.pkgDeliveries, e)
	return nil
}
func (r *sPkgDeliveryRepo) ListByPackage(id string) ([]*entity.PackageDeliveryEvent, error) {
	var out []*entity.PackageDeliveryEvent
	for _, e := range r.s.pkgDeliveries {
		if e.PackageID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *sPkgDeliveryRepo) DeleteByPackage(string) error { return nil }

type sPkgSendRepo struct{ s *apiStore }

func (r *sPkgSendRepo) Create(e *entity.PackageSendEvent) error {
	r.s.pkgSends = append(r.s.pkgSends, e)
	return nil
}
func (r *sPkgSendRepo) ListByPackage(id string) ([]*entity.PackageSendEvent, error) {
	var out []*entity.PackageSendEvent
	for _, e := range r.s.pkgSends {
		if e.PackageID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *sPkgSendRepo) DeleteByPackage(string) error { return nil }

type sPkgReceiveRepo struct{ s *apiStore }

func (r *sPkgReceiveRepo) Create(e *entity.PackageReceiveEvent) error {
	r.s.pkgReceives = append(r.s.pkgReceives, e)
	return nil
}
func (r *sPkgReceiveRepo) ListByPackage(id string) ([]*entity.PackageReceiveEvent, error) {
	var out []*entity.PackageReceiveEvent
	for _, e := range r.s.pkgReceives {
		if e.PackageID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *sPkgReceiveRepo) DeleteByPackage(string) error { return nil }

type sSupplierRepo struct{ s *apiStore }

func (r *sSupplierRepo) Create(x *entity.Supplier) error { r.s.suppliers[x.ID] = x; return nil }
func (r *sSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}
func (r *sSupplierRepo) List() ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, x := range r.s.suppliers {
		out = append(out, x)
	}
	return out, nil
}

type sUnitRepo struct{ s *apiStore }

func (r *sUnitRepo) Create(x *entity.Unit) error { r.s.units[x.ID] = x; return nil }
func (r *sUnitRepo) GetByID(id string) (*entity.Unit, error) {
	return r.s.units[id], nil
}
func (r *sUnitRepo) List() ([]*entity.Unit, error) {
	var out []*entity.Unit
	for _, x := range r.s.units {
		out = append(out, x)
	}
	return out, nil
}

type sParcelRepo struct{ s *apiStore }

func (r *sParcelRepo) Create(x *entity.Parcel) error { r.s.parcels[x.ID] = x; return nil }
func (r *sParcelRepo) GetByID(id string) (*entity.Parcel, error) {
	return r.s.parcels[id], nil
}
func (r *sParcelRepo) List() ([]*entity.Parcel, error) {
	var out []*entity.Parcel
	for _, x := range r.s.parcels {
		out = append(out, x)
	}
	return out, nil
}

type sConditionRepo struct{ s *apiStore }

func (r *sConditionRepo) Create(x *entity.Condition) error { r.s.conditions[x.ID] = x; return nil }
func (r *sConditionRepo) GetByID(id string) (*entity.Condition, error) {
	return r.s.conditions[id], nil
}
func (r *sConditionRepo) List() ([]*entity.Condition, error) {
	var out []*entity.Condition
	for _, x := range r.s.conditions {
		out = append(out, x)
	}
	return out, nil
}
func (r *sConditionRepo) ListLossless() ([]*entity.Condition, error) {
	var out []*entity.Condition
	for _, x := range r.s.conditions {
		if x.Lossless {
			out = append(out, x)
		}
	}
	return out, nil
}

type noopPDF struct{}

func (noopPDF) GenerateStockroomPDF(_ context.Context, _ []*entity.Consumable, _ []*entity.Package, _ time.Time) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de test con el router real
// ──────────────────────────────────────────────────────────────────────────────

const (
	apiConsumableID = "00000000-0000-0000-0000-000000000021"
	apiPackageID    = "00000000-0000-0000-0000-000000000022"
	apiSupplierID   = "00000000-0000-0000-0000-000000000023"
	apiUnitID       = "00000000-0000-0000-0000-000000000024"
	apiConditionID  = "00000000-0000-0000-0000-000000000025"
)

func buildAPI(t *testing.T) (*fiber.App, *apiStore) {
	t.Helper()
	store := newAPIStore()
	store.suppliers[apiSupplierID] = &entity.Supplier{ID: apiSupplierID, Name: "Proveedor Norte"}
	store.units[apiUnitID] = &entity.Unit{ID: apiUnitID, Name: "pcs"}
	store.conditions[apiConditionID] = &entity.Condition{ID: apiConditionID, Name: "Buen estado", Lossless: true}
	store.consumables[apiConsumableID] = &entity.Consumable{
		ID: apiConsumableID, Name: "Guantes", OnHand: 10, MinStock: 5,
		UnitID: apiUnitID, SupplierID: apiSupplierID,
	}
	store.packages[apiPackageID] = &entity.Package{
		ID: apiPackageID, ParcelID: "parcel-1", Quantity: 20, Inside: 12, Outside: 8,
	}

	consumableRepo := &sConsumableRepo{store}
	supplierRepo := &sSupplierRepo{store}
	conditionRepo := &sConditionRepo{store}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ConsumableUC:     usecase.NewConsumableUseCase(consumableRepo, &sUnitRepo{store}, supplierRepo, store),
		ConsumableLedger: consumable.NewLedgerUseCase(store, supplierRepo, nil),
		PackageUC:        usecase.NewPackageUseCase(&sPackageRepo{store}, &sParcelRepo{store}, store),
		PackageLedger:    circulation.NewLedgerUseCase(store, supplierRepo, conditionRepo),
		QueryUC: reconciliation.NewQueryUseCase(
			consumableRepo, &sConsumptionRepo{store}, &sConsDeliveryRepo{store},
			&sPackageRepo{store}, &sPkgDeliveryRepo{store}, &sPkgSendRepo{store}, &sPkgReceiveRepo{store},
			nil,
		),
		ReportUC:    report.NewPDFUseCase(consumableRepo, &sPackageRepo{store}, noopPDF{}),
		SupplierUC:  usecase.NewSupplierUseCase(supplierRepo),
		UnitUC:      usecase.NewUnitUseCase(&sUnitRepo{store}),
		ParcelUC:    usecase.NewParcelUseCase(&sParcelRepo{store}),
		ConditionUC: usecase.NewConditionUseCase(conditionRepo),
		JWTSecret:   testJWTSecret,
	})
	return app, store
}

func apiRequest(t *testing.T, app *fiber.App, method, path, role string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Sin token, toda la API responde 401.
func TestAPI_RequiereToken(t *testing.T) {
	app, _ := buildAPI(t)
	resp := apiRequest(t, app, http.MethodGet, "/api/consumables", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Registrar un consumo descuenta el saldo y devuelve el evento con el saldo resultante.
func TestAPI_RegistrarConsumo(t *testing.T) {
	app, store := buildAPI(t)
	resp := apiRequest(t, app, http.MethodPost, "/api/consumables/"+apiConsumableID+"/consumption",
		"empleado", dto.RecordConsumptionRequest{Quantity: 3})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.ConsumableEventResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "consumption", out.Kind)
	assert.Equal(t, 7, out.OnHand)
	assert.Equal(t, testUserID, out.UserID, "el user_id sale del token, no del body")
	assert.Equal(t, 7, store.consumables[apiConsumableID].OnHand)
}

// Consumir más del saldo → 409 con código INSUFFICIENT_STOCK.
func TestAPI_ConsumoSaldoInsuficiente(t *testing.T) {
	app, store := buildAPI(t)
	resp := apiRequest(t, app, http.MethodPost, "/api/consumables/"+apiConsumableID+"/consumption",
		"empleado", dto.RecordConsumptionRequest{Quantity: 99})
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Equal(t, 10, store.consumables[apiConsumableID].OnHand, "el saldo no debe cambiar")
}

// Cantidad cero → 400 con detalle del campo.
func TestAPI_ConsumoCantidadInvalida(t *testing.T) {
	app, _ := buildAPI(t)
	resp := apiRequest(t, app, http.MethodPost, "/api/consumables/"+apiConsumableID+"/consumption",
		"empleado", map[string]any{"quantity": 0})
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Fields, "quantity")
}

// Las rutas de empaques exigen rol admin.
func TestAPI_EmpaquesSoloAdmin(t *testing.T) {
	app, _ := buildAPI(t)

	resp := apiRequest(t, app, http.MethodGet, "/api/packages", "empleado", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp2 := apiRequest(t, app, http.MethodGet, "/api/packages", "admin", nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
}

// Envío de empaques vía API: actualiza cubetas y conserva el total.
func TestAPI_EnvioDeEmpaques(t *testing.T) {
	app, store := buildAPI(t)
	resp := apiRequest(t, app, http.MethodPost, "/api/packages/"+apiPackageID+"/send",
		"admin", dto.PackageSendRequest{Quantity: 4, SupplierID: apiSupplierID})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.PackageEventResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, dto.PackageBalance{Quantity: 20, Inside: 8, Outside: 12}, out.Balance)

	p := store.packages[apiPackageID]
	assert.Equal(t, p.Quantity, p.Inside+p.Outside)
}

// Recepción con baja vía API: el total cae.
func TestAPI_RecepcionConBaja(t *testing.T) {
	app, store := buildAPI(t)
	const conditionDanadoID = "00000000-0000-0000-0000-000000000026"
	store.conditions[conditionDanadoID] = &entity.Condition{ID: conditionDanadoID, Name: "Dañado", Lossless: false}

	resp := apiRequest(t, app, http.MethodPost, "/api/packages/"+apiPackageID+"/receive",
		"admin", dto.PackageReceiveRequest{Quantity: 3, SupplierID: apiSupplierID, ConditionID: conditionDanadoID})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.PackageEventResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, dto.PackageBalance{Quantity: 17, Inside: 12, Outside: 5}, out.Balance)
}

// Stock bajo expuesto en /api/consumables/low-stock.
func TestAPI_StockBajo(t *testing.T) {
	app, store := buildAPI(t)
	store.consumables["bajo"] = &entity.Consumable{ID: "bajo", Name: "Cinta", OnHand: 1, MinStock: 5}

	resp := apiRequest(t, app, http.MethodGet, "/api/consumables/low-stock", "empleado", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LowStockResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "bajo", out.Items[0].ConsumableID)
	assert.Equal(t, 4, out.Items[0].Deficit)
}

// El reporte PDF responde con content-type y disposition de descarga.
func TestAPI_ReportePDF(t *testing.T) {
	app, _ := buildAPI(t)
	resp := apiRequest(t, app, http.MethodGet, "/api/reports/stockroom", "empleado", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "almacen_")
}
