package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/piotrmaz/nvpApp/internal/application/consumable"
	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/application/reconciliation"
	"github.com/piotrmaz/nvpApp/internal/application/usecase"
)

// ConsumableHandler maneja las peticiones HTTP de consumibles: CRUD,
// transiciones del ledger y consultas de conciliación.
type ConsumableHandler struct {
	uc     *usecase.ConsumableUseCase
	ledger *consumable.LedgerUseCase
	query  *reconciliation.QueryUseCase
}

// NewConsumableHandler construye el handler.
func NewConsumableHandler(uc *usecase.ConsumableUseCase, ledger *consumable.LedgerUseCase, query *reconciliation.QueryUseCase) *ConsumableHandler {
	return &ConsumableHandler{uc: uc, ledger: ledger, query: query}
}

// Create godoc
// @Summary      Crear consumible
// @Tags         consumables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConsumableRequest  true  "Datos del consumible"
// @Success      201   {object}  dto.ConsumableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consumables [post]
func (h *ConsumableHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateConsumableRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener consumible por ID
// @Tags         consumables
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del consumible"
// @Success      200  {object}  dto.ConsumableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumables/{id} [get]
func (h *ConsumableHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "consumible no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar consumibles
// @Tags         consumables
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ConsumableListResponse
// @Router       /api/consumables [get]
func (h *ConsumableHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar consumible y su historial
// @Tags         consumables
// @Security     Bearer
// @Param        id  path  string  true  "ID del consumible"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumables/{id} [delete]
func (h *ConsumableHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordConsumption godoc
// @Summary      Registrar consumo (decrementa el saldo)
// @Tags         consumables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del consumible"
// @Param        body  body  dto.RecordConsumptionRequest  true  "Cantidad consumida"
// @Success      201   {object}  dto.ConsumableEventResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consumables/{id}/consumption [post]
func (h *ConsumableHandler) RecordConsumption(c *fiber.Ctx) error {
	var in dto.RecordConsumptionRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.ledger.RecordConsumption(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordDelivery godoc
// @Summary      Registrar entrega de proveedor (incrementa el saldo)
// @Tags         consumables
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del consumible"
// @Param        body  body  dto.RecordConsumableDeliveryRequest  true  "Cantidad entregada y proveedor"
// @Success      201   {object}  dto.ConsumableEventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/consumables/{id}/delivery [post]
func (h *ConsumableHandler) RecordDelivery(c *fiber.Ctx) error {
	var in dto.RecordConsumableDeliveryRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.ledger.RecordDelivery(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de consumos y entregas, más reciente primero
// @Tags         consumables
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del consumible"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consumables/{id}/history [get]
func (h *ConsumableHandler) History(c *fiber.Ctx) error {
	out, err := h.query.ConsumableHistory(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Consumibles por debajo de su umbral mínimo
// @Tags         consumables
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockResponse
// @Router       /api/consumables/low-stock [get]
func (h *ConsumableHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.query.LowStock(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
