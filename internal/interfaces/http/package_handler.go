package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/piotrmaz/nvpApp/internal/application/circulation"
	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/application/reconciliation"
	"github.com/piotrmaz/nvpApp/internal/application/usecase"
)

// PackageHandler maneja las peticiones HTTP de empaques retornables: CRUD,
// transiciones de circulación y consultas de conciliación. Solo admin.
type PackageHandler struct {
	uc     *usecase.PackageUseCase
	ledger *circulation.LedgerUseCase
	query  *reconciliation.QueryUseCase
}

// NewPackageHandler construye el handler.
func NewPackageHandler(uc *usecase.PackageUseCase, ledger *circulation.LedgerUseCase, query *reconciliation.QueryUseCase) *PackageHandler {
	return &PackageHandler{uc: uc, ledger: ledger, query: query}
}

// Create godoc
// @Summary      Crear empaque (cubetas en cero)
// @Tags         packages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePackageRequest  true  "Datos del empaque"
// @Success      201   {object}  dto.PackageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/packages [post]
func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePackageRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener empaque por ID
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del empaque"
// @Success      200  {object}  dto.PackageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [get]
func (h *PackageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empaque no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empaques
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PackageListResponse
// @Router       /api/packages [get]
func (h *PackageHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empaque y su historial
// @Tags         packages
// @Security     Bearer
// @Param        id  path  string  true  "ID del empaque"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id} [delete]
func (h *PackageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordDelivery godoc
// @Summary      Registrar llegada de unidades nuevas (total e inside suben)
// @Tags         packages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empaque"
// @Param        body  body  dto.PackageDeliveryRequest  true  "Cantidad y proveedor"
// @Success      201   {object}  dto.PackageEventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/packages/{id}/delivery [post]
func (h *PackageHandler) RecordDelivery(c *fiber.Ctx) error {
	var in dto.PackageDeliveryRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.ledger.RecordDelivery(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordSend godoc
// @Summary      Registrar envío a proveedor (inside -> outside)
// @Tags         packages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empaque"
// @Param        body  body  dto.PackageSendRequest  true  "Cantidad y proveedor"
// @Success      201   {object}  dto.PackageEventResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/packages/{id}/send [post]
func (h *PackageHandler) RecordSend(c *fiber.Ctx) error {
	var in dto.PackageSendRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.ledger.RecordSend(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordReceive godoc
// @Summary      Registrar devolución inspeccionada (outside baja; condición decide destino)
// @Tags         packages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del empaque"
// @Param        body  body  dto.PackageReceiveRequest  true  "Cantidad, proveedor y condición"
// @Success      201   {object}  dto.PackageEventResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/packages/{id}/receive [post]
func (h *PackageHandler) RecordReceive(c *fiber.Ctx) error {
	var in dto.PackageReceiveRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.ledger.RecordReceive(c.Context(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de entregas del empaque, más reciente primero
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empaque"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id}/history [get]
func (h *PackageHandler) History(c *fiber.Ctx) error {
	out, err := h.query.PackageHistory(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial completo de circulación (entregas, envíos y recepciones)
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del empaque"
// @Success      200  {object}  dto.HistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/packages/{id}/movements [get]
func (h *PackageHandler) Movements(c *fiber.Ctx) error {
	out, err := h.query.PackageMovements(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
