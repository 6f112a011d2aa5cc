package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/piotrmaz/nvpApp/internal/application/dto"
	"github.com/piotrmaz/nvpApp/internal/application/usecase"
)

// ReferenceHandler maneja las tablas de referencia (proveedores, unidades,
// tipos de empaque y condiciones). Solo alta y lectura.
type ReferenceHandler struct {
	supplierUC  *usecase.SupplierUseCase
	unitUC      *usecase.UnitUseCase
	parcelUC    *usecase.ParcelUseCase
	conditionUC *usecase.ConditionUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(
	supplierUC *usecase.SupplierUseCase,
	unitUC *usecase.UnitUseCase,
	parcelUC *usecase.ParcelUseCase,
	conditionUC *usecase.ConditionUseCase,
) *ReferenceHandler {
	return &ReferenceHandler{supplierUC: supplierUC, unitUC: unitUC, parcelUC: parcelUC, conditionUC: conditionUC}
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Router       /api/suppliers [post]
func (h *ReferenceHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.supplierUC.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *ReferenceHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.supplierUC.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetSupplier godoc
// @Summary      Obtener proveedor por ID
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *ReferenceHandler) GetSupplier(c *fiber.Ctx) error {
	out, err := h.supplierUC.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
	}
	return c.JSON(out)
}

// CreateUnit godoc
// @Summary      Crear unidad de medida
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UnitResponse
// @Router       /api/units [post]
func (h *ReferenceHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.unitUC.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUnits godoc
// @Summary      Listar unidades de medida
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/units [get]
func (h *ReferenceHandler) ListUnits(c *fiber.Ctx) error {
	out, err := h.unitUC.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetUnit godoc
// @Summary      Obtener unidad por ID
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.UnitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/units/{id} [get]
func (h *ReferenceHandler) GetUnit(c *fiber.Ctx) error {
	out, err := h.unitUC.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// CreateParcel godoc
// @Summary      Crear tipo de empaque
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateParcelRequest  true  "Datos del tipo de empaque"
// @Success      201   {object}  dto.ParcelResponse
// @Router       /api/parcels [post]
func (h *ReferenceHandler) CreateParcel(c *fiber.Ctx) error {
	var in dto.CreateParcelRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.parcelUC.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListParcels godoc
// @Summary      Listar tipos de empaque
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ParcelResponse
// @Router       /api/parcels [get]
func (h *ReferenceHandler) ListParcels(c *fiber.Ctx) error {
	out, err := h.parcelUC.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetParcel godoc
// @Summary      Obtener tipo de empaque por ID
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del tipo de empaque"
// @Success      200  {object}  dto.ParcelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/parcels/{id} [get]
func (h *ReferenceHandler) GetParcel(c *fiber.Ctx) error {
	out, err := h.parcelUC.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de empaque no encontrado"})
	}
	return c.JSON(out)
}

// CreateCondition godoc
// @Summary      Crear condición de inspección
// @Tags         references
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConditionRequest  true  "Datos de la condición"
// @Success      201   {object}  dto.ConditionResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/conditions [post]
func (h *ReferenceHandler) CreateCondition(c *fiber.Ctx) error {
	var in dto.CreateConditionRequest
	if ok, resp := parseBody(c, &in); !ok {
		return resp
	}
	out, err := h.conditionUC.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListConditions godoc
// @Summary      Listar condiciones de inspección
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConditionResponse
// @Router       /api/conditions [get]
func (h *ReferenceHandler) ListConditions(c *fiber.Ctx) error {
	out, err := h.conditionUC.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetCondition godoc
// @Summary      Obtener condición por ID
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la condición"
// @Success      200  {object}  dto.ConditionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/conditions/{id} [get]
func (h *ReferenceHandler) GetCondition(c *fiber.Ctx) error {
	out, err := h.conditionUC.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "condición no encontrada"})
	}
	return c.JSON(out)
}
