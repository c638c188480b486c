package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
)

// PalletHandler maneja las peticiones HTTP para Pallet.
type PalletHandler struct {
	uc *usecase.PalletUseCase
}

// NewPalletHandler construye el handler.
func NewPalletHandler(uc *usecase.PalletUseCase) *PalletHandler {
	return &PalletHandler{uc: uc}
}

// List godoc
// @Summary      Listar pallets
// @Tags         pallets
// @Produce      json
// @Success      200  {array}  dto.PalletResponse
// @Router       /api/pallets [get]
func (h *PalletHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pallet con sus bins y almacén
// @Tags         pallets
// @Produce      json
// @Param        id   path  int  true  "ID del pallet"
// @Success      200  {object}  dto.PalletWithBinsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pallets/{id} [get]
func (h *PalletHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pallet no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pallet (número PLT generado)
// @Tags         pallets
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePalletRequest  true  "Datos del pallet"
// @Success      201   {object}  dto.PalletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pallets [post]
func (h *PalletHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePalletRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar pallet (parcial; el número es inmutable)
// @Tags         pallets
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del pallet"
// @Param        body  body  dto.UpdatePalletRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.PalletResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pallets/{id} [put]
func (h *PalletHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.UpdatePalletRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pallet no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pallet
// @Tags         pallets
// @Param        id  path  int  true  "ID del pallet"
// @Success      204
// @Router       /api/pallets/{id} [delete]
func (h *PalletHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
