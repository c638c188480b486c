package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
)

// BinHandler maneja las peticiones HTTP para Bin.
type BinHandler struct {
	uc *usecase.BinUseCase
}

// NewBinHandler construye el handler.
func NewBinHandler(uc *usecase.BinUseCase) *BinHandler {
	return &BinHandler{uc: uc}
}

// List godoc
// @Summary      Listar bins con conteo de SKUs
// @Tags         bins
// @Produce      json
// @Success      200  {array}  dto.BinListItemResponse
// @Router       /api/bins [get]
func (h *BinHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener bin con su contenido y pallet
// @Tags         bins
// @Produce      json
// @Param        id   path  int  true  "ID del bin"
// @Success      200  {object}  dto.BinWithSkusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bins/{id} [get]
func (h *BinHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "bin no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear bin (número BIN generado)
// @Tags         bins
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBinRequest  true  "Datos del bin"
// @Success      201   {object}  dto.BinResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bins [post]
func (h *BinHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBinRequest
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
// @Summary      Actualizar bin (parcial; el número es inmutable)
// @Tags         bins
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del bin"
// @Param        body  body  dto.UpdateBinRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.BinResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bins/{id} [put]
func (h *BinHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.UpdateBinRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "bin no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar bin con su contenido
// @Tags         bins
// @Param        id  path  int  true  "ID del bin"
// @Success      204
// @Router       /api/bins/{id} [delete]
func (h *BinHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
