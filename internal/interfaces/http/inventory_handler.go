package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
)

// InventoryHandler maneja los movimientos del join bin–SKU.
type InventoryHandler struct {
	uc *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AddSkuToBin godoc
// @Summary      Agregar unidades de un SKU a un bin (acumula si ya existe)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        binId  path  int  true  "ID del bin"
// @Param        body   body  dto.AddSkuToBinRequest  true  "SKU y cantidad"
// @Success      201    {object}  dto.BinSkuResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/bins/{binId}/skus [post]
func (h *InventoryHandler) AddSkuToBin(c *fiber.Ctx) error {
	binID, err := c.ParamsInt("binId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "binId inválido")
	}
	var in dto.AddSkuToBinRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Quantity <= 0 {
		return badRequest(c, "VALIDATION", "quantity debe ser mayor que cero")
	}
	out, err := h.uc.AddSkuToBin(c.Context(), binID, in.SkuID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateQuantity godoc
// @Summary      Fijar la cantidad absoluta de un SKU en un bin
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        binId  path  int  true  "ID del bin"
// @Param        skuId  path  int  true  "ID del SKU"
// @Param        body   body  dto.UpdateBinSkuQuantityRequest  true  "Cantidad nueva"
// @Success      200    {object}  dto.BinSkuResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/bins/{binId}/skus/{skuId} [put]
func (h *InventoryHandler) UpdateQuantity(c *fiber.Ctx) error {
	binID, err := c.ParamsInt("binId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "binId inválido")
	}
	skuID, err := c.ParamsInt("skuId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "skuId inválido")
	}
	var in dto.UpdateBinSkuQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Quantity <= 0 {
		return badRequest(c, "VALIDATION", "quantity debe ser mayor que cero")
	}
	out, err := h.uc.UpdateQuantity(c.Context(), binID, skuID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveSkuFromBin godoc
// @Summary      Retirar un SKU de un bin
// @Tags         inventory
// @Param        binId  path  int  true  "ID del bin"
// @Param        skuId  path  int  true  "ID del SKU"
// @Success      204
// @Router       /api/bins/{binId}/skus/{skuId} [delete]
func (h *InventoryHandler) RemoveSkuFromBin(c *fiber.Ctx) error {
	binID, err := c.ParamsInt("binId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "binId inválido")
	}
	skuID, err := c.ParamsInt("skuId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "skuId inválido")
	}
	if err := h.uc.RemoveSkuFromBin(c.Context(), binID, skuID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
