package http

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
)

// SkuHandler maneja las peticiones HTTP para Sku, incluida la importación
// masiva desde CSV.
type SkuHandler struct {
	uc *usecase.SkuUseCase
}

// NewSkuHandler construye el handler.
func NewSkuHandler(uc *usecase.SkuUseCase) *SkuHandler {
	return &SkuHandler{uc: uc}
}

// List godoc
// @Summary      Listar SKUs
// @Tags         skus
// @Produce      json
// @Success      200  {array}  dto.SkuResponse
// @Router       /api/skus [get]
func (h *SkuHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener SKU con todas sus ubicaciones
// @Tags         skus
// @Produce      json
// @Param        id   path  int  true  "ID del SKU"
// @Success      200  {object}  dto.SkuWithLocationsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [get]
func (h *SkuHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "SKU no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear SKU (número SKU generado)
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSkuRequest  true  "Datos del SKU"
// @Success      201   {object}  dto.SkuResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/skus [post]
func (h *SkuHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSkuRequest
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
// @Summary      Actualizar SKU (parcial; el número es inmutable)
// @Tags         skus
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del SKU"
// @Param        body  body  dto.UpdateSkuRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.SkuResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [put]
func (h *SkuHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.UpdateSkuRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "SKU no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar SKU y retirarlo de todos los bins
// @Tags         skus
// @Param        id  path  int  true  "ID del SKU"
// @Success      204
// @Router       /api/skus/{id} [delete]
func (h *SkuHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar SKUs desde CSV (columnas: name, description)
// @Tags         skus
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      200   {object}  dto.ImportSkusResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/skus/import [post]
func (h *SkuHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "archivo CSV requerido en el campo 'file'")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "INVALID_FILE", "no se pudo abrir el archivo")
	}
	defer f.Close()

	rows, err := parseSkuCSV(f)
	if err != nil {
		return badRequest(c, "INVALID_CSV", err.Error())
	}
	out, err := h.uc.Import(c.Context(), rows)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// parseSkuCSV lee el CSV de importación. La primera fila es cabecera; las
// columnas se resuelven por nombre (name obligatoria, description opcional).
func parseSkuCSV(r io.Reader) ([]dto.ImportSkuRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.New("CSV vacío o ilegible")
	}
	nameIdx, descIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameIdx = i
		case "description":
			descIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, errors.New("el CSV debe tener una columna 'name'")
	}

	var rows []dto.ImportSkuRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := dto.ImportSkuRow{Name: strings.TrimSpace(record[nameIdx])}
		if descIdx >= 0 && descIdx < len(record) {
			row.Description = strings.TrimSpace(record[descIdx])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
