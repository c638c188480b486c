package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
)

// MaxUploadSize tamaño máximo de una imagen subida (5 MB).
const MaxUploadSize = 5 * 1024 * 1024

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadHandler sube imágenes al blob store y devuelve su URL pública.
type UploadHandler struct {
	store ports.ImageStore
}

// NewUploadHandler construye el handler.
func NewUploadHandler(store ports.ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload godoc
// @Summary      Subir una imagen (png, jpg, jpeg, gif, webp; máx. 5 MB)
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Imagen"
// @Success      201    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "imagen requerida en el campo 'image'")
	}
	if fileHeader.Size > MaxUploadSize {
		return badRequest(c, "FILE_TOO_LARGE", "la imagen supera los 5 MB")
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return badRequest(c, "INVALID_TYPE", "solo se aceptan imágenes png, jpg, jpeg, gif o webp")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "INVALID_FILE", "no se pudo abrir el archivo")
	}
	defer f.Close()

	url, err := h.store.Save(c.Context(), fileHeader.Filename, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{ImageURL: url})
}
