package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/usecase"
)

// DashboardHandler maneja los endpoints de stats y log de actividad.
type DashboardHandler struct {
	stats    *usecase.StatsUseCase
	activity *usecase.ActivityUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(stats *usecase.StatsUseCase, activity *usecase.ActivityUseCase) *DashboardHandler {
	return &DashboardHandler{stats: stats, activity: activity}
}

// GetStats godoc
// @Summary      Conteos globales (almacenes, pallets, bins, SKUs)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	out, err := h.stats.GetStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetActivity godoc
// @Summary      Log de actividad, más reciente primero
// @Tags         dashboard
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ActivityResponse
// @Router       /api/activity [get]
func (h *DashboardHandler) GetActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", usecase.DefaultActivityLimit)
	offset := c.QueryInt("offset", 0)
	out, err := h.activity.Recent(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
