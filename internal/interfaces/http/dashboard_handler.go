package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/upl-snipe/partner-api/internal/application/analytics"
)

// DashboardHandler expone las estadísticas del panel administrativo.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStatistics godoc
// @Summary      Estadísticas del embudo de solicitudes y del parque de franquicias
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardStatisticsDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/statistics [get]
func (h *DashboardHandler) GetStatistics(c *fiber.Ctx) error {
	out, err := h.uc.GetStatistics(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
