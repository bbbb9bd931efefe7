package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-manager/internal/application/analytics"
	"github.com/jhoicas/stock-manager/internal/domain"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
)

// DashboardHandler KPIs y widgets del dashboard.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	err errorResponder
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, errs errorResponder) *DashboardHandler {
	return &DashboardHandler{uc: uc, err: errs}
}

// Stats godoc
// @Summary      KPIs del dashboard
// @Tags         dashboard
// @Produce      json
// @Param        date  query  string  false  "Fecha de referencia YYYY-MM-DD (por defecto hoy)"
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	asOf, err := asOfDate(c)
	if err != nil {
		return h.err.write(c, err)
	}
	out, err := h.uc.Stats(c.UserContext(), asOf)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

// Widgets godoc
// @Summary      Últimos movimientos, productos en alerta y top por cantidad
// @Tags         dashboard
// @Produce      json
// @Param        limit  query  int  false  "Filas por widget"  default(5)
// @Success      200  {object}  dto.DashboardWidgetsResponse
// @Router       /api/dashboard/widgets [get]
func (h *DashboardHandler) Widgets(c *fiber.Ctx) error {
	n := c.QueryInt("limit", analytics.DefaultWidgetSize)
	if n > 100 {
		n = 100
	}
	out, err := h.uc.Widgets(c.UserContext(), n)
	if err != nil {
		return h.err.write(c, err)
	}
	return c.JSON(out)
}

func asOfDate(c *fiber.Ctx) (time.Time, error) {
	s := c.Query("date")
	if s == "" {
		return entity.Today(), nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return time.Time{}, domain.Invalid("date inválida, formato esperado YYYY-MM-DD")
	}
	return d, nil
}
