package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/nexus-inventory/internal/application/analytics"
	"github.com/jhoicas/nexus-inventory/internal/application/dto"
)

// AnalyticsHandler maneja la analítica de ventas.
type AnalyticsHandler struct {
	uc *appanalytics.SalesUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.SalesUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetSalesAnalytics godoc
// @Summary      Analítica de ventas del año
// @Description  Ingreso mensual (Jan-Dec), participación por categoría y productos más vendidos.
// @Description  Las facturas canceladas no cuentan.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año (default: actual)"
// @Success      200  {object}  dto.SalesAnalyticsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/sales/analytics [get]
func (h *AnalyticsHandler) GetSalesAnalytics(c *fiber.Ctx) error {
	var req dto.SalesAnalyticsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_FIELD", Message: "year debe ser un entero", Field: "year",
		})
	}
	report, err := h.uc.GetSalesAnalytics(c.UserContext(), req.Year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
