package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anthonyrh/techstore-api/internal/application/usecase"
)

// ReportHandler reportes de inventario (solo lectura).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Productos con bajo stock
// @Description  Lee la vista low_stock_products; el umbral lo define la vista.
// @Tags         reports
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// InventorySummary godoc
// @Summary      Resumen de inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory-summary [get]
func (h *ReportHandler) InventorySummary(c *fiber.Ctx) error {
	out, err := h.uc.InventorySummary(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
