package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anthonyrh/techstore-api/internal/application/dto"
	"github.com/anthonyrh/techstore-api/internal/application/usecase"
	"github.com/anthonyrh/techstore-api/internal/domain"
	"github.com/anthonyrh/techstore-api/internal/domain/repository"
)

// InventoryHandler maneja movimientos de stock y su historial.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica una entrada o salida sobre el producto vía el procedimiento
//
//	update_stock y devuelve el producto actualizado.
//
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.StockMovementRequest  true  "quantity y movementType requeridos"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: "VALIDATION"})
	}
	out, err := h.uc.RegisterMovement(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Campos requeridos: quantity, movementType", Code: "VALIDATION"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Producto no encontrado", Code: "NOT_FOUND"})
		}
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos de inventario
// @Tags         inventory
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        limit      query  int     false  "Máximo de filas"  default(100)
// @Success      200  {array}   dto.MovementResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		ProductID: c.Query("productId"),
		Limit:     c.QueryInt("limit", 100),
	}
	out, err := h.uc.ListMovements(c.Context(), filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
