package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price y Stock son punteros para distinguir "ausente" de cero: stock 0 es válido.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Description string           `json:"description"`
	Brand       string           `json:"brand"`
	Model       string           `json:"model"`
	SKU         string           `json:"sku"`
}

// UpdateProductRequest entrada para actualizar un producto. Todos los campos son
// opcionales: los omitidos conservan su valor actual (status incluido).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Description *string          `json:"description"`
	Brand       *string          `json:"brand"`
	Model       *string          `json:"model"`
	SKU         *string          `json:"sku"`
	Status      *string          `json:"status"`
}

// ProductResponse salida de un producto con la categoría resuelta por nombre.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	SKU         string          `json:"sku"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
