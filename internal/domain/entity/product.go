package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto del catálogo de la tienda.
// CategoryID queda vacío si el producto no tiene categoría asignada; CategoryName
// se resuelve por JOIN en las lecturas y no se persiste.
type Product struct {
	ID           string
	Name         string
	CategoryID   string
	CategoryName string
	Price        decimal.Decimal
	Stock        int
	Description  string
	Brand        string
	Model        string
	SKU          string // único en todo el catálogo
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
