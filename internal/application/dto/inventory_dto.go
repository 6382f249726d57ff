package dto

import "time"

// StockMovementRequest body para POST /api/products/:id/stock.
// Quantity es puntero para distinguir "ausente" de cero.
type StockMovementRequest struct {
	Quantity     *int   `json:"quantity"`
	MovementType string `json:"movementType"`
	Reason       string `json:"reason"`
}

// MovementResponse salida de un movimiento con nombre y SKU del producto resueltos.
type MovementResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku"`
	Quantity     int       `json:"quantity"`
	MovementType string    `json:"movement_type"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}
