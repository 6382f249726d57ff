package dto

// ErrorResponse cuerpo de error HTTP. Code discrimina el tipo de fallo
// (VALIDATION, DUPLICATE, NOT_FOUND, INSUFFICIENT_STOCK, INTERNAL).
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse confirmación sin payload (ej. delete).
type MessageResponse struct {
	Message string `json:"message"`
}
