// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// CapacidadError is the envelope for overbooking rejections. It always carries
// the exact seat numbers so the frontend can render "solo quedan N asientos".
type CapacidadError struct {
	Detail      string `json:"detail"`
	Capacidad   int    `json:"capacidad"`
	Ocupados    int    `json:"ocupados"`
	Solicitados int    `json:"solicitados"`
	Disponibles int    `json:"disponibles"`
}
