package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrInsufficientStock es un caso particular de ErrInvalidInput: una salida que dejaría
	// el stock en negativo. errors.Is(err, ErrInvalidInput) también es verdadero.
	ErrInsufficientStock = fmt.Errorf("%w: stock insuficiente", ErrInvalidInput)
)

// Invalid envuelve ErrInvalidInput con un detalle legible para el cliente.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
