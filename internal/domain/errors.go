package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUnauthorized    = errors.New("sesión no autorizada")
	ErrConfirmRequired = errors.New("la eliminación requiere confirmación explícita")
)

// ValidationError entrada rechazada localmente, antes de cualquier llamada de red.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError construye un ValidationError con el mensaje indicado.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// TransitionError transición de estado rechazada por el ciclo de vida del recurso.
type TransitionError struct {
	Resource string // "order" | "cart_item"
	From     string
	To       string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transición no permitida para %s: %s → %s", e.Resource, e.From, e.To)
}

// ServerError respuesta 4xx/5xx del backend con cuerpo {message}.
// Message se muestra al usuario tal cual llega del servidor.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("backend HTTP %d: %s", e.StatusCode, e.Message)
}

// TransportError fallo de red antes de obtener una respuesta del backend.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "fallo de transporte: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError el backend respondió con un cuerpo JSON que no se pudo parsear.
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("respuesta ilegible del backend (%s): %v", e.Resource, e.Err)
}
func (e *DecodeError) Unwrap() error { return e.Err }
