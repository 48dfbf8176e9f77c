package dto

// ErrorResponse cuerpo de error HTTP de la consola.
// Redirect solo se incluye cuando la sesión no está autorizada: la UI debe
// navegar a esa ruta y descartar cualquier dato parcial, sin mostrar diálogo.
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}
