package dto

// ErrorResponse cuerpo de error HTTP. Fields trae mensajes por campo cuando el
// error es de validación.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
