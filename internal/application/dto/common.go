package dto

// ErrorResponse cuerpo de error HTTP. Error solo se rellena fuera de producción.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse respuesta que solo lleva un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse respuesta de la ruta raíz.
type StatusResponse struct {
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
