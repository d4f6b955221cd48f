package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LoginRequest entrada del formulario de login (form o JSON).
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResult salida del caso de uso de login.
type LoginResult struct {
	Token       string `json:"-"`
	UserType    int    `json:"user_type"`
	Destination string `json:"destination"`
}

// ChangeStateRequest cuerpo de PUT /quote/{id}/state.
type ChangeStateRequest struct {
	State int `json:"state"`
}

// ContactResponse enlace de contacto devuelto al responder una cotización.
type ContactResponse struct {
	ContactURL string `json:"contact_url"`
}
