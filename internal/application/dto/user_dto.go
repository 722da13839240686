package dto

import "time"

// RegisterRequest entrada para registrar un usuario (password en texto, se hashea en el caso de uso).
type RegisterRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Nombre    string     `json:"nombre"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
