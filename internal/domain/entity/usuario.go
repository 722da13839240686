package entity

// Colección y campos únicos de Usuario.
const (
	UsuarioCollection = "usuarios"
	UsuarioFieldEmail = "email"
)

// UsuarioPasswordMinLen longitud mínima de la contraseña en texto plano.
const UsuarioPasswordMinLen = 6

// Usuario es el principal de autenticación.
type Usuario struct {
	ID           string `bson:"-"`
	Nombre       string `bson:"nombre"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password"` // bcrypt, nunca se devuelve
	Timestamps   `bson:",inline"`
}

func (u *Usuario) GetID() string   { return u.ID }
func (u *Usuario) SetID(id string) { u.ID = id }
