package entity

import "time"

// Document lo implementan todas las entidades persistidas. El ID lo asigna la capa de
// persistencia (hex de un ObjectID) y no forma parte del documento serializado.
type Document interface {
	GetID() string
	SetID(id string)
}

// DocumentPtr restringe un parámetro de tipo a *T cuando *T implementa Document.
type DocumentPtr[T any] interface {
	*T
	Document
}

// Timestamps campos de auditoría mínimos (createdAt/updatedAt).
type Timestamps struct {
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Touch fija UpdatedAt y, si es la primera vez, CreatedAt.
func (t *Timestamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}
