package memory

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/bsonutil"
)

// Collection es un almacén de documentos en memoria con la misma semántica que el adaptador
// de MongoDB: ids ObjectID, documentos serializados en BSON e índices únicos sin distinción
// de mayúsculas que se comprueban dentro del mismo lock que la escritura.
type Collection[T any, P entity.DocumentPtr[T]] struct {
	name   string
	unique []string

	mu   sync.RWMutex
	ids  []string // orden de inserción
	docs map[string]bson.Raw
}

// NewCollection crea una colección vacía con índices únicos sobre los campos indicados.
func NewCollection[T any, P entity.DocumentPtr[T]](name string, unique ...string) *Collection[T, P] {
	return &Collection[T, P]{
		name:   name,
		unique: unique,
		docs:   make(map[string]bson.Raw),
	}
}

// Find devuelve todos los documentos en orden de inserción.
func (c *Collection[T, P]) Find(ctx context.Context) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*T, 0, len(c.ids))
	for _, id := range c.ids {
		doc, err := c.decode(id, c.docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// FindByID obtiene un documento por id.
func (c *Collection[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	raw, ok := c.docs[key]
	if !ok {
		return nil, nil
	}
	return c.decode(key, raw)
}

// FindOneBy devuelve el primer documento cuyo campo coincide sin distinguir mayúsculas.
func (c *Collection[T, P]) FindOneBy(ctx context.Context, field, value string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	fold := cases.Fold()
	want := fold.String(value)
	for _, id := range c.ids {
		raw := c.docs[id]
		if s, ok := lookupString(raw, field); ok && fold.String(s) == want {
			return c.decode(id, raw)
		}
	}
	return nil, nil
}

// Insert asigna un id nuevo y guarda el documento.
func (c *Collection[T, P]) Insert(ctx context.Context, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := bsonutil.Marshal(doc)
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.name, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkUnique(raw, ""); err != nil {
		return err
	}
	id := primitive.NewObjectID().Hex()
	c.docs[id] = raw
	c.ids = append(c.ids, id)
	P(doc).SetID(id)
	return nil
}

// UpdateByID reemplaza el documento completo (el id no cambia).
func (c *Collection[T, P]) UpdateByID(ctx context.Context, id string, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := parseID(id)
	if err != nil {
		return err
	}
	raw, err := bsonutil.Marshal(doc)
	if err != nil {
		return fmt.Errorf("update %s: %w", c.name, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[key]; !ok {
		return domain.ErrNotFound
	}
	if err := c.checkUnique(raw, key); err != nil {
		return err
	}
	c.docs[key] = raw
	P(doc).SetID(key)
	return nil
}

// DeleteByID elimina el documento y devuelve su último estado.
func (c *Collection[T, P]) DeleteByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.docs[key]
	if !ok {
		return nil, nil
	}
	doc, err := c.decode(key, raw)
	if err != nil {
		return nil, err
	}
	delete(c.docs, key)
	for i, existing := range c.ids {
		if existing == key {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
	return doc, nil
}

// DeleteAll vacía la colección.
func (c *Collection[T, P]) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = nil
	c.docs = make(map[string]bson.Raw)
	return nil
}

// ExistsBy indica si otro documento tiene el mismo valor en field.
func (c *Collection[T, P]) ExistsBy(ctx context.Context, field, value, excludeID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.exists(field, value, normalizeID(excludeID)), nil
}

// Len número de documentos (tests).
func (c *Collection[T, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.ids)
}

// checkUnique se llama con el lock de escritura tomado.
func (c *Collection[T, P]) checkUnique(raw bson.Raw, excludeID string) error {
	for _, field := range c.unique {
		value, ok := lookupString(raw, field)
		if !ok {
			continue
		}
		if c.exists(field, value, excludeID) {
			return &domain.DuplicateKeyError{Collection: c.name, Field: field}
		}
	}
	return nil
}

func (c *Collection[T, P]) exists(field, value, excludeID string) bool {
	fold := cases.Fold()
	want := fold.String(value)
	for id, raw := range c.docs {
		if id == excludeID {
			continue
		}
		if s, ok := lookupString(raw, field); ok && fold.String(s) == want {
			return true
		}
	}
	return false
}

func (c *Collection[T, P]) decode(id string, raw bson.Raw) (*T, error) {
	doc := new(T)
	if err := bsonutil.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}
	P(doc).SetID(id)
	return doc, nil
}

func lookupString(raw bson.Raw, field string) (string, bool) {
	v, err := raw.LookupErr(field)
	if err != nil {
		return "", false
	}
	return v.StringValueOK()
}

func parseID(id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", domain.ErrInvalidID
	}
	return oid.Hex(), nil
}

func normalizeID(id string) string {
	if key, err := parseID(id); err == nil {
		return key
	}
	return id
}
