package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/bsonutil"
)

// Repository implementación genérica del puerto repository.Repository sobre una colección.
// El _id es un ObjectID; las entidades lo exponen como hex en su campo ID.
type Repository[T any, P entity.DocumentPtr[T]] struct {
	coll *mongo.Collection
}

// NewRepository construye el adaptador para la colección indicada.
func NewRepository[T any, P entity.DocumentPtr[T]](db *mongo.Database, collection string) *Repository[T, P] {
	return &Repository[T, P]{coll: db.Collection(collection)}
}

// Find lista todos los documentos en orden de creación.
func (r *Repository[T, P]) Find(ctx context.Context) ([]*T, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := make([]*T, 0)
	for cur.Next(ctx) {
		doc, err := decode[T, P](cur.Current)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}

// FindByID obtiene un documento por id; (nil, nil) si no existe.
func (r *Repository[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid}, options.FindOne())
}

// FindOneBy busca por un campo sin distinguir mayúsculas.
func (r *Repository[T, P]) FindOneBy(ctx context.Context, field, value string) (*T, error) {
	return r.findOne(ctx, bson.M{field: value}, options.FindOne().SetCollation(caseInsensitive))
}

func (r *Repository[T, P]) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*T, error) {
	raw, err := r.coll.FindOne(ctx, filter, opts).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find one %s: %w", r.coll.Name(), err)
	}
	return decode[T, P](raw)
}

// Insert persiste un documento nuevo y le asigna el id generado.
func (r *Repository[T, P]) Insert(ctx context.Context, doc *T) error {
	oid := primitive.NewObjectID()
	d, err := toDocument(oid, doc)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.coll.Name(), err)
	}
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return r.translate("insert", err)
	}
	P(doc).SetID(oid.Hex())
	return nil
}

// UpdateByID reemplaza el documento completo conservando el _id.
func (r *Repository[T, P]) UpdateByID(ctx context.Context, id string, doc *T) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	raw, err := bsonutil.Marshal(doc)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.coll.Name(), err)
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, bson.Raw(raw))
	if err != nil {
		return r.translate("update", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	P(doc).SetID(oid.Hex())
	return nil
}

// DeleteByID elimina y devuelve el documento borrado; (nil, nil) si no existía.
func (r *Repository[T, P]) DeleteByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	raw, err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete %s: %w", r.coll.Name(), err)
	}
	return decode[T, P](raw)
}

// DeleteAll vacía la colección (seeder).
func (r *Repository[T, P]) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete all %s: %w", r.coll.Name(), err)
	}
	return nil
}

// ExistsBy consulta con la misma collation que el índice único para poder usarlo.
func (r *Repository[T, P]) ExistsBy(ctx context.Context, field, value, excludeID string) (bool, error) {
	filter := bson.M{field: value}
	if excludeID != "" {
		oid, err := parseID(excludeID)
		if err != nil {
			return false, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetCollation(caseInsensitive).SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("exists %s.%s: %w", r.coll.Name(), field, err)
	}
	return n > 0, nil
}

func (r *Repository[T, P]) translate(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &domain.DuplicateKeyError{Collection: r.coll.Name(), Field: duplicateField(err)}
	}
	return fmt.Errorf("%s %s: %w", op, r.coll.Name(), err)
}

// duplicateField extrae el campo del nombre del índice ("... index: uniq_email ...").
func duplicateField(err error) string {
	msg := err.Error()
	i := strings.Index(msg, "index: "+uniqueIndexPrefix)
	if i < 0 {
		return ""
	}
	rest := msg[i+len("index: "+uniqueIndexPrefix):]
	if end := strings.IndexAny(rest, " :"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

func decode[T any, P entity.DocumentPtr[T]](raw bson.Raw) (*T, error) {
	doc := new(T)
	if err := bsonutil.Unmarshal(raw, doc); err != nil {
		return nil, err
	}
	oid, ok := raw.Lookup("_id").ObjectIDOK()
	if !ok {
		return nil, fmt.Errorf("documento sin _id ObjectID")
	}
	P(doc).SetID(oid.Hex())
	return doc, nil
}

// toDocument serializa doc y antepone el _id.
func toDocument(oid primitive.ObjectID, doc any) (bson.D, error) {
	raw, err := bsonutil.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return append(bson.D{{Key: "_id", Value: oid}}, fields...), nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
