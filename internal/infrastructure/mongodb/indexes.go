package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// caseInsensitive collation usada por los índices únicos y por las búsquedas de unicidad.
// Con strength 2 "Juan@Mail.com" y "juan@mail.com" se consideran iguales.
var caseInsensitive = &options.Collation{Locale: "es", Strength: 2}

const uniqueIndexPrefix = "uniq_"

type uniqueIndex struct {
	collection string
	field      string
}

var uniqueIndexes = []uniqueIndex{
	{entity.AutoCollection, entity.AutoFieldNumeroSerie},
	{entity.ClienteCollection, entity.ClienteFieldEmail},
	{entity.VendedorCollection, entity.VendedorFieldEmail},
	{entity.VendedorCollection, entity.VendedorFieldCodigoEmpleado},
	{entity.ConcesionariaCollection, entity.ConcesionariaFieldNombre},
	{entity.UsuarioCollection, entity.UsuarioFieldEmail},
}

// EnsureIndexes crea (idempotente) los índices únicos. La validación previa de los casos de
// uso no basta ante escrituras concurrentes: estos índices son la garantía real.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range uniqueIndexes {
		model := mongo.IndexModel{
			Keys: bson.D{{Key: idx.field, Value: 1}},
			Options: options.Index().
				SetName(uniqueIndexPrefix + idx.field).
				SetUnique(true).
				SetCollation(caseInsensitive),
		}
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("crear índice %s.%s: %w", idx.collection, idx.field, err)
		}
	}
	return nil
}
