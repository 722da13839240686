package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/bsonutil"
	"github.com/jhoicas/Concesionaria-api/pkg/config"
)

// Client conexión compartida por todos los repositorios durante la vida del proceso.
type Client struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// Connect abre la conexión, verifica con un ping y devuelve el cliente listo para usar.
// Quien llama es responsable de invocar Disconnect.
func Connect(ctx context.Context, cfg config.DBConfig) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURL).
		SetRegistry(bsonutil.Registry).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	return &Client{
		client:  client,
		db:      client.Database(cfg.Name),
		timeout: cfg.Timeout,
	}, nil
}

// Database base de datos configurada.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Ping comprueba que el servidor responde. Lo usa la ruta raíz para informar el estado.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.client.Ping(ctx, readpref.Primary())
}

// Disconnect libera las conexiones del pool.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("desconectar MongoDB: %w", err)
	}
	return nil
}
