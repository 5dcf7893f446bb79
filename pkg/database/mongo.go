package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/PancyServerManager/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	mongoCollection = "documents"
	mongoDocumentID = "guilds"
)

// storedDocument is the single MongoDB document that holds every guild
type storedDocument struct {
	ID        string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend keeps the whole guild document inside one MongoDB document.
// It preserves the whole-document overwrite semantics of the file backend.
type MongoBackend struct {
	client     *mongo.Client
	collection *mongo.Collection
	dbName     string
	mu         sync.RWMutex
}

// NewMongoBackend connects to MongoDB and verifies the connection
func NewMongoBackend(mongoURL, dbName string) (*MongoBackend, error) {
	logger.System("Intentando conectar a la base de datos...", "DB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Critical("Fallo al conectar con la base de datos.", "DB")
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Critical("Fallo al verificar conexión con la base de datos.", "DB")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Success("Conectado exitosamente a la base de datos.", "DB")

	return &MongoBackend{
		client:     client,
		collection: client.Database(dbName).Collection(mongoCollection),
		dbName:     dbName,
	}, nil
}

// Name describes the backend target
func (m *MongoBackend) Name() string {
	return fmt.Sprintf("mongodb:%s/%s", m.dbName, mongoCollection)
}

// Read loads the stored JSON document
func (m *MongoBackend) Read() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc storedDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": mongoDocumentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Data), nil
}

// Write replaces the stored document, creating it if needed
func (m *MongoBackend) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc := storedDocument{
		ID:        mongoDocumentID,
		Data:      string(data),
		UpdatedAt: time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": mongoDocumentID}, doc, opts)
	return err
}

// Status pings the server and returns a display string
func (m *MongoBackend) Status() (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return "🔴 | Desconectado", false
	}
	return "🟢 | En linea (MongoDB)", true
}

// Close disconnects from MongoDB
func (m *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		return err
	}
	logger.Warn("La base de datos ha sido desconectada", "DB")
	return nil
}
