package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/gallery"
)

const (
	defaultDatabase   = "mosaic"
	layoutsCollection = "layouts"
)

// MongoStore persists layout documents in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig holds MongoDB connection configuration.
type MongoConfig struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database is the database name. Defaults to "mosaic".
	Database string
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "mongodb URI is required")
	}
	if cfg.Database == "" {
		cfg.Database = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to reach mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(layoutsCollection),
	}, nil
}

// Save stores a document, assigning a UUID when needed.
func (s *MongoStore) Save(ctx context.Context, doc gallery.LayoutDocument) (gallery.LayoutDocument, error) {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}

	filter := bson.M{"_id": doc.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return gallery.LayoutDocument{}, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to save layout")
	}
	return doc, nil
}

// Get retrieves a document by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (gallery.LayoutDocument, error) {
	var doc gallery.LayoutDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return gallery.LayoutDocument{}, notFound(id)
	}
	if err != nil {
		return gallery.LayoutDocument{}, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to load layout")
	}
	return doc, nil
}

// List returns all stored documents.
func (s *MongoStore) List(ctx context.Context) ([]gallery.LayoutDocument, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to list layouts")
	}

	var docs []gallery.LayoutDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to decode layouts")
	}
	return docs, nil
}

// Delete removes a document by ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "failed to delete layout")
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects the MongoDB client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
