package store

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/azmapper/azmap/pkg/errors"
)

// MongoConfig holds connection parameters for the MongoDB archive.
type MongoConfig struct {
	// URI is the MongoDB connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database to store build records in. Defaults to "azmap".
	Database string

	// Collection name. Defaults to "builds".
	Collection string
}

// MongoArchive stores build records in a MongoDB collection.
type MongoArchive struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoArchive connects to MongoDB and verifies the connection.
func NewMongoArchive(ctx context.Context, cfg MongoConfig) (*MongoArchive, error) {
	if cfg.URI == "" {
		return nil, errors.New(errors.ErrCodeStore, "mongo URI required")
	}
	if cfg.Database == "" {
		cfg.Database = "azmap"
	}
	if cfg.Collection == "" {
		cfg.Collection = "builds"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "mongo connect")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "mongo ping")
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "subscription_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "mongo index")
	}

	return &MongoArchive{client: client, collection: collection}, nil
}

func (m *MongoArchive) Save(ctx context.Context, record *BuildRecord) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := m.collection.ReplaceOne(ctx, bson.M{"_id": record.ID}, record, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "save build %s", record.ID)
	}
	return nil
}

func (m *MongoArchive) Get(ctx context.Context, id string) (*BuildRecord, error) {
	var record BuildRecord
	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get build %s", id)
	}
	return &record, nil
}

func (m *MongoArchive) List(ctx context.Context, subscriptionID string, limit int) ([]*BuildRecord, error) {
	filter := bson.M{}
	if subscriptionID != "" {
		filter["subscription_id"] = subscriptionID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list builds")
	}
	defer cursor.Close(ctx)

	var records []*BuildRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode builds")
	}
	return records, nil
}

func (m *MongoArchive) Delete(ctx context.Context, id string) error {
	if _, err := m.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete build %s", id)
	}
	return nil
}

func (m *MongoArchive) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

var _ Archive = (*MongoArchive)(nil)
