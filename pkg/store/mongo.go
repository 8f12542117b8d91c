package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/composite/pkg/codec"
)

// MongoStore persists documents in a MongoDB collection, for the API
// deployment where graphs outlive a single process.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// mongoDoc is the stored shape: the graph document plus its name key.
type mongoDoc struct {
	Name  string      `bson:"name"`
	Graph codec.Graph `bson:"graph"`
}

// NewMongoStore connects to MongoDB at uri and uses the named database's
// "graphs" collection. The connection is verified with a ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("graphs"),
	}, nil
}

// Save upserts the document under name.
func (s *MongoStore) Save(ctx context.Context, name string, doc codec.Graph) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"name": name},
		mongoDoc{Name: name, Graph: doc},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}

// Load returns the document stored under name.
func (s *MongoStore) Load(ctx context.Context, name string) (codec.Graph, error) {
	var out mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return codec.Graph{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return codec.Graph{}, fmt.Errorf("load %q: %w", name, err)
	}
	return out.Graph, nil
}

// Delete removes the document stored under name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}

// List returns the stored names in sorted order.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.M{"name": 1})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc mongoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		names = append(names, doc.Name)
	}
	return names, cur.Err()
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
