package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides generic document operations for a MongoDB collection.
// Documents are addressed by caller-supplied string IDs stored in _id, so a
// collection behaves like a key-addressed document store.
type Repository[T any] struct {
	collection *mongo.Collection
}

// NewRepository creates a new generic repository
func NewRepository[T any](db *mongo.Database, collectionName string) *Repository[T] {
	return &Repository[T]{
		collection: db.Collection(collectionName),
	}
}

func OpenConnection(uri string, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	return client.Database(database), nil
}

// Get reads the document with the given ID. Returns mongo.ErrNoDocuments if
// absent.
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	var result T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Set writes the full document under the given ID, overwriting any existing
// document with the same ID.
func (r *Repository[T]) Set(ctx context.Context, id string, document T) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, document, opts)
	return err
}

// UpdateFields merges the named fields into the document via $set, leaving
// all other fields untouched. Returns the number of matched documents so
// callers can detect an absent target.
func (r *Repository[T]) UpdateFields(ctx context.Context, id string, fields bson.M) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// UpdateMatched applies an arbitrary update document against an arbitrary
// filter. Used for conditional element updates where the filter pins the
// expected previous state.
func (r *Repository[T]) UpdateMatched(ctx context.Context, filter bson.M, update bson.M, opts ...*options.UpdateOptions) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// Push appends a value to the named array field.
func (r *Repository[T]) Push(ctx context.Context, id string, field string, value interface{}) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{field: value}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// Pull removes every occurrence of a value from the named array field. A
// value that is not present is a no-op, not an error.
func (r *Repository[T]) Pull(ctx context.Context, id string, field string, value interface{}) (int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: value}})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// Delete removes the document with the given ID.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Exists checks if a document with the given ID exists
func (r *Repository[T]) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
