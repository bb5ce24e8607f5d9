package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BruksfildServices01/barbershop-api/internal/store"
)

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}

// findAll runs a full (unpaginated) query and decodes every document.
func findAll[T any](
	ctx context.Context,
	coll *mongo.Collection,
	filter any,
	opts ...*options.FindOptions,
) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// findDocument is findOne for free-form documents.
func findDocument(ctx context.Context, coll *mongo.Collection, filter any) (bson.M, error) {
	doc, err := findOne[bson.M](ctx, coll, filter)
	if err != nil {
		return nil, err
	}
	return *doc, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (*store.InsertResult, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, store.ErrDuplicate
		}
		return nil, err
	}
	return &store.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func updateResult(res *mongo.UpdateResult) *store.UpdateResult {
	return &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
