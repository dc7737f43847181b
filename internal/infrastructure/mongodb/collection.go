package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	"github.com/oksasatya/go-mongo-shop/internal/domain/repository"
)

var errEmptyPatch = errors.New("update patch is empty")

type identifiable interface {
	SetID(id primitive.ObjectID)
}

// Collection implements repository.Repository on top of a single MongoDB collection.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

func (c *Collection[T]) wrap(err error, op string) error {
	return errors.Wrapf(err, "%s.%s", c.coll.Name(), op)
}

func toBSON(f repository.Filter) bson.M {
	if f == nil {
		return bson.M{}
	}
	return bson.M(f)
}

func (c *Collection[T]) Find(ctx context.Context, filter repository.Filter) ([]T, error) {
	cur, err := c.coll.Find(ctx, toBSON(filter))
	if err != nil {
		return nil, c.wrap(err, "find")
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, c.wrap(err, "find")
	}
	return out, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter repository.Filter) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, toBSON(filter)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, c.wrap(err, "findOne")
	}
	return &doc, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, c.wrap(err, "findById")
	}
	return c.FindOne(ctx, repository.ByID(oid))
}

func (c *Collection[T]) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, c.wrap(err, "count")
	}
	return n, nil
}

func (c *Collection[T]) InsertOne(ctx context.Context, doc *T) (*T, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, c.wrap(err, "insertOne")
	}
	if s, ok := any(doc).(identifiable); ok {
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			s.SetID(oid)
		}
	}
	return doc, nil
}

func (c *Collection[T]) InsertMany(ctx context.Context, docs []T) (*repository.InsertManyResult, error) {
	if len(docs) == 0 {
		return &repository.InsertManyResult{Acknowledged: true, InsertedIDs: []any{}}, nil
	}
	batch := make([]any, 0, len(docs))
	for i := range docs {
		batch = append(batch, &docs[i])
	}
	res, err := c.coll.InsertMany(ctx, batch)
	if err != nil {
		return nil, c.wrap(err, "insertMany")
	}
	for i, id := range res.InsertedIDs {
		if s, ok := any(&docs[i]).(identifiable); ok {
			if oid, ok := id.(primitive.ObjectID); ok {
				s.SetID(oid)
			}
		}
	}
	return &repository.InsertManyResult{
		Acknowledged:  true,
		InsertedCount: len(res.InsertedIDs),
		InsertedIDs:   res.InsertedIDs,
	}, nil
}

func (c *Collection[T]) UpdateOne(ctx context.Context, filter repository.Filter, patch repository.Patch, opts repository.UpdateOptions) (*repository.UpdateResult, error) {
	update := bson.M{}
	if len(patch.Set) > 0 {
		update["$set"] = patch.Set
	}
	if len(patch.SetOnInsert) > 0 {
		update["$setOnInsert"] = patch.SetOnInsert
	}
	if len(update) == 0 {
		return nil, c.wrap(errEmptyPatch, "updateOne")
	}

	res, err := c.coll.UpdateOne(ctx, toBSON(filter), update, options.Update().SetUpsert(opts.Upsert))
	if err != nil {
		return nil, c.wrap(err, "updateOne")
	}
	return &repository.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (c *Collection[T]) DeleteOne(ctx context.Context, filter repository.Filter) (*repository.DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return nil, c.wrap(err, "deleteOne")
	}
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (c *Collection[T]) DeleteMany(ctx context.Context, filter repository.Filter) (*repository.DeleteResult, error) {
	res, err := c.coll.DeleteMany(ctx, toBSON(filter))
	if err != nil {
		return nil, c.wrap(err, "deleteMany")
	}
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
