package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter is a conjunction of exact-match field predicates. An empty filter matches every document.
type Filter map[string]any

func ByID(id primitive.ObjectID) Filter { return Filter{"_id": id} }

func ByEmail(email string) Filter { return Filter{"email": email} }

func ByProductID(productID string) Filter { return Filter{"product_id": productID} }

// Patch describes an update: Set is applied on every match, SetOnInsert only when an upsert creates the document.
type Patch struct {
	Set         map[string]any
	SetOnInsert map[string]any
}

type UpdateOptions struct {
	Upsert bool
}

type InsertManyResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	InsertedCount int   `json:"insertedCount"`
	InsertedIDs   []any `json:"insertedIds"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Repository is the access contract shared by every record kind.
// Absent records are returned as nil with a nil error.
type Repository[T any] interface {
	Find(ctx context.Context, filter Filter) ([]T, error)
	FindOne(ctx context.Context, filter Filter) (*T, error)
	// FindByID fails with a malformed identifier error when id is not a valid ObjectID hex string.
	FindByID(ctx context.Context, id string) (*T, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	InsertOne(ctx context.Context, doc *T) (*T, error)
	InsertMany(ctx context.Context, docs []T) (*InsertManyResult, error)
	UpdateOne(ctx context.Context, filter Filter, patch Patch, opts UpdateOptions) (*UpdateResult, error)
	DeleteOne(ctx context.Context, filter Filter) (*DeleteResult, error)
	DeleteMany(ctx context.Context, filter Filter) (*DeleteResult, error)
}
