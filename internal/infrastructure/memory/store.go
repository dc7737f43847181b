package memory

import (
	"context"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	"github.com/oksasatya/go-mongo-shop/internal/domain/repository"
)

var errEmptyPatch = errors.New("update patch is empty")

// Collection is an in-process repository.Repository. Documents are kept in their
// BSON form so field names, inline maps and omitempty behave as they do in MongoDB.
type Collection[T any] struct {
	name string

	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]bson.M
}

func NewCollection[T any](name string) *Collection[T] {
	return &Collection[T]{name: name, docs: make(map[primitive.ObjectID]bson.M)}
}

func (c *Collection[T]) wrap(err error, op string) error {
	return errors.Wrapf(err, "%s.%s", c.name, op)
}

func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromDoc[T any](m bson.M) (*T, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// normalize passes a single value through BSON so it compares equal to stored values.
func normalize(v any) any {
	m, err := toDoc(bson.M{"v": v})
	if err != nil {
		return v
	}
	return m["v"]
}

func matches(doc bson.M, filter repository.Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, normalize(want)) {
			return false
		}
	}
	return true
}

// match returns the ids of matching documents in insertion order. Callers hold the lock.
func (c *Collection[T]) match(filter repository.Filter, limit int) []primitive.ObjectID {
	var ids []primitive.ObjectID
	for _, id := range c.order {
		if matches(c.docs[id], filter) {
			ids = append(ids, id)
			if limit > 0 && len(ids) == limit {
				break
			}
		}
	}
	return ids
}

func (c *Collection[T]) Find(_ context.Context, filter repository.Filter) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range c.match(filter, 0) {
		doc, err := fromDoc[T](c.docs[id])
		if err != nil {
			return nil, c.wrap(err, "find")
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (c *Collection[T]) FindOne(_ context.Context, filter repository.Filter) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := c.match(filter, 1)
	if len(ids) == 0 {
		return nil, nil
	}
	doc, err := fromDoc[T](c.docs[ids[0]])
	if err != nil {
		return nil, c.wrap(err, "findOne")
	}
	return doc, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, c.wrap(err, "findById")
	}
	return c.FindOne(ctx, repository.ByID(oid))
}

func (c *Collection[T]) Count(_ context.Context, filter repository.Filter) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.match(filter, 0))), nil
}

// insert stores m, assigning an id when it has none. Callers hold the write lock.
func (c *Collection[T]) insert(m bson.M) (primitive.ObjectID, error) {
	oid, ok := m["_id"].(primitive.ObjectID)
	if !ok || oid.IsZero() {
		oid = primitive.NewObjectID()
		m["_id"] = oid
	}
	if _, exists := c.docs[oid]; exists {
		return primitive.NilObjectID, errors.Errorf("duplicate key _id %s", oid.Hex())
	}
	c.docs[oid] = m
	c.order = append(c.order, oid)
	return oid, nil
}

func (c *Collection[T]) InsertOne(_ context.Context, doc *T) (*T, error) {
	m, err := toDoc(doc)
	if err != nil {
		return nil, c.wrap(err, "insertOne")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	oid, err := c.insert(m)
	if err != nil {
		return nil, c.wrap(err, "insertOne")
	}
	if s, ok := any(doc).(interface{ SetID(primitive.ObjectID) }); ok {
		s.SetID(oid)
	}
	return doc, nil
}

func (c *Collection[T]) InsertMany(_ context.Context, docs []T) (*repository.InsertManyResult, error) {
	batch := make([]bson.M, 0, len(docs))
	for i := range docs {
		m, err := toDoc(&docs[i])
		if err != nil {
			return nil, c.wrap(err, "insertMany")
		}
		batch = append(batch, m)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]any, 0, len(batch))
	for i, m := range batch {
		oid, err := c.insert(m)
		if err != nil {
			return nil, c.wrap(err, "insertMany")
		}
		if s, ok := any(&docs[i]).(interface{ SetID(primitive.ObjectID) }); ok {
			s.SetID(oid)
		}
		ids = append(ids, oid)
	}
	return &repository.InsertManyResult{Acknowledged: true, InsertedCount: len(ids), InsertedIDs: ids}, nil
}

func (c *Collection[T]) UpdateOne(_ context.Context, filter repository.Filter, patch repository.Patch, opts repository.UpdateOptions) (*repository.UpdateResult, error) {
	if len(patch.Set) == 0 && len(patch.SetOnInsert) == 0 {
		return nil, c.wrap(errEmptyPatch, "updateOne")
	}
	set, err := toDoc(bson.M(patch.Set))
	if err != nil {
		return nil, c.wrap(err, "updateOne")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if ids := c.match(filter, 1); len(ids) > 0 {
		doc := c.docs[ids[0]]
		modified := int64(0)
		for k, v := range set {
			if cur, ok := doc[k]; !ok || !reflect.DeepEqual(cur, v) {
				doc[k] = v
				modified = 1
			}
		}
		return &repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
	}

	if !opts.Upsert {
		return &repository.UpdateResult{Acknowledged: true}, nil
	}

	doc := bson.M{}
	for k, v := range filter {
		doc[k] = normalize(v)
	}
	for k, v := range set {
		doc[k] = v
	}
	onInsert, err := toDoc(bson.M(patch.SetOnInsert))
	if err != nil {
		return nil, c.wrap(err, "updateOne")
	}
	for k, v := range onInsert {
		doc[k] = v
	}
	oid, err := c.insert(doc)
	if err != nil {
		return nil, c.wrap(err, "updateOne")
	}
	return &repository.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: oid}, nil
}

func (c *Collection[T]) delete(filter repository.Filter, limit int) int64 {
	ids := c.match(filter, limit)
	if len(ids) == 0 {
		return 0
	}
	gone := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		delete(c.docs, id)
		gone[id] = struct{}{}
	}
	kept := c.order[:0]
	for _, id := range c.order {
		if _, ok := gone[id]; !ok {
			kept = append(kept, id)
		}
	}
	c.order = kept
	return int64(len(ids))
}

func (c *Collection[T]) DeleteOne(_ context.Context, filter repository.Filter) (*repository.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: c.delete(filter, 1)}, nil
}

func (c *Collection[T]) DeleteMany(_ context.Context, filter repository.Filter) (*repository.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: c.delete(filter, 0)}, nil
}
