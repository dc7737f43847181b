package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	"github.com/oksasatya/go-mongo-shop/internal/domain/repository"
)

func NewUserRepository(db *mongo.Database) *Collection[entity.User] {
	return NewCollection[entity.User](db, repository.UserCollection)
}

func NewProductRepository(db *mongo.Database) *Collection[entity.Product] {
	return NewCollection[entity.Product](db, repository.ProductCollection)
}

func NewOrderRepository(db *mongo.Database) *Collection[entity.Order] {
	return NewCollection[entity.Order](db, repository.OrderCollection)
}

func NewReviewRepository(db *mongo.Database) *Collection[entity.Review] {
	return NewCollection[entity.Review](db, repository.ReviewCollection)
}

func NewCardRepository(db *mongo.Database) *Collection[entity.Card] {
	return NewCollection[entity.Card](db, repository.CardCollection)
}

var (
	_ repository.UserRepository    = (*Collection[entity.User])(nil)
	_ repository.ProductRepository = (*Collection[entity.Product])(nil)
	_ repository.OrderRepository   = (*Collection[entity.Order])(nil)
	_ repository.ReviewRepository  = (*Collection[entity.Review])(nil)
	_ repository.CardRepository    = (*Collection[entity.Card])(nil)
)
