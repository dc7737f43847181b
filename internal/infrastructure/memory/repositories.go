package memory

import (
	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	"github.com/oksasatya/go-mongo-shop/internal/domain/repository"
)

func NewUserRepository() *Collection[entity.User] {
	return NewCollection[entity.User](repository.UserCollection)
}

func NewProductRepository() *Collection[entity.Product] {
	return NewCollection[entity.Product](repository.ProductCollection)
}

func NewOrderRepository() *Collection[entity.Order] {
	return NewCollection[entity.Order](repository.OrderCollection)
}

func NewReviewRepository() *Collection[entity.Review] {
	return NewCollection[entity.Review](repository.ReviewCollection)
}

func NewCardRepository() *Collection[entity.Card] {
	return NewCollection[entity.Card](repository.CardCollection)
}

var (
	_ repository.UserRepository    = (*Collection[entity.User])(nil)
	_ repository.ProductRepository = (*Collection[entity.Product])(nil)
	_ repository.OrderRepository   = (*Collection[entity.Order])(nil)
	_ repository.ReviewRepository  = (*Collection[entity.Review])(nil)
	_ repository.CardRepository    = (*Collection[entity.Card])(nil)
)
