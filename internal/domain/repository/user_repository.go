package repository

import "github.com/oksasatya/go-mongo-shop/internal/domain/entity"

// Collection names in the document store.
const (
	UserCollection    = "User"
	ProductCollection = "Products"
	OrderCollection   = "Order"
	ReviewCollection  = "Review"
	CardCollection    = "Card"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Repository[entity.User]
}

type ProductRepository interface {
	Repository[entity.Product]
}

type OrderRepository interface {
	Repository[entity.Order]
}

type ReviewRepository interface {
	Repository[entity.Review]
}

type CardRepository interface {
	Repository[entity.Card]
}
