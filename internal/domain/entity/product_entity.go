package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product categories used by the catalog seed.
const (
	CategoryLaptop = "laptop"
	CategoryCamera = "camera"
	CategoryDrone  = "drone"
)

type Product struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" binding:"required"`
	Desc        string             `json:"desc,omitempty" bson:"desc,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Price       *float64           `json:"price" bson:"price" binding:"required,gte=0"`
	Rating      *float64           `json:"rating" bson:"rating" binding:"required"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Comments    []any              `json:"comments" bson:"comments"`
}

func (p *Product) SetID(id primitive.ObjectID) { p.ID = id }
