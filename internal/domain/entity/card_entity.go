package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Card is a question/answer flashcard.
type Card struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Question  string             `json:"question,omitempty" bson:"question,omitempty"`
	Answer    string             `json:"answer" bson:"answer" binding:"required"`
	Tags      []string           `json:"tags" bson:"tags"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

func (c *Card) SetID(id primitive.ObjectID) { c.ID = id }
