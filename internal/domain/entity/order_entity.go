package entity

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
	OrderShipped OrderStatus = "shipped"
)

// Order references its user and product by copied values only.
type Order struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	ProductID string             `json:"product_id,omitempty" bson:"product_id,omitempty"`
	Status    OrderStatus        `json:"status" bson:"status"`
	Fields    Attributes         `json:"-" bson:",inline"`
}

func (o *Order) SetID(id primitive.ObjectID) { o.ID = id }

func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order
	return marshalFlat(plain(o), o.Fields)
}

// UnmarshalJSON drops a status that is not a JSON string; the server assigns status on every write.
func (o *Order) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if st, ok := raw["status"]; ok {
		var s string
		if json.Unmarshal(st, &s) != nil {
			delete(raw, "status")
			b, err := json.Marshal(raw)
			if err != nil {
				return err
			}
			data = b
		}
	}

	type plain Order
	var p plain
	extra, err := unmarshalFlat(data, &p, "_id", "email", "product_id", "status")
	if err != nil {
		return err
	}
	*o = Order(p)
	o.Fields = extra
	return nil
}
