package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Review struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email  string             `json:"email,omitempty" bson:"email,omitempty"`
	Fields Attributes         `json:"-" bson:",inline"`
}

func (r *Review) SetID(id primitive.ObjectID) { r.ID = id }

func (r Review) MarshalJSON() ([]byte, error) {
	type plain Review
	return marshalFlat(plain(r), r.Fields)
}

func (r *Review) UnmarshalJSON(data []byte) error {
	type plain Review
	var p plain
	extra, err := unmarshalFlat(data, &p, "_id", "email")
	if err != nil {
		return err
	}
	*r = Review(p)
	r.Fields = extra
	return nil
}
