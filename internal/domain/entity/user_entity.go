package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role represents an authorization role
type Role string

const (
	RoleDefault Role = "default"
	RoleAdmin   Role = "admin"
)

// User is keyed by email; everything beyond role and payment state is free-form profile data.
type User struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	Role       Role               `json:"role,omitempty" bson:"role,omitempty"`
	IsPaidUser bool               `json:"isPaidUser" bson:"isPaidUser"`
	Profile    Attributes         `json:"-" bson:",inline"`
}

// IsAdmin reports whether the stored role is admin. A nil user is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return marshalFlat(plain(u), u.Profile)
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	extra, err := unmarshalFlat(data, &p, "_id", "email", "role", "isPaidUser")
	if err != nil {
		return err
	}
	*u = User(p)
	u.Profile = extra
	return nil
}
