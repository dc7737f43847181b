package entity

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/oksasatya/go-mongo-shop/internal/domain/errors"
)

// Attributes holds free-form document fields that have no dedicated struct field.
// Stored inline in the document and flattened into the JSON object.
type Attributes map[string]any

// ParseID converts a hex string into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(apperrors.ErrMalformedIdentifier, "parse id %q", hex)
	}
	return id, nil
}

// marshalFlat encodes known and adds every extra key it does not already contain.
func marshalFlat(known any, extra Attributes) ([]byte, error) {
	b, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return json.Marshal(m)
}

// unmarshalFlat decodes data into known and returns the keys known does not declare.
func unmarshalFlat(data []byte, known any, declared ...string) (Attributes, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	for _, k := range declared {
		delete(m, k)
	}
	if len(m) == 0 {
		return nil, nil
	}
	return m, nil
}
