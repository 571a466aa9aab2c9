package catalog

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound means the id is well-formed but no record exists.
	ErrNotFound = errors.New("catalog: not found")
	// ErrInvalidID means the id is not a valid ObjectID hex string.
	// It must be returned before any store round-trip.
	ErrInvalidID = errors.New("catalog: invalid id")
)

// ParseID validates the id format up front so malformed ids can be
// rejected without touching the store.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
