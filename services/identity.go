package services

import (
	apperrors "cms-backend/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// decodeProductID converts an external hex id into the store-native
// ObjectID. It runs before any store access so a malformed id never turns
// into a lookup.
func decodeProductID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.Wrap(apperrors.ErrInvalidProductID, err)
	}
	return oid, nil
}

// encodeProductID produces the external form: 24 lowercase hex characters,
// losslessly decodable back to the ObjectID.
func encodeProductID(id primitive.ObjectID) string {
	return id.Hex()
}
