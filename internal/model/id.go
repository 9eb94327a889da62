package model

import (
	"regexp"

	apperrors "community-site-api/pkg/app_errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidID reports whether s is syntactically a store identifier:
// exactly 24 hexadecimal characters.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}

// ParseID validates the identifier format and converts it to an ObjectID.
// A malformed id is a client error and never reaches the store.
func ParseID(s string) (primitive.ObjectID, error) {
	if !IsValidID(s) {
		return primitive.NilObjectID, apperrors.ErrInvalidID
	}
	return primitive.ObjectIDFromHex(s)
}
