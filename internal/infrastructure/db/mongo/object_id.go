package mongo

import "go.mongodb.org/mongo-driver/bson/primitive"

// ObjectIDValidator checks that a raw identifier is well-formed ObjectID hex
// before any query runs, so a malformed id is a client error and never a
// driver fault.
type ObjectIDValidator struct{}

func NewObjectIDValidator() ObjectIDValidator {
	return ObjectIDValidator{}
}

func (ObjectIDValidator) IsValid(raw string) bool {
	return primitive.IsValidObjectID(raw)
}
