package validators

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrIDEmpty   = errors.New("no id provided")
	ErrIDInvalid = errors.New("invalid id format")
)

// ObjectIDValidator parses a client-supplied identifier into an
// ObjectID. Anything that is not a 24-char hex token is rejected here,
// before the value can reach a query filter, so a crafted id can never
// be interpreted as a query operator by the store.
func ObjectIDValidator(s string) (bson.ObjectID, error) {
	if s == "" {
		return bson.ObjectID{}, ErrIDEmpty
	}

	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, ErrIDInvalid
	}

	return id, nil
}
