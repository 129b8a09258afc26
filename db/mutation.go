package db

import (
	"context"
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNegativeIndex is returned by the link path builder when an
// out-of-range position is requested.
var ErrNegativeIndex = errors.New("link index must not be negative")

// Result classifies the outcome of a single atomic update. The filter
// matching nothing, matching without changing anything, and actually
// changing a document are three different answers and the handlers map
// each one to a different response.
type Result struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

// Found reports whether the filter matched a parent document at all.
func (r Result) Found() bool { return r.Matched > 0 }

// Changed reports whether the update actually modified the document.
func (r Result) Changed() bool { return r.Modified > 0 }

// ownerFilter pins a mutation to exactly one user document.
func ownerFilter(owner bson.ObjectID) bson.M {
	return bson.M{"_id": owner}
}

// airdropFilter pins a mutation to one user and one nested airdrop. The
// positional operator in the update then targets the first (and, since
// airdropId is unique within the parent, the only) matching element.
func airdropFilter(owner, airdropID bson.ObjectID) bson.M {
	return bson.M{
		"_id":                         owner,
		"additionalAirdrop.airdropId": airdropID,
	}
}

// linkPath builds the nested path for an index-addressed link update.
// The index is validated here so a hostile value can never be spliced
// into a field path.
func linkPath(index int, field string) (string, error) {
	if index < 0 {
		return "", ErrNegativeIndex
	}

	p := "additionalAirdrop.$.additionalLinks." + strconv.Itoa(index)
	if field != "" {
		p += "." + field
	}

	return p, nil
}

// mutate runs exactly one atomic update and classifies the outcome.
// Every mutation in the store funnels through here.
func (s *Store) mutate(ctx context.Context, filter, update bson.M) (Result, error) {
	res, err := s.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return Result{}, err
	}

	return Result{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}
