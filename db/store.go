package db

import (
	"context"
	"errors"

	"dropbase/airdrop-api/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ErrNotFound is returned by lookups when no document matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert collides with a unique index.
var ErrDuplicate = errors.New("duplicate key")

// UserStore is everything the handlers need from the users collection.
// Kept as an interface so handler tests can run against a fake.
type UserStore interface {
	InsertUser(ctx context.Context, u *model.User) (bson.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	TouchLastLogin(ctx context.Context, id bson.ObjectID) error

	SetCountdown(ctx context.Context, owner bson.ObjectID, seconds, start, end int64) (Result, error)

	PushAirdrop(ctx context.Context, owner bson.ObjectID, a *model.Airdrop) (Result, error)
	ReplaceAirdrop(ctx context.Context, owner, airdropID bson.ObjectID, a *model.Airdrop) (Result, error)
	PullAirdrop(ctx context.Context, owner, airdropID bson.ObjectID) (Result, error)

	PushLink(ctx context.Context, owner, airdropID bson.ObjectID, l model.Link) (Result, error)
	SetLinkFields(ctx context.Context, owner, airdropID bson.ObjectID, index int, label, url *string) (Result, error)
	DeleteLink(ctx context.Context, owner, airdropID bson.ObjectID, index int) (Result, error)

	SetNote(ctx context.Context, owner, airdropID bson.ObjectID, totalSpend, note string) (Result, error)
	SetSupport(ctx context.Context, owner, airdropID bson.ObjectID, support bool) (Result, error)
}

// Store is the MongoDB-backed UserStore.
type Store struct {
	client *mongo.Client
	users  *mongo.Collection
}

var _ UserStore = (*Store)(nil)
