package db

import (
	"context"
	"time"

	"dropbase/airdrop-api/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (s *Store) InsertUser(ctx context.Context, u *model.User) (bson.ObjectID, error) {
	res, err := s.users.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bson.ObjectID{}, ErrDuplicate
		}
		return bson.ObjectID{}, err
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, ErrNotFound
	}

	return id, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User

	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (s *Store) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User

	err := s.users.FindOne(ctx, ownerFilter(id)).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

func (s *Store) TouchLastLogin(ctx context.Context, id bson.ObjectID) error {
	_, err := s.mutate(ctx, ownerFilter(id), bson.M{
		"$set": bson.M{"lastLogin": time.Now()},
	})
	return err
}

// SetCountdown persists the countdown trio in one update so readers
// never observe a start without its matching end.
func (s *Store) SetCountdown(ctx context.Context, owner bson.ObjectID, seconds, start, end int64) (Result, error) {
	return s.mutate(ctx, ownerFilter(owner), bson.M{
		"$set": bson.M{
			"time":           seconds,
			"countdownStart": start,
			"countdownEnd":   end,
		},
	})
}

func (s *Store) PushAirdrop(ctx context.Context, owner bson.ObjectID, a *model.Airdrop) (Result, error) {
	return s.mutate(ctx, ownerFilter(owner), bson.M{
		"$push": bson.M{"additionalAirdrop": a},
	})
}

// ReplaceAirdrop swaps the whole matched sub-document. This is the one
// update in the app that intentionally clobbers fields absent from a.
func (s *Store) ReplaceAirdrop(ctx context.Context, owner, airdropID bson.ObjectID, a *model.Airdrop) (Result, error) {
	a.AirdropID = airdropID

	return s.mutate(ctx, airdropFilter(owner, airdropID), bson.M{
		"$set": bson.M{"additionalAirdrop.$": a},
	})
}

func (s *Store) PullAirdrop(ctx context.Context, owner, airdropID bson.ObjectID) (Result, error) {
	return s.mutate(ctx, ownerFilter(owner), bson.M{
		"$pull": bson.M{
			"additionalAirdrop": bson.M{"airdropId": airdropID},
		},
	})
}

func (s *Store) PushLink(ctx context.Context, owner, airdropID bson.ObjectID, l model.Link) (Result, error) {
	return s.mutate(ctx, airdropFilter(owner, airdropID), bson.M{
		"$push": bson.M{"additionalAirdrop.$.additionalLinks": l},
	})
}

// SetLinkFields updates label and/or url of the link at index in place,
// leaving the other positions untouched.
func (s *Store) SetLinkFields(ctx context.Context, owner, airdropID bson.ObjectID, index int, label, url *string) (Result, error) {
	set := bson.M{}

	if label != nil {
		p, err := linkPath(index, "label")
		if err != nil {
			return Result{}, err
		}
		set[p] = *label
	}

	if url != nil {
		p, err := linkPath(index, "url")
		if err != nil {
			return Result{}, err
		}
		set[p] = *url
	}

	return s.mutate(ctx, airdropFilter(owner, airdropID), bson.M{"$set": set})
}

// DeleteLink removes the link at index in two steps: unset the position,
// then pull the null placeholder out of the array. The two updates are
// individually atomic but not jointly, so a concurrent reader can
// observe the null between them.
func (s *Store) DeleteLink(ctx context.Context, owner, airdropID bson.ObjectID, index int) (Result, error) {
	p, err := linkPath(index, "")
	if err != nil {
		return Result{}, err
	}

	res, err := s.mutate(ctx, airdropFilter(owner, airdropID), bson.M{
		"$unset": bson.M{p: 1},
	})
	if err != nil || !res.Found() {
		return res, err
	}

	_, err = s.mutate(ctx, airdropFilter(owner, airdropID), bson.M{
		"$pull": bson.M{"additionalAirdrop.$.additionalLinks": nil},
	})
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

func (s *Store) SetNote(ctx context.Context, owner, airdropID bson.ObjectID, totalSpend, note string) (Result, error) {
	return s.mutate(ctx, airdropFilter(owner, airdropID), bson.M{
		"$set": bson.M{
			"additionalAirdrop.$.totalSpend":     totalSpend,
			"additionalAirdrop.$.additionalNote": note,
		},
	})
}

func (s *Store) SetSupport(ctx context.Context, owner, airdropID bson.ObjectID, support bool) (Result, error) {
	return s.mutate(ctx, airdropFilter(owner, airdropID), bson.M{
		"$set": bson.M{"additionalAirdrop.$.support": support},
	})
}
