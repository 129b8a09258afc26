// Package storetest provides an in-memory UserStore for handler tests.
// It mirrors the matched/modified semantics of the real collection:
// a filter that misses the user (or nested airdrop) reports matched 0,
// a no-op update reports matched without modified.
package storetest

import (
	"context"
	"time"

	"dropbase/airdrop-api/db"
	"dropbase/airdrop-api/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Fake struct {
	Users map[bson.ObjectID]*model.User

	// Err, when set, is returned by every operation.
	Err error

	// Calls records operation names in order, so tests can assert the
	// store was never touched on a rejected request.
	Calls []string
}

var _ db.UserStore = (*Fake)(nil)

func New() *Fake {
	return &Fake{Users: make(map[bson.ObjectID]*model.User)}
}

// Seed adds a user and returns its generated id.
func (f *Fake) Seed(u *model.User) bson.ObjectID {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	f.Users[u.ID] = u
	return u.ID
}

func (f *Fake) record(op string) { f.Calls = append(f.Calls, op) }

func (f *Fake) findAirdrop(owner, airdropID bson.ObjectID) (*model.User, int) {
	u, ok := f.Users[owner]
	if !ok {
		return nil, -1
	}
	for i := range u.Airdrops {
		if u.Airdrops[i].AirdropID == airdropID {
			return u, i
		}
	}
	return u, -1
}

func (f *Fake) InsertUser(_ context.Context, u *model.User) (bson.ObjectID, error) {
	f.record("InsertUser")
	if f.Err != nil {
		return bson.ObjectID{}, f.Err
	}

	for _, existing := range f.Users {
		if existing.Email == u.Email {
			return bson.ObjectID{}, db.ErrDuplicate
		}
	}

	u.ID = bson.NewObjectID()
	f.Users[u.ID] = u
	return u.ID, nil
}

func (f *Fake) FindByEmail(_ context.Context, email string) (*model.User, error) {
	f.record("FindByEmail")
	if f.Err != nil {
		return nil, f.Err
	}

	for _, u := range f.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, db.ErrNotFound
}

func (f *Fake) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	f.record("FindByID")
	if f.Err != nil {
		return nil, f.Err
	}

	u, ok := f.Users[id]
	if !ok {
		return nil, db.ErrNotFound
	}
	return u, nil
}

func (f *Fake) TouchLastLogin(_ context.Context, id bson.ObjectID) error {
	f.record("TouchLastLogin")
	if f.Err != nil {
		return f.Err
	}

	if u, ok := f.Users[id]; ok {
		u.LastLogin = time.Now()
	}
	return nil
}

func (f *Fake) SetCountdown(_ context.Context, owner bson.ObjectID, seconds, start, end int64) (db.Result, error) {
	f.record("SetCountdown")
	if f.Err != nil {
		return db.Result{}, f.Err
	}

	u, ok := f.Users[owner]
	if !ok {
		return db.Result{}, nil
	}

	u.Time = seconds
	u.CountdownStart = start
	u.CountdownEnd = end
	return db.Result{Matched: 1, Modified: 1}, nil
}

func (f *Fake) PushAirdrop(_ context.Context, owner bson.ObjectID, a *model.Airdrop) (db.Result, error) {
	f.record("PushAirdrop")
	if f.Err != nil {
		return db.Result{}, f.Err
	}

	u, ok := f.Users[owner]
	if !ok {
		return db.Result{}, nil
	}

	u.Airdrops = append(u.Airdrops, *a)
	return db.Result{Matched: 1, Modified: 1}, nil
}

func (f *Fake) ReplaceAirdrop(_ context.Context, owner, airdropID bson.ObjectID, a *model.Airdrop) (db.Result, error) {
	f.record("ReplaceAirdrop")
	if f.Err != nil {
		return db.Result{}, f.Err
	}

	u, i := f.findAirdrop(owner, airdropID)
	if u == nil || i < 0 {
		return db.Result{}, nil
	}

	a.AirdropID = airdropID
	u.Airdrops[i] = *a
	return db.Result{Matched: 1, Modified: 1}, nil
}

func (f *Fake) PullAirdrop(_ context.Context, owner, airdropID bson.ObjectID) (db.Result, error) {
	f.record("PullAirdrop")
	if f.Err != nil {
		return db.Result{}, f.Err
	}

	u, ok := f.Users[owner]
	if !ok {
		return db.Result{}, nil
	}

	for i := range u.Airdrops {
		if u.Airdrops[i].AirdropID == airdropID {
			u.Airdrops = append(u.Airdrops[:i], u.Airdrops[i+1:]...)
			return db.Result{Matched: 1, Modified: 1}, nil
		}
	}
	return db.Result{Matched: 1, Modified: 0}, nil
}

func (f *Fake) PushLink(_ context.Context, owner, airdropID bson.ObjectID, l model.Link) (db.Result, error) {
	f.record("PushLink")
	if f.Err != nil {
		return db.Result{}, f.Err
	}

	u, i := f.findAirdrop(owner, airdropID)
	if u == nil || i < 0 {
		return db.Result{}, nil
	}

	u.Airdrops[i].Links = append(u.Airdrops[i].Links, l)
	return db.Result{Matched: 1, Modified: 1}, nil
}

func (f *Fake) SetLinkFields(_ context.Context, owner, airdropID bson.ObjectID, index int, label, url *string) (db.Result, error) {
	f.record("SetLinkFields")
	if f.Err != nil {
		return db.Result{}, f.Err
	}
	if index < 0 {
		return db.Result{}, db.ErrNegativeIndex
	}

	u, i := f.findAirdrop(owner, airdropID)
	if u == nil || i < 0 {
		return db.Result{}, nil
	}

	if index >= len(u.Airdrops[i].Links) {
		return db.Result{Matched: 1, Modified: 0}, nil
	}

	if label != nil {
		u.Airdrops[i].Links[index].Label = *label
	}
	if url != nil {
		u.Airdrops[i].Links[index].URL = *url
	}
	return db.Result{Matched: 1, Modified: 1}, nil
}

func (f *Fake) DeleteLink(_ context.Context, owner, airdropID bson.ObjectID, index int) (db.Result, error) {
	f.record("DeleteLink")
	if f.Err != nil {
		return db.Result{}, f.Err
	}
	if index < 0 {
		return db.Result{}, db.ErrNegativeIndex
	}

	u, i := f.findAirdrop(owner, airdropID)
	if u == nil || i < 0 {
		return db.Result{}, nil
	}

	links := u.Airdrops[i].Links
	if index >= len(links) {
		return db.Result{Matched: 1, Modified: 0}, nil
	}

	u.Airdrops[i].Links = append(links[:index], links[index+1:]...)
	return db.Result{Matched: 1, Modified: 1}, nil
}

func (f *Fake) SetNote(_ context.Context, owner, airdropID bson.ObjectID, totalSpend, note string) (db.Result, error) {
	f.record("SetNote")
	if f.Err != nil {
		return db.Result{}, f.Err
	}

	u, i := f.findAirdrop(owner, airdropID)
	if u == nil || i < 0 {
		return db.Result{}, nil
	}

	u.Airdrops[i].TotalSpend = totalSpend
	u.Airdrops[i].AdditionalNote = note
	return db.Result{Matched: 1, Modified: 1}, nil
}

func (f *Fake) SetSupport(_ context.Context, owner, airdropID bson.ObjectID, support bool) (db.Result, error) {
	f.record("SetSupport")
	if f.Err != nil {
		return db.Result{}, f.Err
	}

	u, i := f.findAirdrop(owner, airdropID)
	if u == nil || i < 0 {
		return db.Result{}, nil
	}

	changed := u.Airdrops[i].Support != support
	u.Airdrops[i].Support = support

	res := db.Result{Matched: 1}
	if changed {
		res.Modified = 1
	}
	return res, nil
}
