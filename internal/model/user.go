// Package model contains the documents stored in the users collection
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a top-level document in the users collection. Everything a
// user owns (countdown state, airdrop entries) lives inside it, so every
// mutation in the app is a single-document update.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"userId"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	LastLogin    time.Time     `bson:"lastLogin" json:"lastLogin"`

	// Countdown state. End is always Start + Time*1000, set together
	// in one update.
	Time           int64 `bson:"time,omitempty" json:"time,omitempty"`
	CountdownStart int64 `bson:"countdownStart,omitempty" json:"countdownStart,omitempty"`
	CountdownEnd   int64 `bson:"countdownEnd,omitempty" json:"countdownEnd,omitempty"`

	Airdrops []Airdrop `bson:"additionalAirdrop,omitempty" json:"additionalAirdrop,omitempty"`
}
