package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Airdrop is a campaign entry nested under a user. The AirdropID is
// generated server-side and is unique within the parent user only.
//
// The Link* fields are stored verbatim as the client sent them. Escaping
// would corrupt the URLs, but it also means they must not be rendered as
// raw HTML by any consumer.
type Airdrop struct {
	AirdropID bson.ObjectID `bson:"airdropId" json:"airdropId"`
	Name      string        `bson:"name" json:"name"`
	Timer     string        `bson:"timer" json:"timer"`

	// Field name kept as stored in existing documents, typo included.
	LinkTelegramPlay     string `bson:"LinkTelegramPlay,omitempty" json:"LinkTelegramPlay,omitempty"`
	LinkWebPlay          string `bson:"LinkWebPlay,omitempty" json:"LinkWebPlay,omitempty"`
	LinkTelegramChannel  string `bson:"LinkTelegramChannel,omitempty" json:"LinkTelegramChannel,omitempty"`
	LinkWebAnnountcmenet string `bson:"LinkWebAnnountcmenet,omitempty" json:"LinkWebAnnountcmenet,omitempty"`
	LinkX                string `bson:"LinkX,omitempty" json:"LinkX,omitempty"`

	// Addressed by position. Indices shift after a delete, so they are
	// not stable identifiers across mutations.
	Links []Link `bson:"additionalLinks,omitempty" json:"additionalLinks,omitempty"`

	TotalSpend     string `bson:"totalSpend,omitempty" json:"totalSpend,omitempty"`
	AdditionalNote string `bson:"additionalNote,omitempty" json:"additionalNote,omitempty"`
	Support        bool   `bson:"support,omitempty" json:"support,omitempty"`
}

// Link is a {label, url} pair inside an airdrop. The label is escaped
// text, the url is verbatim.
type Link struct {
	Label string `bson:"label" json:"label"`
	URL   string `bson:"url" json:"url"`
}
