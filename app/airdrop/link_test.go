package airdrop

import (
	"fmt"
	"net/http"
	"testing"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/model"
	"dropbase/airdrop-api/internal/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestLinkAdd(t *testing.T) {
	t.Run("label escaped, url verbatim", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"label":"<b>hi</b>","url":"http://x?a=1&b=2"}`,
			owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, LinkAdd)

		require.Equal(t, http.StatusCreated, w.Code)

		links := store.Users[owner].Airdrops[0].Links
		require.Len(t, links, 1)
		assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", links[0].Label)
		assert.Equal(t, "http://x?a=1&b=2", links[0].URL)
	})

	t.Run("unknown airdrop", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, _ := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"label":"l","url":"u"}`,
			owner.Hex(), bson.NewObjectID().Hex())
		w := perform(d, owner.Hex(), body, LinkAdd)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("foreign owner forbidden", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		victim, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"label":"l","url":"u"}`,
			victim.Hex(), airdropID.Hex())
		w := perform(d, bson.NewObjectID().Hex(), body, LinkAdd)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.Calls)
	})
}

func TestLinkEdit(t *testing.T) {
	seed := func(store *storetest.Fake) (bson.ObjectID, bson.ObjectID) {
		return seedAirdrop(store, model.Airdrop{
			Name:  "X",
			Timer: "10",
			Links: []model.Link{
				{Label: "first", URL: "http://one"},
				{Label: "second", URL: "http://two"},
			},
		})
	}

	t.Run("label only leaves url untouched", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seed(store)

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"index":1,"label":"renamed"}`,
			owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, LinkEdit)

		require.Equal(t, http.StatusOK, w.Code)

		links := store.Users[owner].Airdrops[0].Links
		assert.Equal(t, "renamed", links[1].Label)
		assert.Equal(t, "http://two", links[1].URL)
		assert.Equal(t, "first", links[0].Label, "other positions untouched")
	})

	t.Run("index past the end", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seed(store)

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"index":9,"label":"x"}`,
			owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, LinkEdit)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("negative index rejected before the store", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seed(store)

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"index":-1,"label":"x"}`,
			owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, LinkEdit)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.Calls)
	})

	t.Run("nothing to update", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seed(store)

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"index":0}`, owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, LinkEdit)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLinkDelete(t *testing.T) {
	seed := func(store *storetest.Fake) (bson.ObjectID, bson.ObjectID) {
		return seedAirdrop(store, model.Airdrop{
			Name:  "X",
			Timer: "10",
			Links: []model.Link{
				{Label: "a", URL: "http://a"},
				{Label: "b", URL: "http://b"},
				{Label: "c", URL: "http://c"},
			},
		})
	}

	t.Run("removes exactly one, preserving relative order", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seed(store)

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"index":1}`, owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, LinkDelete)

		require.Equal(t, http.StatusOK, w.Code)

		links := store.Users[owner].Airdrops[0].Links
		require.Len(t, links, 2)
		assert.Equal(t, "a", links[0].Label)
		assert.Equal(t, "c", links[1].Label)
	})

	t.Run("index past the end is a no-op", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seed(store)

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"index":9}`, owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, LinkDelete)

		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, decodeBody(t, w)["modifiedCount"])
		assert.Len(t, store.Users[owner].Airdrops[0].Links, 3)
	})

	t.Run("missing index", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seed(store)

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q}`, owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, LinkDelete)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.Calls)
	})

	t.Run("unknown airdrop", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, _ := seed(store)

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"index":0}`,
			owner.Hex(), bson.NewObjectID().Hex())
		w := perform(d, owner.Hex(), body, LinkDelete)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
