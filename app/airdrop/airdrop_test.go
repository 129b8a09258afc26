package airdrop

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/model"
	"dropbase/airdrop-api/internal/storetest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func perform(d *internal.Deps, subject, body string, h func(*gin.Context, *internal.Deps)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("requestID", "test-request")
	c.Set("userID", subject)

	h(c, d)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// seedAirdrop creates a user owning one airdrop and returns both ids.
func seedAirdrop(store *storetest.Fake, a model.Airdrop) (bson.ObjectID, bson.ObjectID) {
	if a.AirdropID.IsZero() {
		a.AirdropID = bson.NewObjectID()
	}
	owner := store.Seed(&model.User{
		Email:    "a@gmail.com",
		Airdrops: []model.Airdrop{a},
	})
	return owner, a.AirdropID
}

func TestAirdropCreate(t *testing.T) {
	t.Run("appends entry with generated id", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner := store.Seed(&model.User{Email: "a@gmail.com"})

		w := perform(d, owner.Hex(),
			fmt.Sprintf(`{"_id":%q,"name":"X","timer":"10"}`, owner.Hex()), AirdropCreate)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)

		airdropID, ok := body["airdropId"].(string)
		require.True(t, ok)
		_, err := bson.ObjectIDFromHex(airdropID)
		assert.NoError(t, err, "airdropId must be a generated hex id")

		u := store.Users[owner]
		require.Len(t, u.Airdrops, 1)
		assert.Equal(t, "X", u.Airdrops[0].Name)
		assert.Equal(t, "10", u.Airdrops[0].Timer)
	})

	t.Run("name is stored escaped", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner := store.Seed(&model.User{Email: "a@gmail.com"})

		w := perform(d, owner.Hex(),
			fmt.Sprintf(`{"_id":%q,"name":"<b>X</b>","timer":"10"}`, owner.Hex()), AirdropCreate)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "&lt;b&gt;X&lt;/b&gt;", store.Users[owner].Airdrops[0].Name)
	})

	t.Run("missing fields", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner := store.Seed(&model.User{Email: "a@gmail.com"})

		w := perform(d, owner.Hex(), fmt.Sprintf(`{"_id":%q,"name":"X"}`, owner.Hex()), AirdropCreate)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.Calls)
	})

	t.Run("foreign owner forbidden", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		victim := store.Seed(&model.User{Email: "a@gmail.com"})

		w := perform(d, bson.NewObjectID().Hex(),
			fmt.Sprintf(`{"_id":%q,"name":"X","timer":"10"}`, victim.Hex()), AirdropCreate)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, store.Calls)
	})
}

func TestAirdropEdit(t *testing.T) {
	t.Run("replaces whole entry, clobbering absent fields", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{
			Name:           "old",
			Timer:          "5",
			AdditionalNote: "keep me?",
			TotalSpend:     "100",
		})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"name":"new","timer":"10","LinkX":"https://x.com/drop"}`,
			owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, AirdropEdit)

		require.Equal(t, http.StatusOK, w.Code)

		got := store.Users[owner].Airdrops[0]
		assert.Equal(t, airdropID, got.AirdropID, "airdropId survives the replace")
		assert.Equal(t, "new", got.Name)
		assert.Equal(t, "https://x.com/drop", got.LinkX)
		assert.Empty(t, got.AdditionalNote, "full replace drops unspecified fields")
		assert.Empty(t, got.TotalSpend)
	})

	t.Run("url fields stored verbatim, text escaped", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{Name: "old", Timer: "5"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"name":"<i>n</i>","timer":"10","LinkWebPlay":"http://x?a=1&b=2"}`,
			owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, AirdropEdit)

		require.Equal(t, http.StatusOK, w.Code)
		got := store.Users[owner].Airdrops[0]
		assert.Equal(t, "&lt;i&gt;n&lt;/i&gt;", got.Name)
		assert.Equal(t, "http://x?a=1&b=2", got.LinkWebPlay)
	})

	t.Run("unknown airdrop", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, _ := seedAirdrop(store, model.Airdrop{Name: "old", Timer: "5"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"name":"n","timer":"10"}`,
			owner.Hex(), bson.NewObjectID().Hex())
		w := perform(d, owner.Hex(), body, AirdropEdit)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed airdropId rejected before the store", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, _ := seedAirdrop(store, model.Airdrop{Name: "old", Timer: "5"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":"nope","name":"n","timer":"10"}`, owner.Hex())
		w := perform(d, owner.Hex(), body, AirdropEdit)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.Calls)
	})
}

func TestAirdropDelete(t *testing.T) {
	t.Run("removes the entry", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q}`, owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, AirdropDelete)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, store.Users[owner].Airdrops)
	})

	t.Run("second delete reports the airdrop missing", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q}`, owner.Hex(), airdropID.Hex())
		perform(d, owner.Hex(), body, AirdropDelete)
		w := perform(d, owner.Hex(), body, AirdropDelete)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Airdrop not found in user's collection", decodeBody(t, w)["message"])
	})

	t.Run("foreign owner forbidden regardless of existence", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		attacker := bson.NewObjectID()

		existing, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})
		ghost := bson.NewObjectID()

		for _, target := range []bson.ObjectID{existing, ghost} {
			body := fmt.Sprintf(`{"_id":%q,"airdropId":%q}`, target.Hex(), airdropID.Hex())
			w := perform(d, attacker.Hex(), body, AirdropDelete)
			assert.Equal(t, http.StatusForbidden, w.Code)
		}
	})
}

func TestAirdropFetch(t *testing.T) {
	t.Run("lists entries", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		w := perform(d, owner.Hex(), "", AirdropFetch)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		entries := body["additionalAirdrop"].([]any)
		require.Len(t, entries, 1)
		assert.Equal(t, airdropID.Hex(), entries[0].(map[string]any)["airdropId"])
	})

	t.Run("empty list for a fresh user", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner := store.Seed(&model.User{Email: "a@gmail.com"})

		w := perform(d, owner.Hex(), "", AirdropFetch)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["additionalAirdrop"], 0)
	})
}

func TestNoteEdit(t *testing.T) {
	t.Run("sets sanitized note and spend", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"totalSpend":" 42 ","additionalNote":"<s>n</s>"}`,
			owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, NoteEdit)

		require.Equal(t, http.StatusOK, w.Code)
		got := store.Users[owner].Airdrops[0]
		assert.Equal(t, "42", got.TotalSpend)
		assert.Equal(t, "&lt;s&gt;n&lt;/s&gt;", got.AdditionalNote)
		assert.Equal(t, "X", got.Name, "note edit must not clobber other fields")
	})

	t.Run("unknown airdrop", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, _ := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"totalSpend":"1","additionalNote":"n"}`,
			owner.Hex(), bson.NewObjectID().Hex())
		w := perform(d, owner.Hex(), body, NoteEdit)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSupportEdit(t *testing.T) {
	t.Run("flips the flag", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10"})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"support":true}`, owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, SupportEdit)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, store.Users[owner].Airdrops[0].Support)
		assert.EqualValues(t, 1, decodeBody(t, w)["modifiedCount"])
	})

	t.Run("setting the same value reports matched but unmodified", func(t *testing.T) {
		store := storetest.New()
		d := &internal.Deps{DB: store}
		owner, airdropID := seedAirdrop(store, model.Airdrop{Name: "X", Timer: "10", Support: true})

		body := fmt.Sprintf(`{"_id":%q,"airdropId":%q,"support":true}`, owner.Hex(), airdropID.Hex())
		w := perform(d, owner.Hex(), body, SupportEdit)

		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, decodeBody(t, w)["modifiedCount"])
	})
}
