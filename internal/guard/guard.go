// Package guard implements the request gates shared by every
// ownership-scoped operation: identifier presence and shape, the
// claim-vs-target ownership check, and the optional load-and-recheck of
// the owning user. Each gate writes its own rejection and reports
// whether the handler may continue.
package guard

import (
	"errors"
	"net/http"

	"dropbase/airdrop-api/db"
	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/model"
	"dropbase/airdrop-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

// Owner validates the body-supplied _id and checks it against the
// authenticated token subject. The shape check runs before anything
// else so a malformed value never reaches a store filter.
func Owner(c *gin.Context, rawID string) (bson.ObjectID, bool) {
	requestID := c.MustGet("requestID").(string)

	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing required field: _id",
			"requestID": requestID,
		})
		return bson.ObjectID{}, false
	}

	id, err := validators.ObjectIDValidator(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Invalid _id format",
			"requestID": requestID,
		})
		return bson.ObjectID{}, false
	}

	if c.MustGet("userID").(string) != rawID {
		c.JSON(http.StatusForbidden, gin.H{
			"message":   "Not authorized to modify this user",
			"requestID": requestID,
		})
		return bson.ObjectID{}, false
	}

	return id, true
}

// AirdropID validates the body-supplied airdropId. Ownership of the
// airdrop itself is enforced later by the mutation filter, which pins
// both the owner and the airdrop in one query.
func AirdropID(c *gin.Context, rawID string) (bson.ObjectID, bool) {
	requestID := c.MustGet("requestID").(string)

	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing required field: airdropId",
			"requestID": requestID,
		})
		return bson.ObjectID{}, false
	}

	id, err := validators.ObjectIDValidator(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Invalid airdropId format",
			"requestID": requestID,
		})
		return bson.ObjectID{}, false
	}

	return id, true
}

// ConfirmOwner loads the user document and re-checks that its _id
// matches the token subject. The claim check in Owner already decided
// authorization; this second look catches a stale claim whose user is
// gone and must agree with the first check.
func ConfirmOwner(c *gin.Context, d *internal.Deps, owner bson.ObjectID) (*model.User, bool) {
	requestID := c.MustGet("requestID").(string)

	user, err := d.DB.FindByID(c.Request.Context(), owner)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message":   "User not found",
				"requestID": requestID,
			})
			return nil, false
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to load user", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	if user.ID.Hex() != c.MustGet("userID").(string) {
		c.JSON(http.StatusForbidden, gin.H{
			"message":   "Token user ID does not match requested user ID",
			"requestID": requestID,
		})
		return nil, false
	}

	return user, true
}
