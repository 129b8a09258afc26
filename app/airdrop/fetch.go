package airdrop

import (
	"errors"
	"net/http"

	"dropbase/airdrop-api/db"
	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/model"
	"dropbase/airdrop-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AirdropFetch lists the caller's airdrop entries. The owner is taken
// from the token subject, so no body identifiers are needed.
func AirdropFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	id, err := validators.ObjectIDValidator(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Invalid _id format",
			"requestID": requestID,
		})
		return
	}

	user, err := d.DB.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message":   "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch airdrops", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	airdrops := user.Airdrops
	if airdrops == nil {
		airdrops = []model.Airdrop{}
	}

	c.JSON(http.StatusOK, gin.H{
		"additionalAirdrop": airdrops,
	})
}
