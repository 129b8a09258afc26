package user

import (
	"errors"
	"net/http"

	"dropbase/airdrop-api/db"
	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch returns the caller's own profile. The subject comes from
// the verified token, so there is no id to validate against.
func UserFetch(c *gin.Context, d *internal.Deps) {
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

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":         user.ID.Hex(),
		"email":          user.Email,
		"createdAt":      user.CreatedAt,
		"lastLogin":      user.LastLogin,
		"time":           user.Time,
		"countdownStart": user.CountdownStart,
		"countdownEnd":   user.CountdownEnd,
	})
}
