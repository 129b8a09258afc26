// Package countdown implements the per-user countdown timer
package countdown

import (
	"net/http"
	"time"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/guard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type setBody struct {
	ID   string `json:"_id"`
	Time int64  `json:"time"`
}

// CountdownSet starts a countdown of time seconds from now. Start, end
// and the original duration are written in one update.
func CountdownSet(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data setBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.Time <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing required fields: time",
			"requestID": requestID,
		})
		return
	}

	owner, ok := guard.Owner(c, data.ID)
	if !ok {
		return
	}

	if _, ok := guard.ConfirmOwner(c, d, owner); !ok {
		return
	}

	start := time.Now().UnixMilli()
	end := start + data.Time*1000

	res, err := d.DB.SetCountdown(c.Request.Context(), owner, data.Time, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to set countdown", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !res.Found() {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "User not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Countdown updated",
		"countdownStart": start,
		"countdownEnd":   end,
		"modifiedCount":  res.Modified,
	})
}
