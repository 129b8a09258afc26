package airdrop

import (
	"net/http"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/guard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type deleteBody struct {
	ID        string `json:"_id"`
	AirdropID string `json:"airdropId"`
}

func AirdropDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data deleteBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.ID == "" || data.AirdropID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing required fields: _id and airdropId",
			"requestID": requestID,
		})
		return
	}

	owner, ok := guard.Owner(c, data.ID)
	if !ok {
		return
	}

	airdropID, ok := guard.AirdropID(c, data.AirdropID)
	if !ok {
		return
	}

	if _, ok := guard.ConfirmOwner(c, d, owner); !ok {
		return
	}

	res, err := d.DB.PullAirdrop(c.Request.Context(), owner, airdropID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete airdrop", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !res.Found() {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "User not found",
			"requestID": requestID,
		})
		return
	}

	// Matched but unmodified: the pull found the user but no airdrop
	// with that id was in the array.
	if !res.Changed() {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "Airdrop not found in user's collection",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Airdrop successfully deleted",
		"modifiedCount": res.Modified,
	})
}
