package airdrop

import (
	"net/http"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/guard"
	"dropbase/airdrop-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type noteBody struct {
	ID             string `json:"_id"`
	AirdropID      string `json:"airdropId"`
	TotalSpend     string `json:"totalSpend"`
	AdditionalNote string `json:"additionalNote"`
}

// NoteEdit sets the spend tracker and free-form note of an airdrop.
// Both are plain text and escaped before storage.
func NoteEdit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data noteBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.ID == "" || data.AirdropID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing required fields: _id, airdropId",
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

	res, err := d.DB.SetNote(c.Request.Context(), owner, airdropID,
		util.Sanitize(data.TotalSpend), util.Sanitize(data.AdditionalNote))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to edit note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !res.Found() {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "User or Airdrop not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Note updated successfully",
		"modifiedCount": res.Modified,
	})
}
