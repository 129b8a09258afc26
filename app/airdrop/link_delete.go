package airdrop

import (
	"net/http"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/guard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type linkDeleteBody struct {
	ID        string `json:"_id"`
	AirdropID string `json:"airdropId"`
	Index     *int   `json:"index"`
}

// LinkDelete removes the link at the given position. The store does it
// in two atomic steps (null out, then compact), so a concurrent reader
// can briefly see a null entry. Indices of the following links shift
// down afterwards; callers must not reuse indices across mutations.
func LinkDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data linkDeleteBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.Index == nil || *data.Index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing required fields: _id, airdropId, index or invalid index",
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

	res, err := d.DB.DeleteLink(c.Request.Context(), owner, airdropID, *data.Index)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete link", zap.Error(err), zap.String("requestID", requestID))
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
		"message":       "Link deleted successfully",
		"modifiedCount": res.Modified,
	})
}
