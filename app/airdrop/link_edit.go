package airdrop

import (
	"net/http"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/guard"
	"dropbase/airdrop-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type linkEditBody struct {
	ID        string  `json:"_id"`
	AirdropID string  `json:"airdropId"`
	Index     *int    `json:"index"`
	Label     *string `json:"label"`
	URL       *string `json:"url"`
}

// LinkEdit updates label and/or url of the link at the given position.
// Only the fields present in the request are touched.
func LinkEdit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data linkEditBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.Index == nil || *data.Index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing or invalid index",
			"requestID": requestID,
		})
		return
	}

	if data.Label == nil && data.URL == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Nothing to update: provide label or url",
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

	if data.Label != nil {
		clean := util.Sanitize(*data.Label)
		data.Label = &clean
	}

	res, err := d.DB.SetLinkFields(c.Request.Context(), owner, airdropID, *data.Index, data.Label, data.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to edit link", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// A $set on a position past the end of the array matches the parent
	// but changes nothing, so the modified count is the signal here.
	if !res.Changed() {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "User or link not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Link edited successfully",
		"modifiedCount": res.Modified,
	})
}
