package airdrop

import (
	"net/http"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/guard"
	"dropbase/airdrop-api/internal/model"
	"dropbase/airdrop-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type editBody struct {
	ID        string `json:"_id"`
	AirdropID string `json:"airdropId"`
	Name      string `json:"name"`
	Timer     string `json:"timer"`

	// URL fields, stored verbatim. Escaping would corrupt them.
	LinkTelegramPlay     string `json:"LinkTelegramPlay"`
	LinkWebPlay          string `json:"LinkWebPlay"`
	LinkTelegramChannel  string `json:"LinkTelegramChannel"`
	LinkWebAnnountcmenet string `json:"LinkWebAnnountcmenet"`
	LinkX                string `json:"LinkX"`
}

// AirdropEdit replaces the whole matched sub-document. Fields missing
// from the request are dropped from the stored entry, which is the one
// deliberate exception to partial updates in this app.
func AirdropEdit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data editBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.ID == "" || data.AirdropID == "" || data.Name == "" || data.Timer == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing required fields: _id, airdropId, name, timer",
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

	replacement := &model.Airdrop{
		Name:                 util.Sanitize(data.Name),
		Timer:                util.Sanitize(data.Timer),
		LinkTelegramPlay:     data.LinkTelegramPlay,
		LinkWebPlay:          data.LinkWebPlay,
		LinkTelegramChannel:  data.LinkTelegramChannel,
		LinkWebAnnountcmenet: data.LinkWebAnnountcmenet,
		LinkX:                data.LinkX,
	}

	res, err := d.DB.ReplaceAirdrop(c.Request.Context(), owner, airdropID, replacement)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to edit airdrop", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !res.Found() {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "Airdrop not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Airdrop updated successfully",
		"modifiedCount": res.Modified,
	})
}
