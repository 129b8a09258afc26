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

type linkAddBody struct {
	ID        string `json:"_id"`
	AirdropID string `json:"airdropId"`
	Label     string `json:"label"`
	URL       string `json:"url"`
}

// LinkAdd appends a {label, url} pair to an airdrop. The label is
// escaped text, the url is stored as sent.
func LinkAdd(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data linkAddBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
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

	link := model.Link{
		Label: util.Sanitize(data.Label),
		URL:   data.URL,
	}

	res, err := d.DB.PushLink(c.Request.Context(), owner, airdropID, link)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to add link", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !res.Found() {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "User or Airdrop not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Link added successfully",
		"modifiedCount": res.Modified,
	})
}
