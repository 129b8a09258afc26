// Package airdrop implements CRUD over the airdrop entries nested in a
// user document. Every operation validates identifiers, checks that the
// token subject owns the target and applies one atomic update scoped to
// that owner.
package airdrop

import (
	"net/http"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/guard"
	"dropbase/airdrop-api/internal/model"
	"dropbase/airdrop-api/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

type createBody struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Timer string `json:"timer"`
}

func AirdropCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data createBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if data.ID == "" || data.Name == "" || data.Timer == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Missing required fields: _id, name, timer",
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

	entry := &model.Airdrop{
		AirdropID: bson.NewObjectID(),
		Name:      util.Sanitize(data.Name),
		Timer:     util.Sanitize(data.Timer),
	}

	res, err := d.DB.PushAirdrop(c.Request.Context(), owner, entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create airdrop", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !res.Found() {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "User not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Airdrop created successfully",
		"airdropId": entry.AirdropID.Hex(),
	})
}
