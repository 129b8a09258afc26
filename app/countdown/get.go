package countdown

import (
	"net/http"
	"time"

	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/guard"

	"github.com/gin-gonic/gin"
)

type getBody struct {
	ID string `json:"_id"`
}

// CountdownGet reports the remaining seconds of the caller's countdown.
// Pure read, nothing is mutated.
func CountdownGet(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data getBody
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

	user, ok := guard.ConfirmOwner(c, d, owner)
	if !ok {
		return
	}

	remaining := user.CountdownEnd - time.Now().UnixMilli()

	countdown := max(0, remaining/1000)

	status := "expired"
	if countdown > 0 {
		status = "active"
	}

	c.JSON(http.StatusOK, gin.H{
		"countdown":    countdown,
		"originalTime": user.Time,
		"status":       status,
	})
}
