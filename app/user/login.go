package user

import (
	"errors"
	"net/http"

	"dropbase/airdrop-api/db"
	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/pkg/security"
	"dropbase/airdrop-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func UserLogin(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" || data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Email and password are required",
			"requestID": requestID,
		})
		return
	}

	email := validators.NormalizeEmail(data.Email)

	// An unknown email and a wrong password answer identically so the
	// response can't be used to probe which addresses are registered.
	user, err := d.DB.FindByEmail(c.Request.Context(), email)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message":   "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{
			"message":   "Invalid credentials",
			"requestID": requestID,
		})
		return
	}

	if !d.Hasher.VerifyPasswd(data.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message":   "Invalid credentials",
			"requestID": requestID,
		})
		return
	}

	if err := d.DB.TouchLastLogin(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update last login", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := security.MakeAuthToken(user.ID.Hex(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate auth token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("authToken", token, int(security.AuthTokenTTL.Seconds()), "/", "", viper.GetBool("host.ssl.enabled"), true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"userId":  user.ID.Hex(),
		"email":   user.Email,
		"token":   token,
	})
}
