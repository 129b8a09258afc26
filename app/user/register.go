package user

import (
	"errors"
	"net/http"
	"time"

	"dropbase/airdrop-api/db"
	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/internal/model"
	"dropbase/airdrop-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func UserRegister(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	email := validators.NormalizeEmail(data.Email)

	var violations []string

	if err := validators.EmailValidator(email); err != nil {
		violations = append(violations, err.Error())
	}

	violations = append(violations, validators.PasswordValidator(data.Password)...)

	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Validation failed",
			"errors":    violations,
			"requestID": requestID,
		})
		return
	}

	if _, err := d.DB.FindByEmail(c.Request.Context(), email); err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"message":   "Email already exists",
			"requestID": requestID,
		})
		return
	} else if !errors.Is(err, db.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if user is registered", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	hash, err := d.Hasher.GenerateFromPassword(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	now := time.Now()

	userID, err := d.DB.InsertUser(c.Request.Context(), &model.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		LastLogin:    now,
	})
	if err != nil {
		// A concurrent registration can still win the race between the
		// lookup above and this insert.
		if errors.Is(err, db.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{
				"message":   "Email already exists",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"userId":  userID.Hex(),
	})
}
