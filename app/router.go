// Package app wires every endpoint to its handler
package app

import (
	"fmt"
	"time"

	"dropbase/airdrop-api/app/airdrop"
	"dropbase/airdrop-api/app/countdown"
	"dropbase/airdrop-api/app/root"
	"dropbase/airdrop-api/app/user"
	"dropbase/airdrop-api/db"
	"dropbase/airdrop-api/internal"
	"dropbase/airdrop-api/pkg/middleware"
	"dropbase/airdrop-api/pkg/security"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	d := &internal.Deps{
		Hasher: security.NewPasswordHasher(),
	}

	store, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB store, %w", err)
	}
	d.DB = store

	makeLogger()

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	rateLimit := viper.GetInt("security.rate_limit")

	jwt := middleware.NewJWTMiddleware()
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
		CleanupInterval:   time.Second,
	})

	m := router.Group("/api", rateLimiter, middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)
	}

	u := m.Group("/users")
	{
		// GET /api/users		-> Returns the caller's profile
		u.GET("", jwt, func(c *gin.Context) { user.UserFetch(c, d) })

		// POST /api/users 		-> Registers a new user
		u.POST("", func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/users/login 	-> Logs in a user and returns a JWT token
		u.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })
	}

	cd := m.Group("/countdown", jwt)
	{
		// PUT /api/countdown		-> Starts or restarts the countdown
		cd.PUT("", func(c *gin.Context) { countdown.CountdownSet(c, d) })

		// POST /api/countdown/remaining -> Returns the remaining seconds
		cd.POST("/remaining", func(c *gin.Context) { countdown.CountdownGet(c, d) })
	}

	a := m.Group("/airdrops", jwt)
	{
		// GET /api/airdrops		-> Lists the caller's airdrop entries
		a.GET("", func(c *gin.Context) { airdrop.AirdropFetch(c, d) })

		// POST /api/airdrops		-> Creates a new airdrop entry
		a.POST("", func(c *gin.Context) { airdrop.AirdropCreate(c, d) })

		// PUT /api/airdrops		-> Replaces an airdrop entry wholesale
		a.PUT("", func(c *gin.Context) { airdrop.AirdropEdit(c, d) })

		// DELETE /api/airdrops		-> Removes an airdrop entry
		a.DELETE("", func(c *gin.Context) { airdrop.AirdropDelete(c, d) })

		// POST /api/airdrops/links	-> Appends a link to an airdrop
		a.POST("/links", func(c *gin.Context) { airdrop.LinkAdd(c, d) })

		// PATCH /api/airdrops/links	-> Edits a link at a position
		a.PATCH("/links", func(c *gin.Context) { airdrop.LinkEdit(c, d) })

		// DELETE /api/airdrops/links	-> Deletes a link at a position
		a.DELETE("/links", func(c *gin.Context) { airdrop.LinkDelete(c, d) })

		// PATCH /api/airdrops/note	-> Updates spend tracking and note
		a.PATCH("/note", func(c *gin.Context) { airdrop.NoteEdit(c, d) })

		// PATCH /api/airdrops/support	-> Updates the desktop-support flag
		a.PATCH("/support", func(c *gin.Context) { airdrop.SupportEdit(c, d) })
	}

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
