package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spaceshooter/backend/internal/access"
	"spaceshooter/backend/internal/auth"
	"spaceshooter/backend/internal/clock"
	"spaceshooter/backend/internal/config"
	"spaceshooter/backend/internal/database"
	"spaceshooter/backend/internal/game"
	"spaceshooter/backend/internal/handler"
	"spaceshooter/backend/internal/notifier"
	"spaceshooter/backend/internal/store/gormstore"
	"spaceshooter/backend/internal/telegram"
	"spaceshooter/backend/pkg/session"

	// Swagger imports
	_ "spaceshooter/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Space Shooter API
// @version         1.0
// @description     Access-gated backend for the Space Shooter Telegram Mini App.
// @host            localhost:8000
// @BasePath        /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	adminIDs, err := cfg.AdminTelegramIDs()
	if err != nil {
		log.Fatalf("Failed to parse admin ids: %v", err)
	}

	clk := clock.New()
	st := gormstore.New(db)
	verifier := telegram.NewVerifier(cfg.BotToken, time.Duration(cfg.WebAppAuthMaxAgeSeconds)*time.Second, clk)
	codec := session.NewCodec(cfg.JWTSecret, clk)
	botNotifier := notifier.New(cfg.BotInternalURL, cfg.BotInternalToken, logger)

	accessSvc := access.New(st, clk, botNotifier, adminIDs)
	gameSvc := game.New(st)

	sessionTTL := time.Duration(cfg.JWTExpireHours) * time.Hour
	authHandler := handler.NewAuthHandler(verifier, accessSvc, codec, cfg.SessionCookieName, cfg.SessionCookieSecure, sessionTTL)
	accessHandler := handler.NewAccessHandler(accessSvc)
	gameHandler := handler.NewGameHandler(gameSvc)
	adminHandler := handler.NewAdminHandler(accessSvc, st)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := router.Group("/api")
	{
		// Auth routes
		api.POST("/auth/telegram", authHandler.AuthTelegram)

		// Access workflow routes (any authenticated user)
		accessRoutes := api.Group("/access")
		accessRoutes.Use(auth.RequireSession(codec, st, cfg.SessionCookieName))
		{
			accessRoutes.GET("/status", accessHandler.GetStatus)
			accessRoutes.POST("/request", accessHandler.CreateRequest)
		}

		// Gameplay routes (approved users only)
		gameRoutes := api.Group("/game")
		gameRoutes.Use(auth.RequireSession(codec, st, cfg.SessionCookieName), auth.RequireApproved())
		{
			gameRoutes.POST("/score", gameHandler.SubmitScore)
			gameRoutes.GET("/leaderboard", gameHandler.GetLeaderboard)
		}

		// Admin routes (configured admins only)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(auth.RequireSession(codec, st, cfg.SessionCookieName), auth.RequireAdmin(accessSvc))
		{
			adminRoutes.GET("/requests", adminHandler.ListRequests)
			adminRoutes.POST("/requests/:id/approve", adminHandler.ApproveRequest)
			adminRoutes.POST("/requests/:id/reject", adminHandler.RejectRequest)
			adminRoutes.GET("/users", adminHandler.ListUsers)
		}
	}

	logger.Info("server starting", "addr", cfg.ListenAddr)
	log.Fatal(router.Run(cfg.ListenAddr))
}
