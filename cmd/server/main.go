package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtside/internal/config"
	adminhandlers "courtside/internal/handlers/admin"
	"courtside/internal/handlers/notify"
	publichandlers "courtside/internal/handlers/public"
	"courtside/internal/mailer"
	"courtside/internal/middleware"
	"courtside/internal/repositories/mongodb"
	"courtside/internal/services"
	"courtside/internal/utils"
	"courtside/pkg/cache"
	"courtside/pkg/database"
	"courtside/pkg/logger"
	"courtside/pkg/websocket"
	"courtside/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(indexCtx); err != nil {
		log.WithError(err).Fatal("Failed to ensure indexes")
	}
	cancelIndexes()

	// The cache is an optimization; the API stays up without redis.
	var cacheSvc mongodb.CacheService
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, caching disabled")
	} else {
		cacheSvc = redisCache
		defer redisCache.Close()
	}

	courtRepo := mongodb.NewCourtRepository(db.Database, cacheSvc)
	promoRepo := mongodb.NewPromoRepository(db.Database, cacheSvc)
	bookingRepo := mongodb.NewBookingRepository(db.Database)
	adminRepo := mongodb.NewAdminRepository(db.Database)

	resendMailer := mailer.NewResend(cfg.Mail.APIKey, cfg.Mail.APIBaseURL)
	emailjsMailer := mailer.NewEmailJS(cfg.Mail.ServiceID, cfg.Mail.TemplateID, cfg.Mail.PublicKey, cfg.Mail.PrivateKey, cfg.Mail.TemplateAPIBaseURL)

	wsHandler := websocket.NewHandler()

	courtService := services.NewCourtService(courtRepo, log)
	promoService := services.NewPromoService(promoRepo, log)
	notifier := services.NewNotificationService(resendMailer, cfg.Mail.AdminEmail, cfg.Mail.FromAddress, log)
	bookingService := services.NewBookingService(bookingRepo, courtRepo, promoService, notifier, wsHandler, log)
	authService := services.NewAuthService(adminRepo, *cfg.Security, log)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureSeedAdmin(seedCtx); err != nil {
		log.WithError(err).Error("Failed to seed admin account")
	}
	cancelSeed()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"name":    utils.AppName,
			"version": utils.AppVersion,
		})
	})

	api := router.Group("/api/v1")
	{
		routes.SetupPublicRoutes(api, publichandlers.NewCourtHandler(courtService), publichandlers.NewBookingHandler(bookingService), publichandlers.NewPromoHandler(promoService))

		routes.SetupAdminRoutes(
			api.Group("/admin"),
			cfg.Security.JWTSecret,
			adminhandlers.NewAuthHandler(authService),
			adminhandlers.NewBookingHandler(bookingService),
			adminhandlers.NewCourtHandler(courtService),
			wsHandler,
		)

		routes.SetupNotifyRoutes(
			api.Group("/notify"),
			notify.NewHandler(resendMailer, cfg.Mail.AdminEmail, cfg.Mail.FromAddress, log),
			notify.NewHandler(emailjsMailer, cfg.Mail.AdminEmail, cfg.Mail.FromAddress, log),
		)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}
