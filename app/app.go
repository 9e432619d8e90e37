// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"portfolio-api/config"
	"portfolio-api/db"
	"portfolio-api/handler"
	"portfolio-api/logger"
	"portfolio-api/repository"
	"portfolio-api/router"
	"portfolio-api/service"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---

	jwtCfg := config.AppConfig.JWT
	authService := service.NewAuthService(
		[]byte(jwtCfg.AccessSecret),
		[]byte(jwtCfg.RefreshSecret),
		jwtCfg.AccessTTL,
		jwtCfg.RefreshTTL,
	)

	// Layers for User / Session
	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	userService := service.NewUserService(userRepo, sessionRepo, authService)
	userHandler := handler.NewUserHandler(userService)

	// Layers for Photos
	cldCfg := config.AppConfig.Cloudinary
	uploader, err := service.NewCloudinaryUploader(cldCfg.CloudName, cldCfg.APIKey, cldCfg.APISecret, cldCfg.Folder)
	if err != nil {
		logger.Log.Fatalf("Error creating image uploader: %v", err)
	}
	photoRepo := repository.NewPhotoRepository(database)
	photoService := service.NewPhotoService(photoRepo, uploader, redisClient)
	photoHandler := handler.NewPhotoHandler(photoService)

	// Layers for Contact
	smtpCfg := config.AppConfig.SMTP
	mailer := service.NewSMTPMailer(smtpCfg.Host, smtpCfg.Port, smtpCfg.Username, smtpCfg.Password, smtpCfg.Recipient)
	contactRepo := repository.NewContactRepository(database)
	contactService := service.NewContactService(contactRepo, mailer)
	contactHandler := handler.NewContactHandler(contactService)

	// Start the router with all handlers
	r := router.NewRouter(userHandler, photoHandler, contactHandler, authService)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
