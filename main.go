package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cms-backend/controllers"
	"cms-backend/database"
	"cms-backend/logger"
	"cms-backend/middleware"
	"cms-backend/repository"
	"cms-backend/routes"
	"cms-backend/sender"
	"cms-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	log := logger.Initialize(os.Getenv("APP_ENV"))
	defer log.Sync()

	cfg := LoadConfig()

	// --- 1. Store connection ---
	//
	// A failed connection degrades the API instead of killing the process:
	// the data routes answer 503 and /test reports the state.
	var (
		mongoClient *mongo.Client
		db          *mongo.Database
	)
	if cfg.DatabaseURL != "" {
		var err error
		mongoClient, db, err = database.Connect(cfg.DatabaseURL, cfg.DatabaseName)
		if err != nil {
			log.Error("Failed to connect to MongoDB, data endpoints disabled", zap.Error(err))
		} else {
			log.Info("Connected to MongoDB")
		}
	} else {
		log.Warn("DATABASE_URL not set, data endpoints disabled")
	}

	// --- 2. Dependency injection ---

	validator := controllers.NewRequestValidator()
	systemController := controllers.NewSystemController(db, cfg.DatabaseURL != "", cfg.DatabaseName)

	var (
		productController  *controllers.ProductController
		settingsController *controllers.SettingsController
		contactController  *controllers.ContactController
	)
	if db != nil {
		productService := services.NewProductService(repository.NewProductRepository(db))
		settingsService := services.NewSettingsService(repository.NewSettingsRepository(db))

		var mail sender.EmailSender
		if cfg.SMTPHost != "" {
			mail = sender.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		}
		contactService := services.NewContactService(repository.NewContactRepository(db), mail, cfg.ContactToEmail)

		productController = controllers.NewProductController(productService, validator)
		settingsController = controllers.NewSettingsController(settingsService, validator)
		contactController = controllers.NewContactController(contactService, validator)
	}

	// --- 3. HTTP server & middleware ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeaders())

	// Request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route registration ---

	routes.RegisterRoutes(r, systemController, productController, settingsController, contactController,
		middleware.AdminRequired(cfg.AdminToken))

	// --- 5. Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("White Goods CMS API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down CMS API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if mongoClient != nil {
		if err := database.Close(mongoClient); err != nil {
			log.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}

	log.Info("CMS API stopped gracefully")
}
