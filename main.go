package main

import (
	"context"
	"log"
	"time"

	"github.com/4GeeksAcademy/Ecommerce-Project/auth"
	"github.com/4GeeksAcademy/Ecommerce-Project/config"
	orderControllers "github.com/4GeeksAcademy/Ecommerce-Project/controllers/order"
	productcontroller "github.com/4GeeksAcademy/Ecommerce-Project/controllers/product"
	"github.com/4GeeksAcademy/Ecommerce-Project/middleware"
	"github.com/4GeeksAcademy/Ecommerce-Project/routes"
	"github.com/4GeeksAcademy/Ecommerce-Project/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	log.Println("✅ Starting application...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	// Init DB
	db := initDatabase(cfg)
	s := store.New(db)

	// Auto-migrate all tables
	if err := s.Migrate(context.Background()); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()
	r.Use(middleware.Errors())

	// Allow image uploads up to 32 MB in memory
	r.MaxMultipartMemory = 32 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadDir)

	// Google sign-in
	var google auth.TokenVerifier
	if cfg.FirebaseCredentialsJSON != "" {
		client, err := auth.NewFirebaseVerifier(context.Background(), cfg.FirebaseProjectID, cfg.FirebaseCredentialsJSON)
		if err != nil {
			log.Fatalf("❌ Firebase init failed: %v", err)
		}
		google = client
		log.Println("✅ Google sign-in enabled")
	}

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Store:       s,
		Issuer:      auth.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute),
		Google:      google,
		Hub:         orderControllers.NewHub(),
		Images:      productcontroller.Images{Dir: cfg.UploadDir, BaseURL: cfg.PublicBaseURL},
		BcryptCost:  cfg.BcryptCost,
		AdminEmails: cfg.AdminEmails,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.App) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(cfg.GormLogLevel()),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

// Browsers refuse credentialed responses for a wildcard origin.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
