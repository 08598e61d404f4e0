package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm/logger"
)

type App struct {
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`
	DBLogLevel  string `envconfig:"DB_LOG_LEVEL" default:"warn"`

	// Auth
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`
	BcryptCost   int    `envconfig:"BCRYPT_COST" default:"10"`
	// Accounts registered with one of these emails start as admins.
	AdminEmails []string `envconfig:"ADMIN_EMAILS"`
	// Google sign-in is enabled when the service account JSON is set.
	FirebaseProjectID       string `envconfig:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsJSON string `envconfig:"FIREBASE_CREDENTIALS_JSON"`

	// HTTP
	Port          string   `envconfig:"PORT" default:"8080"`
	CORSOrigins   []string `envconfig:"CORS_ORIGINS" default:"*"`
	UploadDir     string   `envconfig:"UPLOAD_DIR" default:"uploads"`
	PublicBaseURL string   `envconfig:"PUBLIC_BASE_URL"`
}

// Load reads an optional .env file and then the process environment.
func Load() (App, error) {
	_ = godotenv.Load()

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return c, err
	}
	return c, c.validate()
}

func (c App) validate() error {
	if c.DatabaseURL == "" && (c.DBUser == "" || c.DBName == "") {
		return fmt.Errorf("config: DATABASE_URL or DB_USER and DB_NAME must be set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must not be empty")
	}
	if c.JWTExpireMin <= 0 {
		return fmt.Errorf("config: JWT_EXPIRE_MIN must be positive")
	}
	if c.FirebaseCredentialsJSON != "" && c.FirebaseProjectID == "" {
		return fmt.Errorf("config: FIREBASE_PROJECT_ID must be set with FIREBASE_CREDENTIALS_JSON")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("config: BCRYPT_COST must be between 4 and 31")
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the
// DB_* settings.
func (c App) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func (c App) GormLogLevel() logger.LogLevel {
	switch strings.ToLower(c.DBLogLevel) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
