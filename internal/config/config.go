package config

import (
	"os"
	"strconv"
	"time"

	"todo_service/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort   string
	JWTSecret string
	TokenTTL  time.Duration
	LogLevel  string
	LogJSON   bool
}

// devJWTSecret is used when JWT_SECRET is not set. Fine for local runs,
// never for a deployment.
const devJWTSecret = "your-secret-key"

func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Warn("JWT_SECRET is not set, using insecure development default")
		jwtSecret = devJWTSecret
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	tokenTTL := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			tokenTTL = time.Duration(n) * time.Hour
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		AppPort:   port,
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
		LogLevel:  logLevel,
		LogJSON:   os.Getenv("LOG_JSON") == "true",
	}
}
