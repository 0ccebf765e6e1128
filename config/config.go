package config

import (
	"log"
	"time"

	"main/utils"
)

// DefaultJWTSecret is only suitable for local development. Any real
// deployment must set JWT_SECRET_KEY.
const DefaultJWTSecret = "dev-only-insecure-secret"

type DatabaseConfig struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	ConnectTimeout  time.Duration
}

type Config struct {
	Port          string
	MaxBodyBytes  int64
	JWTSecret     string
	TokenLifetime time.Duration
	Database      DatabaseConfig
}

// Load reads configuration from the environment. Every default is a local
// development value and expected to be overridden in deployment.
func Load() Config {
	secret := utils.GetEnvAsString("JWT_SECRET_KEY", "")
	if secret == "" {
		log.Println("WARNING: JWT_SECRET_KEY not set, using insecure development default")
		secret = DefaultJWTSecret
	}

	return Config{
		Port:          utils.GetEnvAsString("PORT", "8080"),
		MaxBodyBytes:  utils.GetEnvAsInt64("MAX_REQUEST_BODY_BYTES", 1<<20),
		JWTSecret:     secret,
		TokenLifetime: utils.GetEnvAsDuration("JWT_EXPIRATION_TIME", 7*24*time.Hour),
		Database: DatabaseConfig{
			URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
			DatabaseName:    utils.GetEnvAsString("MONGO_DB", "notes"),
			MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
			MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
			MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second,
			ConnectTimeout:  utils.GetEnvAsDuration("MONGO_CONNECT_TIMEOUT", 5*time.Second),
		},
	}
}
