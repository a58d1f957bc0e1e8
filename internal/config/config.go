package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds environment-based settings.
type Config struct {
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string
	JWTSecret      string

	RedisAddress  string
	RedisUsername string
	RedisPassword string

	MQTTBrokerURL string

	CORSOrigins []string

	// Upstream base URLs, overridable for tests and mirrors.
	MyQuranBaseURL  string
	AlQuranBaseURL  string
	QuranComBaseURL string

	// Static host the PWA shell is fetched from on cache misses.
	ShellOriginURL string
	// Cache generation name; bump on deploy to purge the prior generation.
	CacheGeneration string
}

// Load reads configuration from the environment, after loading a .env file
// if one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		ServerAddress:   envOr("SERVER_ADDRESS", ":8080"),
		DatabaseURL:     dbURL,
		MigrationsPath:  envOr("MIGRATIONS_PATH", "./migrations"),
		JWTSecret:       jwtSecret,
		RedisAddress:    envOr("REDIS_ADDRESS", "localhost:6379"),
		RedisUsername:   os.Getenv("REDIS_USERNAME"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		MQTTBrokerURL:   envOr("MQTT_BROKER_URL", "tcp://localhost:1883"),
		MyQuranBaseURL:  envOr("MYQURAN_BASE_URL", "https://api.myquran.com"),
		AlQuranBaseURL:  envOr("ALQURAN_BASE_URL", "https://api.alquran.cloud"),
		QuranComBaseURL: envOr("QURANCOM_BASE_URL", "https://api.quran.com"),
		ShellOriginURL:  envOr("SHELL_ORIGIN_URL", "http://localhost:5173"),
		CacheGeneration: envOr("CACHE_GENERATION", "hymuslim-cache-v2"),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimSpace(origin))
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:5173"}
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
