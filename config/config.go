package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs from its environment. It is
// built once at startup and passed down explicitly; no component reads the
// environment on its own.
type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment, loading a .env file first
// if one is present. A missing JWT_SECRET aborts startup: serving with an
// empty signing secret would make every token forgeable.
func Load() Config {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("missing required env JWT_SECRET")
	}

	addr := envString("ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}

	return Config{
		Addr:      addr,
		DBPath:    envString("DB_PATH", "data/badger"),
		JWTSecret: secret,
		TokenTTL:  envDuration("TOKEN_TTL", 24*time.Hour),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
