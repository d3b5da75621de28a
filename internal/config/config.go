// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spectrumsync/backend/internal/password"
)

// Config holds all service configuration.
type Config struct {
	Port             string
	MongoURI         string
	MongoDB          string
	UsersCollection  string
	EventsCollection string
	JWTSecret        string
	TokenTTL         time.Duration
	BcryptCost       int
}

// Load reads the environment. Missing required settings are a startup error,
// not something to discover on the first request.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             os.Getenv("PORT"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          os.Getenv("MONGO_DB"),
		UsersCollection:  os.Getenv("MONGO_USERS_COLLECTION"),
		EventsCollection: getenv("MONGO_EVENTS_COLLECTION", "events"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
	}

	required := map[string]string{
		"PORT":                   cfg.Port,
		"MONGO_URI":              cfg.MongoURI,
		"MONGO_DB":               cfg.MongoDB,
		"MONGO_USERS_COLLECTION": cfg.UsersCollection,
		"JWT_SECRET":             cfg.JWTSecret,
	}
	for name, value := range required {
		if value == "" {
			return nil, fmt.Errorf("config: %s is required", name)
		}
	}

	ttl, err := getenvInt("TOKEN_TTL_SECONDS", 3600)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	cost, err := getenvInt("BCRYPT_COST", password.DefaultCost)
	if err != nil {
		return nil, err
	}
	cfg.BcryptCost = cost

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}
