package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/AlibekovAA/todo-board/backend/internal/common/constants"
	commonerrors "github.com/AlibekovAA/todo-board/backend/internal/common/errors"
)

type ServerConfig struct {
	HTTPPort       string
	JWTSecret      string
	AccessTokenTTL time.Duration
	RequestTimeout time.Duration
	LogDir         string
	LogLevel       string
}

// LoadServerConfig reads the environment, after loading an optional .env file
// from the working directory.
func LoadServerConfig() (ServerConfig, error) {
	_ = godotenv.Load()

	jwtSecret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return ServerConfig{}, err
	}

	if err := validateJWTSecret(jwtSecret); err != nil {
		return ServerConfig{}, err
	}

	return ServerConfig{
		HTTPPort:       getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		JWTSecret:      jwtSecret,
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", constants.DefaultAccessTokenTTL),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		LogDir:         getEnv("LOG_DIR", ""),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
	}, nil
}

func validateJWTSecret(secret string) error {
	if len(secret) < constants.JWTSecretMinLength {
		return commonerrors.ErrInvalidJWTSecret.WithCause(fmt.Errorf("got %d bytes", len(secret)))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", commonerrors.ErrMissingRequiredEnv.WithCause(fmt.Errorf("%s", key))
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
