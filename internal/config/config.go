package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SchemeSHA256 = "sha256"
	SchemeBcrypt = "bcrypt"
)

type Config struct {
	// App
	Env string // dev / staging / prod
	// HTTP
	HTTPAddr string
	// Auth / Security
	JWTSecret      string
	JWTIssuer      string
	JWTAudience    string
	TokenExpiry    time.Duration
	PasswordScheme string // sha256 (default) or bcrypt

	// Infrastructure
	DBAddr string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	CORSOrigins []string
}

func Load() (*Config, error) {
	// .env is a dev convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
	}

	// Token configuration is required up front: a service that cannot sign or
	// validate tokens must not start.
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}
	cfg.JWTIssuer = os.Getenv("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		return nil, fmt.Errorf("missing required env var: JWT_ISSUER")
	}
	cfg.JWTAudience = os.Getenv("JWT_AUDIENCE")
	if cfg.JWTAudience == "" {
		return nil, fmt.Errorf("missing required env var: JWT_AUDIENCE")
	}

	minutes, err := getInt("TOKEN_EXPIRE_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	if minutes <= 0 {
		return nil, fmt.Errorf("TOKEN_EXPIRE_MINUTES must be positive, got %d", minutes)
	}
	cfg.TokenExpiry = time.Duration(minutes) * time.Minute

	cfg.PasswordScheme = getEnv("PASSWORD_SCHEME", SchemeSHA256)
	if cfg.PasswordScheme != SchemeSHA256 && cfg.PasswordScheme != SchemeBcrypt {
		return nil, fmt.Errorf("invalid PASSWORD_SCHEME: %q", cfg.PasswordScheme)
	}

	cfg.DBAddr = os.Getenv("DB_ADDR")
	if cfg.DBAddr == "" {
		return nil, fmt.Errorf("missing required env var: DB_ADDR")
	}

	rt, err := getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPReadTimeout = rt

	wt, err := getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.HTTPWriteTimeout = wt

	it, err := getDuration("HTTP_IDLE_TIMEOUT", time.Minute)
	if err != nil {
		return nil, err
	}
	cfg.HTTPIdleTimeout = it

	cfg.CORSOrigins = []string{getEnv("CORS_ORIGIN", "http://localhost:3000")}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %q: %w", key, v, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}
