package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service needs at startup. The JWT secret is
// read here once and injected into the token issuer; nothing reads it from
// the environment at request time.
type Config struct {
	Env      string // dev / staging / prod
	HTTPAddr string

	JWTSecret string
	TokenTTL  time.Duration

	DBAddr    string
	RedisAddr string
	RabbitURL string

	UploadDir string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadEnvFile loads a .env file if present. Safe to call multiple times.
func LoadEnvFile() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:       getEnv("ENV", "dev"),
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	// The secret may legitimately be absent in a misconfigured deployment;
	// token issuance and verification surface that as a 500 rather than
	// refusing to boot, matching the HTTP contract.
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	ttl, err := getDuration("TOKEN_TTL", 72*time.Hour)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	// Infrastructure dependencies are required at startup. Fail fast rather
	// than starting in a partially-initialized state.
	cfg.DBAddr = os.Getenv("DB_ADDR")
	if cfg.DBAddr == "" {
		return nil, fmt.Errorf("missing required env var: DB_ADDR")
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("missing required env var: REDIS_ADDR")
	}

	cfg.RabbitURL = os.Getenv("RABBIT_URL")
	if cfg.RabbitURL == "" {
		return nil, fmt.Errorf("missing required env var: RABBIT_URL")
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

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
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
