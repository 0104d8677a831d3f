package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	DBDriver  string
	DBURL     string
	TokenKey  string
	TLSCert   string
	TLSKey    string
	RateLimit float64 // requests per second per IP
	RateBurst int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads .env (if present) and the environment. Variables already set
// in the environment win over .env.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Addr:      getenv("ADDR", ":443"),
		DBDriver:  getenv("DATABASE_DRIVER", "postgres"),
		DBURL:     os.Getenv("DATABASE_URL"),
		TokenKey:  os.Getenv("TOKEN_KEY"),
		TLSCert:   getenv("TLS_CERT", "server.crt"),
		TLSKey:    getenv("TLS_KEY", "server.key"),
		RateLimit: 1,
		RateBurst: 3,
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT: invalid value %q", v)
		}
		cfg.RateLimit = f
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RATE_BURST: invalid value %q", v)
		}
		cfg.RateBurst = n
	}
	if cfg.DBDriver == "sqlite" && cfg.DBURL == "" {
		cfg.DBURL = "bm11.db"
	}
	if cfg.TokenKey == "" {
		return Config{}, errors.New("TOKEN_KEY environment variable is not set")
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return Config{}, fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", cfg.DBDriver)
	}
	return cfg, nil
}

// TLS reports whether both certificate files are configured and present.
func (c Config) TLS() bool {
	if c.TLSCert == "" || c.TLSKey == "" {
		return false
	}
	_, certErr := os.Stat(c.TLSCert)
	_, keyErr := os.Stat(c.TLSKey)
	return certErr == nil && keyErr == nil
}
