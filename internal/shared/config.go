package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	BlobBucket  string
	SessionHash string
	SessionKey  string
	Workers     int
	SweepAge    time.Duration
	CacheTTL    time.Duration
	PublicRPS   int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", ""),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		BlobBucket:  env("BLOB_BUCKET", ""),
		SessionHash: env("SESSION_HASH_KEY", ""),
		SessionKey:  env("SESSION_BLOCK_KEY", ""),
		Workers:     atoi("SWEEP_WORKERS", 8),
		SweepAge:    time.Duration(atoi("SWEEP_AGE_MINUTES", 60)) * time.Minute,
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		PublicRPS:   atoi("PUBLIC_RPS", 20),
	}
	c.RedisDB = atoi("REDIS_DB", 0)
	if !c.Configured() {
		log.Warn().Msg("MYSQL_DSN or BLOB_BUCKET is empty; dashboard will run in setup mode")
	}
	return c
}

// Configured reports whether both required connection parameters are
// present. When false the admin surface renders a setup panel instead of
// its primary calls-to-action.
func (c Config) Configured() bool {
	return c.MySQLDSN != "" && c.BlobBucket != ""
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
