package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	GymSourceBase string
	GymSourceKey  string
	Workers       int
	IngestIDs     []int64
	CacheTTL      time.Duration
	Timezone      string
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
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/gymfinder?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		GymSourceBase: env("GYMSOURCE_BASE_URL", "https://content.gymsource.cn/v1"),
		GymSourceKey:  env("GYMSOURCE_API_KEY", ""),
		Workers:       atoi("INGEST_WORKERS", 8),
		IngestIDs:     ids("INGEST_IDS"),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		Timezone:      env("TIMEZONE", "Asia/Shanghai"),
	}
	if c.GymSourceKey == "" {
		log.Warn().Msg("GYMSOURCE_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// ids parses a comma-separated id list; malformed entries are skipped.
func ids(k string) []int64 {
	var out []int64
	for _, part := range strings.Split(os.Getenv(k), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.ParseInt(part, 10, 64); err == nil {
			out = append(out, n)
		}
	}
	return out
}
