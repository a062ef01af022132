package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	PostgresDSN   string
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MediaPublicURL string

	JWTSecret   string
	CORSOrigins []string

	AuthRateLimit  int
	AuthRateWindow time.Duration
	MaxUploadBytes int64
	MaxJSONBytes   int64
}

// Load reads an optional .env file and then the process environment.
// Values already present in the environment win over the file.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getenv("PORT", "8080"),
		Env:      getenv("ENV", "dev"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		PostgresDSN:   getenv("POSTGRES_DSN", ""),
		MongoURI:      getenv("MONGO_URI", ""),
		MongoDB:       getenv("MONGO_DB", "blog"),
		RedisAddr:     getenv("REDIS_ADDR", ""),
		RedisPassword: getenv("REDIS_PASSWORD", ""),

		MinioEndpoint:  getenv("MINIO_ENDPOINT", "minio:9000"),
		MinioAccessKey: getenv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getenv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getenv("MINIO_BUCKET", "blog-images"),
		MinioUseSSL:    getenv("MINIO_USE_SSL", "false") == "true",

		JWTSecret:   getenv("JWT_SECRET", ""),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		AuthRateLimit:  getenvInt("RATELIMIT_AUTH_REQUESTS", 10),
		AuthRateWindow: getenvDuration("RATELIMIT_AUTH_WINDOW", time.Minute),
		MaxUploadBytes: int64(getenvInt("MAX_UPLOAD_BYTES", 10<<20)),
		MaxJSONBytes:   int64(getenvInt("MAX_JSON_BYTES", 1<<20)),
	}

	// Images are served straight from the object store unless a CDN or
	// reverse proxy is put in front of it.
	scheme := "http://"
	if cfg.MinioUseSSL {
		scheme = "https://"
	}
	cfg.MediaPublicURL = strings.TrimRight(getenv("MEDIA_PUBLIC_URL", scheme+cfg.MinioEndpoint), "/")

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
