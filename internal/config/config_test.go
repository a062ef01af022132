package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGO_DB", "MINIO_BUCKET", "MINIO_ENDPOINT", "MINIO_USE_SSL",
		"MEDIA_PUBLIC_URL", "CORS_ORIGINS", "RATELIMIT_AUTH_REQUESTS",
		"RATELIMIT_AUTH_WINDOW", "MAX_UPLOAD_BYTES", "MAX_JSON_BYTES", "REDIS_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "blog", cfg.MongoDB)
	assert.Equal(t, "blog-images", cfg.MinioBucket)
	assert.False(t, cfg.MinioUseSSL)
	assert.Equal(t, "http://minio:9000", cfg.MediaPublicURL)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 10, cfg.AuthRateLimit)
	assert.Equal(t, time.Minute, cfg.AuthRateWindow)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, int64(1<<20), cfg.MaxJSONBytes)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "5000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MINIO_ENDPOINT", "s3.local:9000")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MEDIA_PUBLIC_URL", "")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATELIMIT_AUTH_REQUESTS", "3")
	t.Setenv("RATELIMIT_AUTH_WINDOW", "30s")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")
	t.Setenv("MAX_JSON_BYTES", "4096")

	cfg := Load()

	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.True(t, cfg.MinioUseSSL)
	require.Equal(t, "https://s3.local:9000", cfg.MediaPublicURL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	require.Equal(t, 3, cfg.AuthRateLimit)
	require.Equal(t, 30*time.Second, cfg.AuthRateWindow)
	require.Equal(t, int64(10<<20), cfg.MaxUploadBytes, "non-positive values fall back")
	require.Equal(t, int64(4096), cfg.MaxJSONBytes)
}

func TestLoad_MediaPublicURLTrimmed(t *testing.T) {
	t.Setenv("MEDIA_PUBLIC_URL", "https://cdn.example.com/")

	cfg := Load()

	assert.Equal(t, "https://cdn.example.com", cfg.MediaPublicURL)
}
