package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORAGE_BACKEND", "MinIO")
	t.Setenv("STORAGE_ROOT", "/var/lib/doclib")
	t.Setenv("RECORD_BACKEND", "postgres")
	t.Setenv("SEED_SAMPLE_DATA", "1")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Storage.MinIO.UseSSL)
	assert.Equal(t, StorageBackendMinIO, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/doclib", cfg.Storage.Root)
	assert.Equal(t, RecordBackendPostgres, cfg.RecordBackend)
	assert.True(t, cfg.SeedSample)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORAGE_BACKEND", "STORAGE_ROOT", "RECORD_BACKEND", "MAX_UPLOAD_BYTES", "APP_ENV"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, StorageBackendLocal, cfg.Storage.Backend)
	assert.Equal(t, "uploads", cfg.Storage.Root)
	assert.Equal(t, RecordBackendMemory, cfg.RecordBackend)
	assert.Equal(t, int64(50*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.False(t, cfg.SeedSample)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvInt64(t *testing.T) {
	key := "TEST_INT64_VAR"
	defer os.Unsetenv(key)

	os.Setenv(key, "1048576")
	assert.Equal(t, int64(1048576), getEnvInt64(key, 1))

	// Non-positive limits fall back to the default.
	os.Setenv(key, "0")
	assert.Equal(t, int64(7), getEnvInt64(key, 7))

	os.Setenv(key, "nope")
	assert.Equal(t, int64(7), getEnvInt64(key, 7))
}
