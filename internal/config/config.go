package config

import (
	"os"
	"strconv"
	"strings"
)

// Record backends.
const (
	RecordBackendMemory   = "memory"
	RecordBackendPostgres = "postgres"
)

// Storage backends.
const (
	StorageBackendLocal = "local"
	StorageBackendMinIO = "minio"
	StorageBackendGCS   = "gcs"
)

// DefaultMaxUploadBytes is the upload size limit (50 MiB).
const DefaultMaxUploadBytes int64 = 50 << 20

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// GCSConfig holds Google Cloud Storage settings.
// An empty CredentialsFile means Application Default Credentials.
type GCSConfig struct {
	Bucket          string
	CredentialsFile string
}

// StorageConfig selects and configures the backing file storage.
type StorageConfig struct {
	Backend string
	Root    string
	MinIO   MinIOConfig
	GCS     GCSConfig
}

// UploadConfig holds the upload policy.
type UploadConfig struct {
	MaxBytes int64
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppName       string
	AppEnv        string
	AppHost       string
	Port          string
	LogLevel      string
	Timezone      string
	CORSOrigins   string
	RecordBackend string
	SeedSample    bool
	Database      DatabaseConfig
	Storage       StorageConfig
	Upload        UploadConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppName:       getEnv("APP_NAME", "doclib"),
		AppEnv:        getEnv("APP_ENV", "production"),
		AppHost:       getEnv("APP_HOST", "localhost:8080"),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Timezone:      getEnv("TZ_LOCATION", "UTC"),
		CORSOrigins:   getEnv("CORS_ALLOW_ORIGINS", "*"),
		RecordBackend: strings.ToLower(getEnv("RECORD_BACKEND", RecordBackendMemory)),
		SeedSample:    getEnvBool("SEED_SAMPLE_DATA", false),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendLocal)),
			Root:    getEnv("STORAGE_ROOT", "uploads"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			GCS: GCSConfig{
				Bucket:          getEnv("GCS_BUCKET", ""),
				CredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),
			},
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil && i > 0 {
			return i
		}
	}
	return def
}
