package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreFirestore = "firestore"
	StoreSQLite    = "sqlite"
	StoreMemory    = "memory"

	StorageLocal = "local"
	StorageGCS   = "gcs"
)

type Config struct {
	ServerPort  string
	Environment string

	StoreDriver     string
	FirebaseProject string
	CredentialsPath string
	SQLitePath      string

	StorageBackend string
	StorageRoot    string
	StorageBucket  string
	AssetPrefix    string
	ExportPrefix   string
	MaxUploadMB    int64

	RateLimitRPS   float64
	RateLimitBurst int

	StrictCategoryUpdate bool
	StrictProjectConfig  bool

	CORSOrigins []string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8001"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		CredentialsPath: getEnv("GOOGLE_APPLICATION_CREDENTIALS_PATH", ""),
		SQLitePath:      getEnv("SQLITE_PATH", "motionstock.db"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageLocal)),
		StorageRoot:    getEnv("STORAGE_ROOT", "./uploads"),
		StorageBucket:  getEnv("STORAGE_BUCKET", ""),
		AssetPrefix:    getEnv("ASSET_PREFIX", "motion_graphics"),
		ExportPrefix:   getEnv("EXPORT_PREFIX", "exports"),
		MaxUploadMB:    getEnvAsInt64("MAX_UPLOAD_MB", 500),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: int(getEnvAsInt64("RATE_LIMIT_BURST", 10)),

		StrictCategoryUpdate: getEnvAsBool("STRICT_CATEGORY_UPDATE", false),
		StrictProjectConfig:  getEnvAsBool("STRICT_PROJECT_CONFIG", false),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreFirestore:
		if c.FirebaseProject == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required when STORE_DRIVER=firestore")
		}
	case StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.StorageBackend {
	case StorageGCS:
		if c.StorageBucket == "" {
			return fmt.Errorf("STORAGE_BUCKET is required when STORAGE_BACKEND=gcs")
		}
	case StorageLocal:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	return nil
}

// MaxUploadBytes is the request body limit for uploads in echo's BodyLimit format.
func (c *Config) MaxUploadBytes() string {
	return fmt.Sprintf("%dM", c.MaxUploadMB)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
