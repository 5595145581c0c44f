package config

import (
	"os"
	"strings"

	"github.com/campusmatch/campusmatch/pkg/path"
	"github.com/joho/godotenv"
)

type IConfig interface {
	Get(key string) string
}

// Config loads environment-prefixed keys from .env, e.g. DEV_POSTGRES_HOST
// for env "DEV". A missing .env file is not an error; plain environment
// variables still apply.
type Config struct {
	Key map[string]string
	Env string
}

func NewConfig(env string) (*Config, error) {
	env = strings.ToUpper(env)

	basePath, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	if root, err := path.FindRoot(basePath, ".env", false); err == nil {
		_ = godotenv.Load(root + "/.env")
	}

	return &Config{
		Key: map[string]string{
			"POSTGRES_DB_NAME":   getEnv(env+"_POSTGRES_DB_NAME", "campusmatch"),
			"POSTGRES_USER":      getEnv(env+"_POSTGRES_USER", "postgres"),
			"POSTGRES_PASSWORD":  getEnv(env+"_POSTGRES_PASSWORD", ""),
			"POSTGRES_HOST":      getEnv(env+"_POSTGRES_HOST", "localhost"),
			"POSTGRES_PORT":      getEnv(env+"_POSTGRES_PORT", "5432"),
			"REDIS_HOST":         getEnv(env+"_REDIS_HOST", "localhost"),
			"REDIS_PORT":         getEnv(env+"_REDIS_PORT", "6379"),
			"REDIS_PASSWORD":     getEnv(env+"_REDIS_PASSWORD", ""),
			"JWT_SECRET":         getEnv(env+"_JWT_SECRET", ""),
			"AWS_REGION":         getEnv("AWS_REGION", "us-west-1"),
			"AWS_S3_BUCKET_NAME": getEnv("AWS_S3_BUCKET_NAME", ""),
			"MIGRATIONS_PATH":    getEnv("MIGRATIONS_PATH", "migrations"),
			"LOG_LEVEL":          getEnv("LOG_LEVEL", "info"),
			"LOG_FORMAT":         getEnv("LOG_FORMAT", "text"),
			"PORT":               getEnv("PORT", "8080"),
		},
		Env: env,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c *Config) Get(key string) string {
	return c.Key[key]
}
