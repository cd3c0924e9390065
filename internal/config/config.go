package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	DBDriver      string
	SQLitePath    string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	SessionSecret string
	ModelPath     string
	EncoderPath   string
	AssetsDir     string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		SQLitePath:    getEnv("SQLITE_PATH", "users.db"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/cropadvisor?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me"),
		ModelPath:     getEnv("MODEL_PATH", "model/crop_model.json"),
		EncoderPath:   getEnv("ENCODER_PATH", "model/encoder.json"),
		AssetsDir:     getEnv("ASSETS_DIR", "static/images"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
