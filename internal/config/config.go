package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	AppEnv        string
	JWTSecret     string
	RedisAddr     string
	CatalogDriver string // "memory" or "postgres"
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	LoginDelay    time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getenv("APP_PORT", "8080"),
		AppEnv:        getenv("APP_ENV", "development"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CatalogDriver: getenv("CATALOG_DRIVER", "memory"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getenv("DB_PORT", "5432"),
		LoginDelay:    time.Duration(getenvInt("LOGIN_DELAY_MS", 1000)) * time.Millisecond,
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
