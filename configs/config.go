package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	// Session store. RedisAddr empty -> in-memory store.
	RedisAddr  string
	SessionTTL time.Duration

	// Directory holding uploaded menu item images (<MediaDir>/menu_items).
	MediaDir string

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DBSource:      getEnv("DB_SOURCE", "restaurant.db"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        getEnvHours("JWT_TTL_HOURS", 24),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		SessionTTL:    getEnvHours("SESSION_TTL_HOURS", 24*14),
		MediaDir:      getEnv("MEDIA_DIR", "media"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvHours(key string, fallback int64) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Hour
		}
	}
	return time.Duration(fallback) * time.Hour
}
