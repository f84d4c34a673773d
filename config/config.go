package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                   = "8080"
	DefaultAccessTokenExpiryMin   = 15
	DefaultRefreshTokenExpiryDays = 30
	DefaultRefreshSecretBytes     = 32
	DefaultMaxActiveRefreshTokens = 5
	DefaultLoginMaxAttempts       = 5
	DefaultLoginWindowMinutes     = 15
)

type Config struct {
	Env                    string
	Port                   string
	DBURL                  string
	AccessTokenSecret      string
	AccessExpiryMin        int
	RefreshExpiryDays      int
	RefreshSecretBytes     int
	MaxActiveRefreshTokens int
	LoginMaxAttempts       int
	LoginWindowMinutes     int
}

// Load reads config/.env.dev or config/.env.prod depending on ENV, then lets
// real environment variables override file values. Missing required keys are
// fatal.
func Load() *Config {
	env := getEnv("ENV", "development")

	envFile := filepath.Join("config", ".env.dev")
	if env == "production" {
		envFile = filepath.Join("config", ".env.prod")
	}

	// godotenv never overrides variables already set in the environment,
	// which gives env vars precedence over file values.
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("no env file loaded from %s: %v", envFile, err)
	}

	return &Config{
		Env:                    env,
		Port:                   getEnv("PORT", DefaultPort),
		DBURL:                  mustGetEnv("DB_URL"),
		AccessTokenSecret:      mustGetEnv("ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:        getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryDays:      getEnvAsInt("REFRESH_TOKEN_EXPIRY_DAYS", DefaultRefreshTokenExpiryDays),
		RefreshSecretBytes:     getEnvAsInt("REFRESH_SECRET_BYTES", DefaultRefreshSecretBytes),
		MaxActiveRefreshTokens: getEnvAsInt("MAX_ACTIVE_REFRESH_TOKENS", DefaultMaxActiveRefreshTokens),
		LoginMaxAttempts:       getEnvAsInt("LOGIN_MAX_ATTEMPTS", DefaultLoginMaxAttempts),
		LoginWindowMinutes:     getEnvAsInt("LOGIN_WINDOW_MINUTES", DefaultLoginWindowMinutes),
	}
}

func (c *Config) AccessTokenExpiry() time.Duration {
	return time.Duration(c.AccessExpiryMin) * time.Minute
}

func (c *Config) RefreshTokenExpiry() time.Duration {
	return time.Duration(c.RefreshExpiryDays) * 24 * time.Hour
}

func (c *Config) LoginWindow() time.Duration {
	return time.Duration(c.LoginWindowMinutes) * time.Minute
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
