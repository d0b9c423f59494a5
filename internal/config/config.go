package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	JWT          JWTConfig
	Auth         AuthConfig
	Notification NotificationConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
	SeedData       bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AuthConfig holds the fixed login credentials.
type AuthConfig struct {
	AdminEmail       string
	AdminPassword    string
	EmployeePassword string
}

// NotificationConfig selects where notifications are persisted.
type NotificationConfig struct {
	Store    string // 'file', 'postgres', 'redis'
	FilePath string
	RedisKey string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// RateLimitConfig uses the limiter formatted rate, e.g. "10-M".
type RateLimitConfig struct {
	Login string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	seed, err := strconv.ParseBool(getEnv("APP_SEED_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_SEED_DATA: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
		SeedData:       seed,
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Auth = AuthConfig{
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@hris.com"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		EmployeePassword: getEnv("EMPLOYEE_PASSWORD", ""),
	}

	config.Notification = NotificationConfig{
		Store:    getEnv("NOTIFICATION_STORE", "file"),
		FilePath: getEnv("NOTIFICATION_FILE_PATH", "./data/notifications.json"),
		RedisKey: getEnv("NOTIFICATION_REDIS_KEY", "hris:notifications"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hris-portal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	config.RateLimit = RateLimitConfig{
		Login: getEnv("RATE_LIMIT_LOGIN", "10-M"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	if c.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if c.Auth.EmployeePassword == "" {
		return fmt.Errorf("EMPLOYEE_PASSWORD is required")
	}

	switch c.Notification.Store {
	case "file":
		if c.Notification.FilePath == "" {
			return fmt.Errorf("NOTIFICATION_FILE_PATH is required for file store")
		}
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for postgres store")
		}
	case "redis":
		if c.Notification.RedisKey == "" {
			return fmt.Errorf("NOTIFICATION_REDIS_KEY is required for redis store")
		}
	default:
		return fmt.Errorf("unsupported NOTIFICATION_STORE: %s", c.Notification.Store)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// RedisAddr returns host:port for the redis client
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
