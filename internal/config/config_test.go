package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("ADMIN_PASSWORD", "admin-pass")
	t.Setenv("EMPLOYEE_PASSWORD", "employee-pass")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.True(t, cfg.App.SeedData)
	assert.Equal(t, "admin@hris.com", cfg.Auth.AdminEmail)
	assert.Equal(t, "8h", cfg.JWT.AccessExpiration)
	assert.Equal(t, "file", cfg.Notification.Store)
	assert.Equal(t, "10-M", cfg.RateLimit.Login)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "port", key: "APP_PORT", val: "eighty"},
		{name: "seed flag", key: "APP_SEED_DATA", val: "maybe"},
		{name: "db port", key: "DB_PORT", val: "x"},
		{name: "redis db", key: "REDIS_DB", val: "x"},
		{name: "notification store", key: "NOTIFICATION_STORE", val: "s3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			JWT:          JWTConfig{Secret: "s"},
			Auth:         AuthConfig{AdminEmail: "a@b.c", AdminPassword: "p", EmployeePassword: "p"},
			Notification: NotificationConfig{Store: "file", FilePath: "n.json"},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.JWT.Secret = ""
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET_KEY is required")

	cfg = valid()
	cfg.Notification.Store = "postgres"
	assert.EqualError(t, cfg.Validate(), "DB_PASSWORD is required for postgres store")

	cfg = valid()
	cfg.Notification = NotificationConfig{Store: "redis"}
	assert.EqualError(t, cfg.Validate(), "NOTIFICATION_REDIS_KEY is required for redis store")
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "hris", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://u:p@db:5432/hris?sslmode=disable", cfg.DatabaseURL())
}
