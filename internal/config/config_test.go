package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "attendance_tracker", cfg.Database.Name)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "1h", cfg.JWT.AccessExpiration)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.False(t, cfg.Jobs.MarkAbsentEnabled)
	assert.Empty(t, cfg.Events.AttendanceQueueURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("JOB_MARK_ABSENT_ENABLED", "true")
	t.Setenv("JOB_MARK_ABSENT_INTERVAL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.Database.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Jobs.MarkAbsentEnabled)
	assert.Equal(t, 30*time.Minute, cfg.Jobs.MarkAbsentInterval)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("DB_PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Password: "secret"},
		JWT:      JWTConfig{Secret: "jwt", AccessExpiration: "1h"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.JWT.Secret = ""
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET_KEY is required")

	cfg.JWT.Secret = "jwt"
	cfg.JWT.AccessExpiration = "forever"
	assert.Error(t, cfg.Validate())
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", Name: "att", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://u:p@db:5432/att?sslmode=disable", cfg.DatabaseURL())
}
