package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Equal(t, "mongodb://localhost:27017", AppConfig.DatabaseURL)
	assert.Equal(t, "personal_care_app", AppConfig.DatabaseName)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.False(t, AppConfig.AuthEnabled)
	assert.NotEmpty(t, AppConfig.CORSOrigins)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DATABASE_NAME", "personal_care_test")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEY", "secret")

	LoadConfig()

	assert.Equal(t, "personal_care_test", AppConfig.DatabaseName)
	assert.True(t, AppConfig.AuthEnabled)
	assert.Equal(t, "secret", AppConfig.APIKey)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	LoadConfig()
	assert.True(t, IsProduction())

	t.Setenv("ENV", "development")
	LoadConfig()
	assert.False(t, IsProduction())
}
