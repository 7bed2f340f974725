package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

var configEnvKeys = []string{
	"BOT_TOKEN", "ADMIN_ID", "CHANNEL_ID",
	"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
}

// saveEnv snapshots config env vars and restores them after the test
func saveEnv(t *testing.T) {
	t.Helper()

	saved := make(map[string]string)
	for _, key := range configEnvKeys {
		if value, ok := os.LookupEnv(key); ok {
			saved[key] = value
		}
		os.Unsetenv(key)
	}

	t.Cleanup(func() {
		for _, key := range configEnvKeys {
			if value, ok := saved[key]; ok {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	})
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingBotToken(t *testing.T) {
	saveEnv(t)

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingAdminID(t *testing.T) {
	saveEnv(t)

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ADMIN_ID")
}

func TestLoad_NonNumericAdminID(t *testing.T) {
	saveEnv(t)

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("DB_PASSWORD", "test_db_password")
	os.Setenv("ADMIN_ID", "not-a-number")
	os.Setenv("CHANNEL_ID", "-1001234567890")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "ADMIN_ID")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	saveEnv(t)

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("ADMIN_ID", "123456")
	os.Setenv("CHANNEL_ID", "-1001234567890")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_WithDefaults(t *testing.T) {
	saveEnv(t)

	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("ADMIN_ID", "123456")
	os.Setenv("CHANNEL_ID", "-1001234567890")
	os.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, int64(123456), cfg.AdminID)
	assert.Equal(t, int64(-1001234567890), cfg.ChannelID)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "realtybot", cfg.Database.Name)
	assert.Equal(t, "realtybot", cfg.Database.User)
}
