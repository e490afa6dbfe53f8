package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, 100, config.Parser.MinTextLength)
	assert.Equal(t, 100, config.Parser.MaxPages)
	assert.Equal(t, "categories.yaml", config.Reference.CategoriesFile)
	assert.Equal(t, "merchants.yaml", config.Reference.MerchantsFile)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-flash", config.AI.Model)
	assert.Equal(t, 30, config.AI.TimeoutSeconds)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)

	testEnvVars := map[string]string{
		"STMT_LOG_LEVEL":             "debug",
		"STMT_LOG_FORMAT":            "json",
		"STMT_CSV_DELIMITER":         ";",
		"STMT_PARSER_MAX_PAGES":      "25",
		"STMT_AI_ENABLED":            "true",
		"STMT_AI_MODEL":              "gemini-1.5-pro",
		"GEMINI_API_KEY":             "test-api-key",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, 25, config.Parser.MaxPages)
	assert.True(t, config.AI.Enabled)
	assert.Equal(t, "gemini-1.5-pro", config.AI.Model)
	assert.Equal(t, "test-api-key", config.AI.APIKey)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
parser:
  min_text_length: 50
  max_pages: 10
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, 50, config.Parser.MinTextLength)
	assert.Equal(t, 10, config.Parser.MaxPages)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)

	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "config.yaml")

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
parser:
  max_pages: 10
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("STMT_LOG_LEVEL", "error")
	t.Setenv("STMT_PARSER_MAX_PAGES", "20")
	t.Setenv("GEMINI_API_KEY", "env-api-key")

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() {
		err := os.Chdir(originalDir)
		require.NoError(t, err)
	}()

	err = os.Chdir(tempDir)
	require.NoError(t, err)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)   // env var wins
	assert.Equal(t, "|", config.CSV.Delimiter)   // config file value
	assert.Equal(t, 20, config.Parser.MaxPages)  // env var wins
	assert.Equal(t, "env-api-key", config.AI.APIKey)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name: "invalid log level",
			modifyConfig: func(c *Config) {
				c.Log.Level = "invalid"
			},
			expectError: "invalid log level",
		},
		{
			name: "invalid log format",
			modifyConfig: func(c *Config) {
				c.Log.Format = "invalid"
			},
			expectError: "invalid log format",
		},
		{
			name: "invalid CSV delimiter",
			modifyConfig: func(c *Config) {
				c.CSV.Delimiter = "abc"
			},
			expectError: "CSV delimiter must be a single character",
		},
		{
			name: "negative min text length",
			modifyConfig: func(c *Config) {
				c.Parser.MinTextLength = -1
			},
			expectError: "parser.min_text_length must not be negative",
		},
		{
			name: "zero max pages",
			modifyConfig: func(c *Config) {
				c.Parser.MaxPages = 0
			},
			expectError: "parser.max_pages must be at least 1",
		},
		{
			name: "AI enabled without API key",
			modifyConfig: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = ""
			},
			expectError: "GEMINI_API_KEY required when AI is enabled",
		},
		{
			name: "invalid timeout seconds",
			modifyConfig: func(c *Config) {
				c.AI.Enabled = true
				c.AI.APIKey = "test-key"
				c.AI.TimeoutSeconds = 0
			},
			expectError: "ai.timeout_seconds must be between 1 and 300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := baseValidConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func baseValidConfig() *Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CSV.Delimiter = ","
	c.Parser.MinTextLength = 100
	c.Parser.MaxPages = 100
	c.AI.TimeoutSeconds = 30
	return &c
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"text format info level", "info", "text"},
		{"json format debug level", "debug", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := baseValidConfig()
			config.Log.Level = tt.level
			config.Log.Format = tt.format
			logger := ConfigureLoggingFromConfig(config)
			assert.NotNil(t, logger)
		})
	}
}

// Helper function to clear test environment variables
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"STMT_LOG_LEVEL",
		"STMT_LOG_FORMAT",
		"STMT_CSV_DELIMITER",
		"STMT_PARSER_MIN_TEXT_LENGTH",
		"STMT_PARSER_MAX_PAGES",
		"STMT_REFERENCE_CATEGORIES_FILE",
		"STMT_REFERENCE_MERCHANTS_FILE",
		"STMT_AI_ENABLED",
		"STMT_AI_MODEL",
		"STMT_AI_TIMEOUT_SECONDS",
		"GEMINI_API_KEY",
	}

	for _, envVar := range envVars {
		if err := os.Unsetenv(envVar); err != nil {
			fmt.Printf("Warning: failed to unset environment variable %s: %v\n", envVar, err)
		}
	}
}
