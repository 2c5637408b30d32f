package providers

import (
	"os"
	"path/filepath"
	"synthink/internal/structures"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 3001,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Provider: structures.ProviderConfig{
			Kind:  "gemini",
			Model: "gemini-2.0-flash",
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownProviderKind(t *testing.T) {
	c := validConfig()
	c.Provider.Kind = "anthropic"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_MissingModel(t *testing.T) {
	c := validConfig()
	c.Provider.Model = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_NegativeThinkingBudgetAllowed(t *testing.T) {
	c := validConfig()
	c.Provider.ThinkingBudget = -1
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}

func TestNewConfigProvider_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SYNTHINK_PORT", "")
	t.Setenv("PORT", "")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "config.yaml")})
	require.NoError(t, err)

	assert.Equal(t, AppName, conf.AppName)
	assert.Equal(t, AppVersion, conf.Version)
	assert.Equal(t, 3001, conf.WebServer.Port)
	assert.Equal(t, "gemini", conf.Provider.Kind)
	assert.Equal(t, "gemini-2.0-flash", conf.Provider.Model)
	assert.Equal(t, "test-key", conf.Provider.APIKey)
	assert.Equal(t, 0, conf.Provider.ThinkingBudget)
	assert.True(t, conf.Cache.Enabled)
}

func TestNewConfigProvider_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `webServer:
  host: 127.0.0.1
  port: 4000
provider:
  kind: openai
  model: gpt-4o-mini
  baseURL: http://localhost:11434/v1
metrics:
  enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("OPENAI_API_KEY=from-env-file\n"), 0o644))
	t.Setenv("SYNTHINK_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("SYNTHINK_PROVIDER_MODEL", "gpt-4.1")
	t.Setenv("OPENAI_API_KEY", "")
	os.Unsetenv("OPENAI_API_KEY")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, EnvPath: filepath.Join(dir, ".env.local"), DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", conf.WebServer.Host)
	assert.Equal(t, 4000, conf.WebServer.Port)
	assert.Equal(t, "openai", conf.Provider.Kind)
	assert.Equal(t, "gpt-4.1", conf.Provider.Model)
	assert.Equal(t, "http://localhost:11434/v1", conf.Provider.BaseURL)
	assert.Equal(t, "from-env-file", conf.Provider.APIKey)
	assert.True(t, conf.Metrics.Enabled)
	assert.True(t, conf.Debug)
}

func TestNewConfigProvider_ShippedConfigFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SYNTHINK_PORT", "")
	t.Setenv("PORT", "")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: "../../config.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "./logs", conf.Logger.Dir)
	assert.Equal(t, 3001, conf.WebServer.Port)
	assert.Equal(t, "gemini", conf.Provider.Kind)
	assert.True(t, conf.Cache.Enabled)
}

func TestConfigValidator_RelativeLogDir(t *testing.T) {
	c := validConfig()
	c.Logger.Dir = "logs"
	v := NewCnfValidator(c)
	assert.NoError(t, v.Validate())
}

func TestNewConfigProvider_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider:\n  kind: nobody\n"), 0o644))

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewClientConfigProvider(t *testing.T) {
	t.Setenv("SYNTHINK_SERVER_URL", "http://poems.example:8080")
	t.Setenv("SYNTHINK_LOG_LEVEL", "")
	t.Setenv("SYNTHINK_DATA_DIR", "")

	v := viper.New()
	v.Set("dataDir", t.TempDir())
	conf, err := NewClientConfigProvider(v)
	require.NoError(t, err)

	assert.Equal(t, "http://poems.example:8080", conf.ServerURL)
	assert.Equal(t, "warn", conf.LogLevel)
	assert.False(t, conf.Compress)
}

func TestNewClientConfigProvider_RejectsBadURL(t *testing.T) {
	v := viper.New()
	v.Set("serverURL", "not a url")
	_, err := NewClientConfigProvider(v)
	assert.Error(t, err)
}
