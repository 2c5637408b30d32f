package providers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"synthink/internal/structures"

	"github.com/gookit/validate"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AppName    = "Synthetic Ink"
	AppVersion = "1.2.0"
)

// credentialEnv names the environment variable holding each provider's API key.
var credentialEnv = map[string]string{
	"gemini": "GEMINI_API_KEY",
	"openai": "OPENAI_API_KEY",
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	if err := loadEnvFile(flags.EnvPath); err != nil {
		return nil, err
	}

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	setConfigDefaults(v)

	v.BindEnv("logger.level", "SYNTHINK_LOG_LEVEL")
	v.BindEnv("webServer.port", "SYNTHINK_PORT", "PORT")
	v.BindEnv("provider.kind", "SYNTHINK_PROVIDER_KIND")
	v.BindEnv("provider.model", "SYNTHINK_PROVIDER_MODEL")
	v.BindEnv("provider.apiKey", "SYNTHINK_PROVIDER_API_KEY")
	v.BindEnv("provider.baseURL", "SYNTHINK_PROVIDER_BASE_URL")
	v.BindEnv("cache.enabled", "SYNTHINK_CACHE_ENABLED")
	v.BindEnv("metrics.enabled", "SYNTHINK_METRICS_ENABLED")
	v.BindEnv("tracing.endpoint", "SYNTHINK_OTLP_ENDPOINT")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if conf.Provider.APIKey == "" {
		conf.Provider.APIKey = os.Getenv(credentialEnv[conf.Provider.Kind])
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Version = AppVersion
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 3001)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", "./logs")
	v.SetDefault("provider.kind", "gemini")
	v.SetDefault("provider.model", "gemini-2.0-flash")
	v.SetDefault("provider.thinkingBudget", 0)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 8)
	v.SetDefault("cache.ttl", 300)
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("tracing.sampleRate", 1.0)
}

// NewClientConfigProvider reads client settings from v, which the caller has
// already bound to command-line flags. SYNTHINK_SERVER_URL, SYNTHINK_DATA_DIR,
// SYNTHINK_COMPRESS and SYNTHINK_LOG_LEVEL override the defaults.
func NewClientConfigProvider(v *viper.Viper) (*structures.ClientConfig, error) {
	var conf structures.ClientConfig

	dataDir := ".synthink"
	if dir, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(dir, "synthink")
	}
	v.SetDefault("serverURL", "http://localhost:3001")
	v.SetDefault("dataDir", dataDir)
	v.SetDefault("compress", false)
	v.SetDefault("logLevel", "warn")

	v.BindEnv("serverURL", "SYNTHINK_SERVER_URL")
	v.BindEnv("dataDir", "SYNTHINK_DATA_DIR")
	v.BindEnv("compress", "SYNTHINK_COMPRESS")
	v.BindEnv("logLevel", "SYNTHINK_LOG_LEVEL")

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into client config struct: %w", err)
	}

	val := validate.Struct(&conf)
	if !val.Validate() {
		return nil, val.Errors
	}
	return &conf, nil
}

// loadEnvFile reads KEY=value pairs into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
