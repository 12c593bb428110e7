package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	sharedConfig "ghitdesk/internal/shared/config"
)

type Config struct {
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Snapshot sharedConfig.SnapshotConfig `mapstructure:"snapshot"`
	Gemini   sharedConfig.GeminiConfig   `mapstructure:"gemini"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error; defaults and GHITDESK_* env
// variables are enough to run.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")

	viper.SetEnvPrefix("GHITDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Snapshot defaults
	viper.SetDefault("snapshot.driver", "sqlite")
	viper.SetDefault("snapshot.path", "ghitdesk.db")
	viper.SetDefault("snapshot.redis.host", "localhost")
	viper.SetDefault("snapshot.redis.port", 6379)
	viper.SetDefault("snapshot.redis.password", "")
	viper.SetDefault("snapshot.redis.db", 0)

	// Gemini defaults
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.chat_model", "gemini-3-pro-preview")
	viper.SetDefault("gemini.timeout_seconds", 30)
}
