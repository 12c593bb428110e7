package config

// LoggerConfig controls the application logger.
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

// SnapshotConfig selects and configures the collection snapshot backend.
type SnapshotConfig struct {
	Driver string      `mapstructure:"driver" validate:"oneof=sqlite redis memory"`
	Path   string      `mapstructure:"path"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds connection settings for the redis snapshot backend.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GeminiConfig holds settings for the generative-language API client.
type GeminiConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	ChatModel      string `mapstructure:"chat_model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
}
