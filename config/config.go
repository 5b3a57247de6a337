package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"port"`
	AIProvider   string `mapstructure:"ai_provider"`
	AIEndpoint   string `mapstructure:"ai_endpoint"`
	Model        string `mapstructure:"model"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	// GeminiAPIKeys is comma separated in the environment; the service
	// rotates through them on provider errors.
	GeminiAPIKeys   string `mapstructure:"GEMINI_API_KEYS"`
	MongoURI        string `mapstructure:"MONGODB_URI"`
	MongoDatabase   string `mapstructure:"mongo_database"`
	UploadDir       string `mapstructure:"upload_dir"`
	MaxPages        int    `mapstructure:"max_pages"`
	MaxPromptChars  int    `mapstructure:"max_prompt_chars"`
	ExtractAttempts int    `mapstructure:"extract_attempts"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")
	v.BindEnv("MONGODB_URI")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.MongoDatabase == "" {
		config.MongoDatabase = "paperdesk"
	}
	if config.UploadDir == "" {
		config.UploadDir = "uploads"
	}
	if config.MaxPages <= 0 {
		config.MaxPages = 10
	}
	if config.MaxPromptChars <= 0 {
		config.MaxPromptChars = 8000
	}
	if config.ExtractAttempts <= 0 {
		config.ExtractAttempts = 2
	}

	return &config, nil
}

// GeminiKeys splits the comma separated key list from the environment.
func (c *Config) GeminiKeys() []string {
	if c.GeminiAPIKeys == "" {
		return nil
	}
	parts := strings.Split(c.GeminiAPIKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	return keys
}
