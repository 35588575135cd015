package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort           int     `mapstructure:"APP_PORT"`
	DatabasePath      string  `mapstructure:"DATABASE_PATH"`
	OpenAIAPIKey      string  `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL     string  `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel       string  `mapstructure:"OPENAI_MODEL"`
	OpenAISearchModel string  `mapstructure:"OPENAI_SEARCH_MODEL"`
	OpenAIMaxRetries  int     `mapstructure:"OPENAI_MAX_RETRIES"`
	OpenAITemperature float64 `mapstructure:"OPENAI_TEMPERATURE"`
	OpenAIMaxTokens   int     `mapstructure:"OPENAI_MAX_TOKENS"`
	LogLevel          string  `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/sheet-ai.db")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4.1-mini")
	viper.SetDefault("OPENAI_SEARCH_MODEL", "gpt-4o-mini-search-preview")
	viper.SetDefault("OPENAI_MAX_RETRIES", 5)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.1)
	viper.SetDefault("OPENAI_MAX_TOKENS", 1000)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
