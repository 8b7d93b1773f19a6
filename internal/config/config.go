package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Assistant providers selectable with ASSISTANT_PROVIDER.
const (
	ProviderBackend = "backend"
	ProviderOpenAI  = "openai"
)

type Config struct {
	AppPort            int           `mapstructure:"APP_PORT"`
	DatabasePath       string        `mapstructure:"DATABASE_PATH"`
	BackendURL         string        `mapstructure:"BACKEND_URL"`
	BackendTimeout     time.Duration `mapstructure:"BACKEND_TIMEOUT"`
	AssistantProvider  string        `mapstructure:"ASSISTANT_PROVIDER"`
	OpenAIAPIKey       string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel        string        `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL      string        `mapstructure:"OPENAI_BASE_URL"`
	HistoryWindow      int           `mapstructure:"HISTORY_WINDOW"`
	ExportTimezone     string        `mapstructure:"EXPORT_TIMEZONE"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/compliance.db")
	viper.SetDefault("BACKEND_URL", "http://localhost:8080/api")
	viper.SetDefault("BACKEND_TIMEOUT", "120s")
	viper.SetDefault("ASSISTANT_PROVIDER", ProviderBackend)
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("HISTORY_WINDOW", 10)
	viper.SetDefault("EXPORT_TIMEZONE", "Europe/Rome")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.AssistantProvider) {
	case ProviderBackend:
		if c.BackendURL == "" {
			return fmt.Errorf("config: BACKEND_URL is required with the %q provider", ProviderBackend)
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("config: OPENAI_API_KEY is required with the %q provider", ProviderOpenAI)
		}
	default:
		return fmt.Errorf("config: unknown ASSISTANT_PROVIDER %q", c.AssistantProvider)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves EXPORT_TIMEZONE. An empty value means local time.
func (c *Config) Location() (*time.Location, error) {
	if c.ExportTimezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.ExportTimezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid EXPORT_TIMEZONE %q: %w", c.ExportTimezone, err)
	}
	return loc, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
