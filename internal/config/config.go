// Package config loads application settings from a config file, a .env file
// and IAMFIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/iamfit/internal/llm"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "IAMFIT"

// Config holds all application settings.
type Config struct {
	DB     string       `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	Export ExportConfig `mapstructure:"export"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// ExportConfig sets report export defaults.
type ExportConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// ProviderConfig holds one LLM provider's credentials.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// LLMConfig selects and configures the coach's LLM provider.
type LLMConfig struct {
	Provider   string         `mapstructure:"provider"`
	Timeout    time.Duration  `mapstructure:"timeout"`
	Anthropic  ProviderConfig `mapstructure:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai"`
	Gemini     ProviderConfig `mapstructure:"gemini"`
	OpenRouter ProviderConfig `mapstructure:"openrouter"`
}

// keys lists every setting so environment overrides resolve during Unmarshal.
var keys = []string{
	"db",
	"log.level", "log.format", "log.file",
	"export.dir", "export.format",
	"llm.provider", "llm.timeout",
	"llm.anthropic.api_key", "llm.anthropic.model", "llm.anthropic.base_url",
	"llm.openai.api_key", "llm.openai.model", "llm.openai.base_url",
	"llm.gemini.api_key", "llm.gemini.model", "llm.gemini.base_url",
	"llm.openrouter.api_key", "llm.openrouter.model", "llm.openrouter.base_url",
}

func setDefaults(v *viper.Viper) {
	for _, k := range keys {
		v.SetDefault(k, "")
	}
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("export.format", "json")
	v.SetDefault("llm.timeout", 30*time.Second)
}

// Load reads settings. path names an explicit config file; when empty the
// default location is used if it exists. A .env file in the working
// directory is loaded first without overriding the real environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir, err := DefaultDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// DefaultDir returns $XDG_CONFIG_HOME/iamfit, or ~/.config/iamfit.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "iamfit"), nil
}

// LLMSettings converts the loaded settings into an llm.Config. When no
// provider is configured it falls back to the standard *_API_KEY variables.
// The boolean is false when no provider could be found.
func (c *Config) LLMSettings() (llm.Config, bool) {
	s := c.LLM
	if s.Provider == "" {
		cfg, ok := llm.DiscoverConfig()
		if ok && s.Timeout > 0 {
			cfg.Timeout = s.Timeout
		}
		return cfg, ok
	}

	cfg := llm.DefaultConfig()
	cfg.Provider = s.Provider
	if s.Timeout > 0 {
		cfg.Timeout = s.Timeout
	}
	override(&cfg.Anthropic.APIKey, s.Anthropic.APIKey)
	override(&cfg.Anthropic.Model, s.Anthropic.Model)
	override(&cfg.Anthropic.BaseURL, s.Anthropic.BaseURL)
	override(&cfg.OpenAI.APIKey, s.OpenAI.APIKey)
	override(&cfg.OpenAI.Model, s.OpenAI.Model)
	override(&cfg.OpenAI.BaseURL, s.OpenAI.BaseURL)
	override(&cfg.Gemini.APIKey, s.Gemini.APIKey)
	override(&cfg.Gemini.Model, s.Gemini.Model)
	override(&cfg.Gemini.BaseURL, s.Gemini.BaseURL)
	override(&cfg.OpenRouter.APIKey, s.OpenRouter.APIKey)
	override(&cfg.OpenRouter.Model, s.OpenRouter.Model)
	override(&cfg.OpenRouter.BaseURL, s.OpenRouter.BaseURL)
	return cfg, true
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
