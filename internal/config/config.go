package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrInvalidDifficulty = errors.New("difficulty must be one of easy, medium, hard")
	ErrInvalidTimeout    = errors.New("timeout must be positive")
	ErrInvalidBaseURL    = errors.New("base_url must be an absolute http(s) URL")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env        string        `mapstructure:"env"`        // "production" switches to JSON logs
	BaseURL    string        `mapstructure:"base_url"`   // OpenTDB API root
	Timeout    time.Duration `mapstructure:"timeout"`    // per-request HTTP timeout
	Difficulty string        `mapstructure:"difficulty"` // empty means any difficulty
	Log        Log           `mapstructure:"log"`
}

// Log contains logging configuration.
type Log struct {
	File  string `mapstructure:"file"`  // empty disables logging
	Level string `mapstructure:"level"` // zap level name
}

// LoadDotEnv loads variables from .env files into the process environment
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from defaults, an optional YAML file and
// TRIVIA_* environment variables. An explicit path must exist; without one,
// trivia.yaml is looked up in the working directory and the user config dir.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("base_url", "https://opentdb.com")
	v.SetDefault("timeout", "10s")
	v.SetDefault("difficulty", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("trivia")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "trivia"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Difficulty = strings.ToLower(strings.TrimSpace(cfg.Difficulty))

	return &cfg, nil
}

// Validate checks the values a user can get wrong.
func (c *Config) Validate() error {
	switch c.Difficulty {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidDifficulty, c.Difficulty)
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: got %q", ErrInvalidBaseURL, c.BaseURL)
	}

	return nil
}
