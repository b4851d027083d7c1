package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FilterAll is the sentinel filter value that selects every category or difficulty.
const FilterAll = "all"

// LanguageAuto selects the system language at startup.
const LanguageAuto = "auto"

// Config holds application configuration loaded from files, environment variables and flags.
type Config struct {
	Env             string   `mapstructure:"env"`              // local, dev, production
	Language        string   `mapstructure:"language"`         // active language at startup, or "auto"
	DefaultLanguage string   `mapstructure:"default_language"` // fallback language for every lookup
	Languages       []string `mapstructure:"languages"`        // supported set; empty means discover from locales dir
	Log             Log      `mapstructure:"log"`
	Paths           Paths    `mapstructure:"paths"`
	Quiz            Quiz     `mapstructure:"quiz"`
	Database        Database `mapstructure:"database"`
	HTTP            HTTP     `mapstructure:"http"`
}

// Log configures the zap logger.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty means stderr
}

// Paths locates content on disk. Empty paths use the embedded defaults.
type Paths struct {
	Questions string `mapstructure:"questions"`
	Locales   string `mapstructure:"locales"`
}

// Quiz holds the initial quiz settings.
type Quiz struct {
	Limit      int    `mapstructure:"limit"`
	MinLimit   int    `mapstructure:"min_limit"`
	MaxLimit   int    `mapstructure:"max_limit"`
	Category   string `mapstructure:"category"`
	Difficulty string `mapstructure:"difficulty"`
}

// Database configures the result history store.
type Database struct {
	Path string `mapstructure:"path"`
}

// HTTP configures the read-only API server.
type HTTP struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"lang":      "language",
	"questions": "paths.questions",
	"locales":   "paths.locales",
	"db":        "database.path",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load reads configuration from an optional config file, VIMQUIZ_* environment
// variables and the given flag set. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "vimquiz"))
		}
	}

	setDefaults(v)

	v.SetEnvPrefix("vimquiz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database.path", "VIMQUIZ_DATABASE_PATH", "VIMQUIZ_DB")
	_ = v.BindEnv("env", "VIMQUIZ_ENV", "APP_ENV")

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	cfg.normalize()
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("language", "en")
	v.SetDefault("default_language", "en")
	v.SetDefault("languages", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("paths.questions", "")
	v.SetDefault("paths.locales", "")
	v.SetDefault("quiz.limit", 20)
	v.SetDefault("quiz.min_limit", 5)
	v.SetDefault("quiz.max_limit", 100)
	v.SetDefault("quiz.category", FilterAll)
	v.SetDefault("quiz.difficulty", FilterAll)
	v.SetDefault("database.path", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allowed_origins", []string{"http://localhost:3000"})
}

// normalize clamps out-of-range values instead of rejecting them.
func (c *Config) normalize() {
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
	if c.Language == "" {
		c.Language = c.DefaultLanguage
	}
	if c.Quiz.MinLimit < 1 {
		c.Quiz.MinLimit = 1
	}
	if c.Quiz.MaxLimit < c.Quiz.MinLimit {
		c.Quiz.MaxLimit = c.Quiz.MinLimit
	}
	c.Quiz.Limit = c.Quiz.ClampLimit(c.Quiz.Limit)
	if c.Quiz.Category == "" {
		c.Quiz.Category = FilterAll
	}
	if c.Quiz.Difficulty == "" {
		c.Quiz.Difficulty = FilterAll
	}
}

// ClampLimit bounds n to [MinLimit, MaxLimit].
func (q Quiz) ClampLimit(n int) int {
	if n < q.MinLimit {
		return q.MinLimit
	}
	if n > q.MaxLimit {
		return q.MaxLimit
	}
	return n
}

// IsProduction reports whether the production logger should be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}
