// Package config loads the self-play settings from defaults, an optional
// YAML file and MIDDLEGAME_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"middlegame/engine"
)

var ErrInvalidConfig = errors.New("invalid config")

const envPrefix = "middlegame"

// Opening is a named book line in SAN. Move numbers such as "1." or "3..."
// may be left in Moves and are skipped.
type Opening struct {
	ECO   string `mapstructure:"eco" yaml:"eco"`
	Name  string `mapstructure:"name" yaml:"name"`
	Moves string `mapstructure:"moves" yaml:"moves"`
}

// SAN splits the opening line into its moves.
func (o Opening) SAN() []string {
	return lo.Filter(strings.Fields(o.Moves), func(tok string, _ int) bool {
		return !isMoveNumber(tok)
	})
}

func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	return strings.Trim(digits, "0123456789") == ""
}

type Config struct {
	MaxDepth    int       `mapstructure:"max_depth"`
	TTCapacity  int       `mapstructure:"tt_capacity"`
	NullMove    bool      `mapstructure:"null_move"`
	MaxPlies    int       `mapstructure:"max_plies"`
	LogLevel    string    `mapstructure:"log_level"`
	Seed        string    `mapstructure:"seed"`
	Games       int       `mapstructure:"games"`
	Concurrency int       `mapstructure:"concurrency"`
	Openings    []Opening `mapstructure:"openings"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max_depth", DefaultMaxDepth)
	v.SetDefault("tt_capacity", engine.DefaultTTCapacity)
	v.SetDefault("null_move", true)
	v.SetDefault("max_plies", DefaultMaxPlies)
	v.SetDefault("log_level", zerolog.LevelInfoValue)
	v.SetDefault("seed", "")
	v.SetDefault("games", 1)
	v.SetDefault("concurrency", runtime.NumCPU())
	v.SetDefault("openings", DefaultOpenings)
}

// Load reads the configuration. An empty path uses defaults and the
// environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxDepth < 1 || c.MaxDepth >= engine.MaxPly {
		errs = append(errs, fmt.Errorf("max_depth must be in [1, %d], got %d", engine.MaxPly-1, c.MaxDepth))
	}
	if c.TTCapacity < 1 {
		errs = append(errs, fmt.Errorf("tt_capacity must be positive, got %d", c.TTCapacity))
	}
	if c.MaxPlies < 1 {
		errs = append(errs, fmt.Errorf("max_plies must be positive, got %d", c.MaxPlies))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("concurrency must be positive, got %d", c.Concurrency))
	}
	for i, o := range c.Openings {
		if o.Name == "" {
			errs = append(errs, fmt.Errorf("opening %d has no name", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Level is the parsed log level; Validate guarantees it parses.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
