package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "sciquiz/internal/platform/errors"
)

const (
	EnvSeed     = "SCIQUIZ_SEED"
	EnvHistory  = "SCIQUIZ_HISTORY"
	EnvDBPath   = "SCIQUIZ_DB_PATH"
	EnvLogFile  = "SCIQUIZ_LOG_FILE"
	EnvLogLevel = "SCIQUIZ_LOG_LEVEL"
)

type Config struct {
	Defaults   Defaults   `yaml:"defaults"`
	Questions  Bounds     `yaml:"questions"`
	TimeLimits TimeLimits `yaml:"time_limits"`
	// Seed fixes the question random source; zero means seed from the clock.
	Seed    uint64  `yaml:"seed"`
	History History `yaml:"history"`
	Log     Log     `yaml:"log"`

	Path string `yaml:"-"`
}

type Defaults struct {
	Difficulty string `yaml:"difficulty"`
	Questions  int    `yaml:"questions"`
}

type Bounds struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// TimeLimits are per-question budgets in seconds.
type TimeLimits struct {
	Easy   int `yaml:"easy"`
	Medium int `yaml:"medium"`
	Hard   int `yaml:"hard"`
}

type History struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		Defaults:   Defaults{Difficulty: "Medium", Questions: 5},
		Questions:  Bounds{Min: 3, Max: 20},
		TimeLimits: TimeLimits{Easy: 30, Medium: 20, Hard: 15},
		History:    History{Enabled: false, DBPath: filepath.Join(dir, "history.db")},
		Log:        Log{Level: "info"},
		Path:       filepath.Join(dir, "config.yaml"),
	}
}

// DefaultPath is $XDG_CONFIG_HOME/sciquiz/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "sciquiz", "config.yaml"), nil
}

// New loads the config file at path (or the default path when empty),
// applies .env and environment overrides, and validates the result.
func New(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default(filepath.Dir(path))
	cfg.Path = path
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a single strict YAML document into cfg, keeping fields the
// document leaves out.
func Parse(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an unsigned integer", apperrors.ErrInvalidInput, EnvSeed, v)
		}
		cfg.Seed = seed
	}
	if v := strings.TrimSpace(getenv(EnvHistory)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", apperrors.ErrInvalidInput, EnvHistory, v)
		}
		cfg.History.Enabled = enabled
	}
	if v := strings.TrimSpace(getenv(EnvDBPath)); v != "" {
		cfg.History.DBPath = v
	}
	if v := strings.TrimSpace(getenv(EnvLogFile)); v != "" {
		cfg.Log.File = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Defaults.Difficulty)) {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("%w: defaults.difficulty %q (expected easy|medium|hard)", apperrors.ErrInvalidInput, c.Defaults.Difficulty)
	}
	if c.Questions.Min < 1 {
		return fmt.Errorf("%w: questions.min must be at least 1", apperrors.ErrInvalidInput)
	}
	if c.Questions.Max < c.Questions.Min {
		return fmt.Errorf("%w: questions.max must be >= questions.min", apperrors.ErrInvalidInput)
	}
	if c.Defaults.Questions < c.Questions.Min || c.Defaults.Questions > c.Questions.Max {
		return fmt.Errorf("%w: defaults.questions must be within %d..%d", apperrors.ErrInvalidInput, c.Questions.Min, c.Questions.Max)
	}
	for name, v := range map[string]int{"easy": c.TimeLimits.Easy, "medium": c.TimeLimits.Medium, "hard": c.TimeLimits.Hard} {
		if v < 1 {
			return fmt.Errorf("%w: time_limits.%s must be positive", apperrors.ErrInvalidInput, name)
		}
	}
	if c.History.Enabled && strings.TrimSpace(c.History.DBPath) == "" {
		return fmt.Errorf("%w: history.db_path is required when history is enabled", apperrors.ErrInvalidInput)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", apperrors.ErrInvalidInput, c.Log.Level)
	}
	return nil
}

// Render returns the config as YAML.
func (c Config) Render() (string, error) {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("render config: %w", err)
	}
	return string(raw), nil
}
