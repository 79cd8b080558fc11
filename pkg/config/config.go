// Package config loads anagramma settings.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. Built-in defaults ([Default])
//  2. A TOML file, by default $XDG_CONFIG_HOME/anagramma/config.toml
//  3. ANAGRAMMA_* environment variables, after an optional .env file in the
//     working directory has been loaded
//
// Example config.toml:
//
//	unique = true
//	max_length = 10
//	format = "text"
//	limit = 0
//	seed = 0
//	color = true
//
// Unknown keys in the file are rejected so that typos surface immediately.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/matzehuels/anagramma/pkg/errors"
)

const (
	appName  = "anagramma"
	fileName = "config.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ANAGRAMMA_"
)

// Config holds user preferences for the command line.
type Config struct {
	// Unique drops repeated arrangements when generating.
	Unique bool `toml:"unique" env:"UNIQUE"`

	// MaxLength is the longest word generate and browse accept without
	// --force. Zero disables the check.
	MaxLength int `toml:"max_length" env:"MAX_LENGTH"`

	// Format is the default output format: text, json or yaml.
	Format string `toml:"format" env:"FORMAT"`

	// Limit caps how many anagrams are printed. Zero prints all.
	Limit int `toml:"limit" env:"LIMIT"`

	// Seed makes shuffles reproducible. Zero draws a fresh shuffle each run.
	Seed uint64 `toml:"seed" env:"SEED"`

	// Color enables styled terminal output.
	Color bool `toml:"color" env:"COLOR"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Unique:    true,
		MaxLength: 10,
		Format:    "text",
		Limit:     0,
		Seed:      0,
		Color:     true,
	}
}

// formats mirrors io.Formats; config cannot import io without a cycle.
var formats = []string{"text", "json", "yaml"}

// Validate checks the settings for out-of-range values.
func (c Config) Validate() error {
	if c.MaxLength < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_length must be >= 0, got %d", c.MaxLength)
	}
	if c.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "limit must be >= 0, got %d", c.Limit)
	}
	if !slices.Contains(formats, c.Format) {
		return errors.New(errors.ErrCodeInvalidConfig, "format must be one of %s, got %q", strings.Join(formats, ", "), c.Format)
	}
	return nil
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/anagramma/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load resolves the settings.
//
// If path is empty the default location is used and a missing file is not
// an error. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			if explicit || !stderrors.Is(err, os.ErrNotExist) {
				return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load .env")
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return stderrors.New("unknown keys: " + strings.Join(keys, ", "))
	}
	return nil
}
