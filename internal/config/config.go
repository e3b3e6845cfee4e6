package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// envAPIURL overrides the configured backend URL when set.
const envAPIURL = "METASEEK_API_URL"

// ErrMissingAPIURL is returned by Validate when no backend URL was supplied
// by file, environment or flag. There is no sensible default to fall back
// to, so startup treats it as fatal.
var ErrMissingAPIURL = errors.New("no backend API URL configured (set api_url in config or " + envAPIURL + ")")

// Defaults are filter values applied to fresh sessions, i.e. when the deep
// link the program was started with does not mention the field.
type Defaults struct {
	DateRange string `toml:"date_range"`
	Region    string `toml:"region"`
	Language  string `toml:"language"`
}

// Config is the application configuration, loaded from a TOML file.
type Config struct {
	APIURL   string   `toml:"api_url"`
	LogFile  string   `toml:"log_file"`
	Debug    bool     `toml:"debug"`
	Defaults Defaults `toml:"defaults"`
}

// Dir returns the configuration directory, honoring METASEEK_CONFIG_DIR
// and falling back to the platform user config dir.
func Dir() (string, error) {
	if dir := os.Getenv("METASEEK_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "metaseek"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogPath returns where logs go when the config names no file.
func DefaultLogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "metaseek.log"), nil
}

// Load reads the config file at path. A missing file is not an error; it
// yields an empty config so the environment and flags can still fill in the
// backend URL. The environment override is applied here.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fine, run on defaults
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if env := os.Getenv(envAPIURL); env != "" {
		cfg.APIURL = env
	}
	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return ErrMissingAPIURL
	}
	return nil
}
