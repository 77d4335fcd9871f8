// Package config is responsible for finding, parsing and merging the artrepo
// user configuration with the default one.
//
// The user configuration is $HOME/.artrepo/config.json unless another file is
// given explicitly. When it is missing it is created with the defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/ironsmile/artrepo/src/helpers"
)

// configName is the file name of the user configuration.
const configName = "config.json"

// Config contains representation for everything in config.json.
type Config struct {
	Listen         string   `json:"listen"`
	Repositories   []string `json:"repositories"`
	UserAgent      string   `json:"user_agent"`
	FetchTimeout   int      `json:"fetch_timeout"`
	Concurrency    int      `json:"concurrency"`
	CacheDatabase  string   `json:"cache_database"`
	LogFile        string   `json:"log_file"`
	Debug          bool     `json:"debug"`
	ReadTimeout    int      `json:"read_timeout"`
	WriteTimeout   int      `json:"write_timeout"`
	MaxHeadersSize int      `json:"max_header_bytes"`
	Authentication Auth     `json:"authentication"`
}

// Auth represents the authentication configuration of the HTTP API.
type Auth struct {
	Enabled  bool   `json:"enabled"`
	User     string `json:"user"`
	Password string `json:"password"`
	Secret   string `json:"secret"`
}

// Default returns the configuration used for everything the user has not
// configured.
func Default() Config {
	return Config{
		Listen:         "localhost:9997",
		Repositories:   []string{},
		UserAgent:      "artrepo",
		FetchTimeout:   30,
		Concurrency:    4,
		ReadTimeout:    15,
		WriteTimeout:   60,
		MaxHeadersSize: 1 << 20,
	}
}

// FetchTimeoutDuration returns the catalog fetch timeout.
func (cfg Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(cfg.FetchTimeout) * time.Second
}

// Validate checks values which cannot be used.
func (cfg Config) Validate() error {
	if cfg.Authentication.Enabled {
		if cfg.Authentication.User == "" || cfg.Authentication.Password == "" {
			return errors.New("authentication is enabled but user or password is empty")
		}
		if cfg.Authentication.Secret == "" {
			return errors.New("authentication is enabled but secret is empty")
		}
	}

	if cfg.FetchTimeout < 0 {
		return fmt.Errorf("negative fetch_timeout %d", cfg.FetchTimeout)
	}

	return nil
}

// DefaultPath returns the full path to the place where the user's
// configuration file should be.
func DefaultPath() (string, error) {
	userPath, err := helpers.ProjectUserPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(userPath, configName), nil
}

// Load reads the user configuration at `path` from `fs` and merges it on top
// of the default configuration. A missing file is created with the defaults.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("checking for config file: %w", err)
	}
	if !exists {
		if err := writeDefault(fs, path); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	userCfg, err := parse(fs, path)
	if err != nil {
		return cfg, err
	}

	cfg.merge(&userCfg)
	cfg.Repositories = cleanRepositories(cfg.Repositories)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	return cfg, nil
}

// parse reads the json file `filename` from `fs`.
func parse(fs afero.Fs, filename string) (Config, error) {
	var cfg Config

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", filename, err)
	}

	return cfg, nil
}

func writeDefault(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(Default(), "", "    ")
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	return nil
}

// merge merges an other config on top of itself. Only non-zero values will
// be merged.
func (cfg *Config) merge(merged *Config) {
	cfgVal := reflect.ValueOf(cfg).Elem()
	mergedVal := reflect.ValueOf(merged).Elem()

	for i := 0; i < mergedVal.NumField(); i++ {
		mergedField := mergedVal.Field(i)
		if !mergedField.IsValid() || mergedField.IsZero() {
			continue
		}

		cfgField := cfgVal.Field(i)
		if !cfgField.CanSet() {
			continue
		}

		cfgField.Set(mergedField)
	}
}

// cleanRepositories trims the repository URLs and drops the empty ones.
func cleanRepositories(repos []string) []string {
	cleaned := make([]string, 0, len(repos))
	for _, repo := range repos {
		repo = strings.TrimSpace(repo)
		if repo == "" {
			continue
		}
		cleaned = append(cleaned, repo)
	}
	return cleaned
}
