// Package config loads the bookindex YAML configuration.
//
// Loading order: .env files (without overriding the process environment),
// ${VAR} expansion of the raw file, YAML decoding, normalization, defaults,
// validation. A missing configuration file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/bookindex/internal/foundation/errors"
	"git.home.luguber.info/inful/bookindex/internal/index"
	"git.home.luguber.info/inful/bookindex/internal/site"
)

// CurrentVersion is the only accepted configuration schema version.
const CurrentVersion = "1.0"

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "bookindex.yaml"

// Config is the root configuration document.
type Config struct {
	Version string        `yaml:"version"`
	Index   IndexConfig   `yaml:"index"`
	Site    SiteConfig    `yaml:"site"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// IndexConfig configures the index builder.
type IndexConfig struct {
	DocsDir      string   `yaml:"docs_dir"`
	ReadmePath   string   `yaml:"readme_path"`
	IndexPath    string   `yaml:"index_path"`
	ExcludeFiles []string `yaml:"exclude_files"`
	Locale       string   `yaml:"locale"`
	Concurrency  int      `yaml:"concurrency"`
}

// SiteConfig configures the static site generator settings.
type SiteConfig struct {
	Lang         string   `yaml:"lang"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	PagePatterns []string `yaml:"page_patterns"`
	// ConfigPath is where the generator configuration file is written.
	ConfigPath string `yaml:"config_path"`
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig configures metrics export. An empty Textfile disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Load reads the configuration at path. A missing file is not an error:
// the defaults are returned instead.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", path).
			Build()
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config file").
				WithContext("path", path).
				Build()
		}
		if cfg.Version != "" && cfg.Version != CurrentVersion {
			return nil, ferrors.ConfigError(fmt.Sprintf("unsupported configuration version: %s (expected %s)", cfg.Version, CurrentVersion)).
				WithContext("path", path).
				Build()
		}
	}

	if err := normalize(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the reference configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Init writes an example configuration file. An existing file is kept unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).
			WithContext("path", path).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create config directory").
				WithContext("path", dir).
				Build()
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}

// IndexOptions converts the index section into builder options.
func (c *Config) IndexOptions() index.Options {
	return index.Options{
		DocsDir:      c.Index.DocsDir,
		ReadmePath:   c.Index.ReadmePath,
		IndexPath:    c.Index.IndexPath,
		ExcludeFiles: append([]string(nil), c.Index.ExcludeFiles...),
		Locale:       c.Index.Locale,
		Concurrency:  c.Index.Concurrency,
	}
}

// SiteSettings converts the site section into the generator configuration.
func (c *Config) SiteSettings() site.Config {
	return site.Config{
		Lang:         c.Site.Lang,
		Title:        c.Site.Title,
		Description:  c.Site.Description,
		PagePatterns: append([]string(nil), c.Site.PagePatterns...),
	}
}
