// Package site manages the declarative configuration consumed by the static
// site generator that renders the book: language, title, description and the
// glob patterns used for page discovery.
package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/bookindex/internal/foundation/errors"
)

// Config is the generator-facing site configuration.
type Config struct {
	Lang         string   `yaml:"lang" json:"lang"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	PagePatterns []string `yaml:"pagePatterns" json:"pagePatterns"`
}

// DefaultPagePatterns pick up every markdown page except READMEs and the
// generator's own directories.
var DefaultPagePatterns = []string{"**/*.md", "!**/README.md", "!.vuepress", "!node_modules"}

// DefaultConfig returns the reference site configuration.
func DefaultConfig() Config {
	return Config{
		Lang:         "en-US",
		Title:        "mostly-adequate-guide",
		Description:  "",
		PagePatterns: append([]string(nil), DefaultPagePatterns...),
	}
}

// Validate checks required fields and that every page pattern compiles.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Lang) == "" {
		return ferrors.ValidationError("site lang is required").WithContext("field", "lang").Build()
	}
	if strings.TrimSpace(c.Title) == "" {
		return ferrors.ValidationError("site title is required").WithContext("field", "title").Build()
	}
	_, err := NewMatcher(c.PagePatterns)
	return err
}

// Write serializes cfg to path. The format follows the extension: .json, .yaml or .yml.
// Missing parent directories are created.
func Write(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(&cfg)
	default:
		return ferrors.SiteError("unsupported site config format").
			WithContext("path", path).
			WithContext("extension", ext).
			Build()
	}
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "encode site config").Build()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ferrors.FileSystemError("create site config directory").
			WithCause(err).
			WithContext("path", filepath.Dir(path)).
			Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.FileSystemError("write site config").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

// Load reads a site config previously written by Write.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, ferrors.FileSystemError("read site config").WithCause(err).WithContext("path", path).Build()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, ferrors.SiteError("unsupported site config format").WithContext("path", path).Build()
	}
	if err != nil {
		return cfg, ferrors.WrapError(err, ferrors.CategorySite, "decode site config").WithContext("path", path).Build()
	}
	return cfg, nil
}
