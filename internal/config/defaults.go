package config

import (
	"path/filepath"

	"git.home.luguber.info/inful/bookindex/internal/index"
	"git.home.luguber.info/inful/bookindex/internal/site"
)

// DefaultSiteConfigPath is the generator configuration file inside the docs tree.
const DefaultSiteConfigPath = "./docs/.vuepress/config.json"

// applyDefaults fills zero values. Paths derived from docs_dir follow it when
// only the directory is overridden.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	idx := &cfg.Index
	if idx.DocsDir == "" {
		idx.DocsDir = index.DefaultOptions().DocsDir
	}
	if idx.ReadmePath == "" {
		idx.ReadmePath = filepath.Join(idx.DocsDir, "README.md")
	}
	if idx.IndexPath == "" {
		idx.IndexPath = filepath.Join(idx.DocsDir, "index.md")
	}
	if idx.ExcludeFiles == nil {
		idx.ExcludeFiles = append([]string(nil), index.DefaultExcludeFiles...)
	}
	if idx.Locale == "" {
		idx.Locale = index.DefaultLocale
	}

	def := site.DefaultConfig()
	s := &cfg.Site
	if s.Lang == "" {
		s.Lang = def.Lang
	}
	if s.Title == "" {
		s.Title = def.Title
	}
	if s.PagePatterns == nil {
		s.PagePatterns = def.PagePatterns
	}
	if s.ConfigPath == "" {
		s.ConfigPath = DefaultSiteConfigPath
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}
