package config

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/bookindex/internal/foundation/errors"
)

// normalize case-folds enumerations before defaults are applied.
func normalize(cfg *Config) error {
	lvl, err := ParseLogLevel(string(cfg.Logging.Level))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid logging.level").
			WithContext("field", "logging.level").
			Fatal().
			UserAction().
			Build()
	}
	format, err := ParseLogFormat(string(cfg.Logging.Format))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryValidation, "invalid logging.format").
			WithContext("field", "logging.format").
			Fatal().
			UserAction().
			Build()
	}
	cfg.Logging.Level = lvl
	cfg.Logging.Format = format
	return nil
}

// Validate checks a fully defaulted configuration.
func Validate(cfg *Config) error {
	if cfg.Version != CurrentVersion {
		return ferrors.ConfigError(fmt.Sprintf("unsupported configuration version: %s (expected %s)", cfg.Version, CurrentVersion)).Build()
	}
	if err := cfg.IndexOptions().Validate(); err != nil {
		return err
	}
	if cfg.Index.Concurrency < 0 {
		return ferrors.ValidationError("index.concurrency must not be negative").
			WithContext("field", "index.concurrency").
			Build()
	}
	if cfg.Site.ConfigPath == "" {
		return ferrors.ValidationError("site.config_path is required").
			WithContext("field", "site.config_path").
			Build()
	}
	return cfg.SiteSettings().Validate()
}
