package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/bookindex/internal/foundation/errors"
	"git.home.luguber.info/inful/bookindex/internal/index"
	"git.home.luguber.info/inful/bookindex/internal/site"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookindex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "docs", filepath.Clean(cfg.Index.DocsDir))
	assert.Equal(t, filepath.Join("docs", "README.md"), filepath.Clean(cfg.Index.ReadmePath))
	assert.Equal(t, filepath.Join("docs", "index.md"), filepath.Clean(cfg.Index.IndexPath))
	assert.Equal(t, index.DefaultExcludeFiles, cfg.Index.ExcludeFiles)
	assert.Equal(t, index.DefaultLocale, cfg.Index.Locale)
	assert.Equal(t, "en-US", cfg.Site.Lang)
	assert.Equal(t, "mostly-adequate-guide", cfg.Site.Title)
	assert.Equal(t, site.DefaultPagePatterns, cfg.Site.PagePatterns)
	assert.Equal(t, DefaultSiteConfigPath, cfg.Site.ConfigPath)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_DerivedPathsFollowDocsDir(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, "version: \"1.0\"\nindex:\n  docs_dir: book\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "book", cfg.Index.DocsDir)
	assert.Equal(t, filepath.Join("book", "README.md"), cfg.Index.ReadmePath)
	assert.Equal(t, filepath.Join("book", "index.md"), cfg.Index.IndexPath)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BOOK_TITLE", "Functional Guide")
	path := writeConfig(t, "site:\n  title: ${BOOK_TITLE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Functional Guide", cfg.Site.Title)
}

func TestLoad_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BOOK_LOCALE=de\nBOOK_TITLE=from-dotenv\n"), 0o644))
	t.Setenv("BOOK_TITLE", "from-process")
	t.Setenv("BOOK_LOCALE", "")
	require.NoError(t, os.Unsetenv("BOOK_LOCALE"))

	path := writeConfig(t, "index:\n  locale: ${BOOK_LOCALE}\nsite:\n  title: ${BOOK_TITLE}\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Index.Locale)
	assert.Equal(t, "from-process", cfg.Site.Title)
}

func TestLoad_NormalizesLogging(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, "logging:\n  level: \" DEBUG \"\n  format: JSON\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		category ferrors.ErrorCategory
	}{
		{"unsupported version", "version: \"2.0\"\n", ferrors.CategoryConfig},
		{"malformed yaml", "index: [\n", ferrors.CategoryConfig},
		{"bad log level", "logging:\n  level: loud\n", ferrors.CategoryValidation},
		{"bad log format", "logging:\n  format: xml\n", ferrors.CategoryValidation},
		{"negative concurrency", "index:\n  concurrency: -2\n", ferrors.CategoryValidation},
		{"bad page pattern", "site:\n  page_patterns: [\"[unclosed\"]\n", ferrors.CategorySite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
			assert.Equal(t, tc.category, ferrors.GetCategory(err))
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bookindex.yaml")

	require.NoError(t, Init(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var written Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, *Default(), written)

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	require.NoError(t, Init(path, true))
}

func TestInit_RoundTripsThroughLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, Init(DefaultPath, false))

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Index.Concurrency = 3
	cfg.Site.Description = "A book"

	opts := cfg.IndexOptions()
	assert.Equal(t, cfg.Index.DocsDir, opts.DocsDir)
	assert.Equal(t, 3, opts.Concurrency)
	opts.ExcludeFiles[0] = "changed"
	assert.NotEqual(t, "changed", cfg.Index.ExcludeFiles[0])

	sc := cfg.SiteSettings()
	assert.Equal(t, "A book", sc.Description)
	assert.Equal(t, cfg.Site.PagePatterns, sc.PagePatterns)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("Warning")
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, lvl)

	lvl, err = ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, lvl)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}
