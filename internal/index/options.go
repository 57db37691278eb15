package index

import (
	"path/filepath"
	"runtime"

	ferrors "git.home.luguber.info/inful/bookindex/internal/foundation/errors"
)

// DefaultExcludeFiles are skipped even though they end in ".md".
var DefaultExcludeFiles = []string{"FAQ.md", "README.md", "SUMMARY.md", "TRANSLATIONS.md"}

// DefaultLocale is the collation locale used for filename ordering.
const DefaultLocale = "en"

// Options configures an index run. DocsDir, ReadmePath and IndexPath are required.
type Options struct {
	DocsDir      string
	ReadmePath   string
	IndexPath    string
	ExcludeFiles []string

	// Locale is a BCP 47 tag for filename collation. Empty means DefaultLocale.
	Locale string
	// Concurrency bounds parallel file reads. Values < 1 mean runtime.NumCPU().
	Concurrency int
}

// DefaultOptions returns the reference layout: ./docs, its README and index.md.
func DefaultOptions() Options {
	docs := "./docs"
	return Options{
		DocsDir:      docs,
		ReadmePath:   filepath.Join(docs, "README.md"),
		IndexPath:    filepath.Join(docs, "index.md"),
		ExcludeFiles: append([]string(nil), DefaultExcludeFiles...),
		Locale:       DefaultLocale,
	}
}

// Validate reports missing required fields.
func (o Options) Validate() error {
	missing := ""
	switch {
	case o.DocsDir == "":
		missing = "docs directory"
	case o.ReadmePath == "":
		missing = "readme path"
	case o.IndexPath == "":
		missing = "index path"
	}
	if missing != "" {
		return ferrors.ValidationError(missing+" is required").
			WithContext("field", missing).
			Build()
	}
	return nil
}

func (o Options) locale() string {
	if o.Locale == "" {
		return DefaultLocale
	}
	return o.Locale
}

func (o Options) concurrency() int {
	if o.Concurrency < 1 {
		return runtime.NumCPU()
	}
	return o.Concurrency
}
