package site

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	ferrors "git.home.luguber.info/inful/bookindex/internal/foundation/errors"
)

// Matcher evaluates generator page patterns against slash-separated paths
// relative to the docs root. Patterns prefixed with "!" exclude; an exclude
// also applies to everything below a matching directory.
type Matcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewMatcher compiles patterns. A leading "**/" also matches at the root,
// so "**/*.md" covers "index.md" as well as "guide/intro.md".
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, raw := range patterns {
		p := strings.TrimSpace(raw)
		negate := strings.HasPrefix(p, "!")
		p = strings.TrimPrefix(p, "!")
		p = strings.TrimPrefix(p, "./")
		if p == "" {
			continue
		}

		variants := []string{p}
		if rest, ok := strings.CutPrefix(p, "**/"); ok {
			variants = append(variants, rest)
		}
		for _, v := range variants {
			g, err := glob.Compile(v, '/')
			if err != nil {
				return nil, ferrors.WrapError(err, ferrors.CategorySite, "invalid page pattern").
					WithContext("pattern", raw).
					Build()
			}
			if negate {
				m.exclude = append(m.exclude, g)
			} else {
				m.include = append(m.include, g)
			}
		}
	}
	return m, nil
}

// Match reports whether rel would be discovered as a page.
func (m *Matcher) Match(rel string) bool {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "./")
	if m.Excluded(rel) {
		return false
	}
	for _, g := range m.include {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Excluded reports whether rel or any of its parent directories matches an
// exclude pattern.
func (m *Matcher) Excluded(rel string) bool {
	for p := rel; p != "." && p != "/" && p != ""; p = path.Dir(p) {
		for _, g := range m.exclude {
			if g.Match(p) {
				return true
			}
		}
	}
	return false
}

// Pages walks root and returns, in lexical order, the slash-separated
// relative paths of every file the generator would render.
func (m *Matcher) Pages(root string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		if d.IsDir() {
			if m.Excluded(rel) {
				return fs.SkipDir
			}
			return nil
		}
		if m.Match(rel) {
			pages = append(pages, rel)
		}
		return nil
	})
	if err != nil {
		return nil, ferrors.FileSystemError("walk docs directory").
			WithCause(err).
			WithContext("path", root).
			Build()
	}
	return pages, nil
}

// Covers reports whether the generator would pick up target, a file path
// inside root. Targets outside root are never covered.
func (m *Matcher) Covers(root, target string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absTarget)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return m.Match(rel)
}
