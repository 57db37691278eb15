package index

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	chapterPrefix  = "ch"
	appendixPrefix = "appendix"
)

// Orderer sorts chapter filenames. It is not safe for concurrent use because
// the underlying collator keeps internal buffers.
type Orderer struct {
	collator *collate.Collator
}

// NewOrderer returns an Orderer collating with the given BCP 47 locale.
// Unparseable tags fall back to DefaultLocale.
func NewOrderer(locale string) *Orderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Orderer{collator: collate.New(tag)}
}

// Compare orders a "ch" file before an "appendix" file, and every other pair
// by locale collation. Names that collate equal fall back to byte order.
func (o *Orderer) Compare(a, b string) int {
	switch {
	case strings.HasPrefix(a, chapterPrefix) && strings.HasPrefix(b, appendixPrefix):
		return -1
	case strings.HasPrefix(a, appendixPrefix) && strings.HasPrefix(b, chapterPrefix):
		return 1
	}
	return o.collate(a, b)
}

func (o *Orderer) collate(a, b string) int {
	if c := o.collator.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Sort orders names in place. The pairwise rule above is only a total order
// when no other file collates between an appendix and a chapter; if the
// sorted result is inconsistent, Sort reorders by (group, collation) with
// chapters first, appendices second and everything else last, and reports
// false.
func (o *Orderer) Sort(names []string) bool {
	slices.SortStableFunc(names, o.Compare)
	if o.consistent(names) {
		return true
	}
	slices.SortStableFunc(names, o.compareGrouped)
	return false
}

// consistent reports whether every earlier name compares <= every later one.
func (o *Orderer) consistent(sorted []string) bool {
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if o.Compare(sorted[i], sorted[j]) > 0 {
				return false
			}
		}
	}
	return true
}

func (o *Orderer) compareGrouped(a, b string) int {
	if ga, gb := group(a), group(b); ga != gb {
		return ga - gb
	}
	return o.collate(a, b)
}

func group(name string) int {
	switch {
	case strings.HasPrefix(name, chapterPrefix):
		return 0
	case strings.HasPrefix(name, appendixPrefix):
		return 1
	default:
		return 2
	}
}
