package index

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderer_Compare(t *testing.T) {
	o := NewOrderer("en")

	assert.Negative(t, o.Compare("ch99-zzz.md", "appendix01-aaa.md"))
	assert.Positive(t, o.Compare("appendix01-aaa.md", "ch99-zzz.md"))
	assert.Negative(t, o.Compare("ch01.md", "ch02.md"))
	assert.Negative(t, o.Compare("appendix_a.md", "appendix_b.md"))
	assert.Negative(t, o.Compare("afterword.md", "ch01.md"))
	assert.Zero(t, o.Compare("ch01.md", "ch01.md"))
}

func TestOrderer_LocaleCollation(t *testing.T) {
	o := NewOrderer("en")

	// Byte order puts upper case first; collation does not.
	assert.Negative(t, o.Compare("alpha.md", "Zeta.md"))
	assert.Negative(t, strings.Compare("Zeta.md", "alpha.md"))
}

func TestOrderer_InvalidLocaleFallsBack(t *testing.T) {
	o := NewOrderer("not a locale!")
	assert.Negative(t, o.Compare("ch01.md", "ch02.md"))
}

func TestOrderer_Sort(t *testing.T) {
	tests := []struct {
		name       string
		in         []string
		want       []string
		consistent bool
	}{
		{
			name:       "chapters before appendices",
			in:         []string{"appendix_b.md", "ch02.md", "appendix_a.md", "ch01.md"},
			want:       []string{"ch01.md", "ch02.md", "appendix_a.md", "appendix_b.md"},
			consistent: true,
		},
		{
			name:       "chapter sorts before appendix regardless of suffix",
			in:         []string{"appendix01-aaa.md", "ch99-zzz.md"},
			want:       []string{"ch99-zzz.md", "appendix01-aaa.md"},
			consistent: true,
		},
		{
			name:       "other files placed lexicographically",
			in:         []string{"intro.md", "appendix_a.md", "ch01.md", "afterword.md"},
			want:       []string{"afterword.md", "ch01.md", "appendix_a.md", "intro.md"},
			consistent: true,
		},
		{
			name:       "plain names use collation",
			in:         []string{"gamma.md", "Beta.md", "alpha.md"},
			want:       []string{"alpha.md", "Beta.md", "gamma.md"},
			consistent: true,
		},
		{
			// appendix_a < b (collation), b < ch01 (collation), ch01 < appendix_a (rule).
			name:       "cycle falls back to grouping",
			in:         []string{"b.md", "appendix_a.md", "ch01.md"},
			want:       []string{"ch01.md", "appendix_a.md", "b.md"},
			consistent: false,
		},
		{
			name:       "empty",
			in:         []string{},
			want:       []string{},
			consistent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := slices.Clone(tt.in)
			ok := NewOrderer("en").Sort(names)
			assert.Equal(t, tt.consistent, ok)
			assert.Equal(t, tt.want, names)
		})
	}
}

// TestOrderer_SortProperties checks, over random subsets and permutations of
// a realistic filename pool, that the result is independent of input order,
// that every chapter precedes every appendix, and that a consistent result is
// a total order under Compare.
func TestOrderer_SortProperties(t *testing.T) {
	pool := []string{
		"ch01.md", "ch02.md", "ch03.md", "ch10.md", "ch99-zzz.md",
		"appendix_a.md", "appendix_b.md", "appendix01-aaa.md",
		"afterword.md", "intro.md", "b.md", "zeta.md", "Preface.md", "chapter-notes.md",
	}
	rng := rand.New(rand.NewSource(42))
	o := NewOrderer("en")

	for iter := 0; iter < 300; iter++ {
		subset := make([]string, 0, len(pool))
		for _, n := range pool {
			if rng.Intn(2) == 0 {
				subset = append(subset, n)
			}
		}

		first := slices.Clone(subset)
		consistent := o.Sort(first)

		shuffled := slices.Clone(subset)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		again := slices.Clone(shuffled)
		require.Equal(t, consistent, o.Sort(again))
		require.Equal(t, first, again, "order must not depend on input order: %v", shuffled)

		lastChapter, firstAppendix := -1, len(first)
		for i, n := range first {
			if strings.HasPrefix(n, chapterPrefix) {
				lastChapter = i
			}
			if strings.HasPrefix(n, appendixPrefix) && i < firstAppendix {
				firstAppendix = i
			}
		}
		require.Less(t, lastChapter, firstAppendix, "chapters precede appendices: %v", first)

		if consistent {
			for i := range first {
				for j := i + 1; j < len(first); j++ {
					require.Negative(t, o.Compare(first[i], first[j]), "%s vs %s", first[i], first[j])
				}
			}
		}
	}
}
