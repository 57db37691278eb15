package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New("README.md", "FAQ.md")
	s.Add("SUMMARY.md")

	assert.True(t, s.Has("FAQ.md"))
	assert.False(t, s.Has("faq.md"), "membership is case-sensitive")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"FAQ.md", "README.md", "SUMMARY.md"}, Sorted(s))
}

func TestNilSet(t *testing.T) {
	var s Set[string]
	assert.False(t, s.Has("x"))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, Sorted(s))
}
