package index

import (
	"regexp"
	"strings"
)

var headingPattern = regexp.MustCompile(`(?m)^(#{1,6}) `)

const (
	imageSrc          = `src="images/`
	imageSrcRewritten = `src="./images/`
)

// DemoteHeadings deepens every ATX heading by two levels. Levels past six
// are not clamped.
func DemoteHeadings(content string) string {
	return headingPattern.ReplaceAllString(content, "${1}## ")
}

// RewriteImagePaths makes every src="images/ reference explicitly relative.
func RewriteImagePaths(content string) string {
	return strings.ReplaceAll(content, imageSrc, imageSrcRewritten)
}

// Transform applies the per-document normalizations.
func Transform(content string) string {
	return RewriteImagePaths(DemoteHeadings(content))
}
