// Package sanitize cleans free text before it reaches keyword matching.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// A tag opens with a letter or a slash and a letter. Bare comparisons
	// such as "<3 tonnes" or "> 2m" are left alone.
	tagPattern   = regexp.MustCompile(`</?[a-zA-Z][^<>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)

	entities = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", `"`,
		"&#39;", "'",
		"&nbsp;", " ",
	)
)

// Text drops markup tags, decodes the common entities and collapses runs
// of whitespace to one space, so multi-word keywords match across line
// breaks. Tags that only appear once decoded are dropped as well.
func Text(s string) string {
	s = entities.Replace(tagPattern.ReplaceAllString(s, " "))
	s = tagPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
