package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var richTextPolicy = newRichTextPolicy()

func newRichTextPolicy() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements("p", "br", "strong", "em", "u", "code", "pre", "blockquote")
	policy.AllowElements("ul", "ol", "li")
	policy.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("href").OnElements("a")
	policy.RequireParseableURLs(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// RichText strips every tag outside the formatting allowlist.
func RichText(value string) string {
	return strings.TrimSpace(richTextPolicy.Sanitize(value))
}

// RichTextPtr sanitizes in place, nil stays nil.
func RichTextPtr(value *string) *string {
	if value == nil {
		return nil
	}
	result := RichText(*value)
	return &result
}
