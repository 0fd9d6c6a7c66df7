// Package textutils provides the text helpers used when rendering OFX.
package textutils

import "strings"

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeXML escapes the characters that break OFX element content:
// ampersand, less-than and greater-than. Quotes are left untouched.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// FormatLabel turns one label into a tag token: surrounding spaces are
// trimmed, inner spaces become underscores, and "#" is prefixed.
// An empty label yields "".
func FormatLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	return "#" + strings.ReplaceAll(label, " ", "_")
}

// FormatLabels renders a comma-separated label list as space-separated tags,
// e.g. "home, weekly shop" becomes "#home #weekly_shop".
//
// Labels are trimmed and empty ones dropped. Older exports rendered
// "a, b" as "#a #_b"; that leading underscore is intentionally not kept.
func FormatLabels(labels string) string {
	var tags []string
	for _, label := range strings.Split(labels, ",") {
		if tag := FormatLabel(label); tag != "" {
			tags = append(tags, tag)
		}
	}
	return strings.Join(tags, " ")
}

// JoinNonEmpty joins the non-empty parts with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
