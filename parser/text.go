package parser

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var stripPolicy = func() *bluemonday.Policy {
	p := bluemonday.StripTagsPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// StripHTML removes every tag and collapses whitespace, leaving readable plain text.
func StripHTML(s string) string {
	text := html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

// Excerpt returns at most max runes of the plain text of s, cut at a word boundary and
// suffixed with an ellipsis when shortened.
func Excerpt(s string, max int) string {
	text := StripHTML(s)
	if max <= 0 {
		return ""
	}
	rs := []rune(text)
	if len(rs) <= max {
		return text
	}
	cut := string(rs[:max])
	if !unicode.IsSpace(rs[max]) {
		if i := strings.LastIndexByte(cut, ' '); i > 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRightFunc(cut, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}) + "…"
}

// Slugify lowercases s, drops accents and joins letter/digit runs with single hyphens.
// Non-Latin letters are kept as is, so a Korean title still yields a usable slug.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingHyphen = true
		}
	}
	return norm.NFC.String(b.String())
}
