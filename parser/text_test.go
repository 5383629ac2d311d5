package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func mustParse(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Fully funded PhD & MSc offers", StripHTML("<p>Fully <b>funded</b>\n\n PhD &amp; MSc <br/>offers</p>"))
	assert.Equal(t, "", StripHTML("<img src=x>"))
}

func TestExcerpt(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short text unchanged", in: "<p>Apply early.</p>", max: 50, want: "Apply early."},
		{name: "cut at word boundary", in: "Scholarships for international students, explained", max: 30, want: "Scholarships for international…"},
		{name: "trailing punctuation dropped", in: "Deadlines, funding, interviews", max: 12, want: "Deadlines…"},
		{name: "rune safe", in: "박사 과정 지원 가이드", max: 5, want: "박사 과정…"},
		{name: "zero max", in: "anything", max: 0, want: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Excerpt(testCase.in, testCase.max))
		})
	}
}

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "How to Write a Statement of Purpose", want: "how-to-write-a-statement-of-purpose"},
		{in: "  Études à l'étranger!  ", want: "etudes-a-l-etranger"},
		{in: "PhD -- 2026 intake", want: "phd-2026-intake"},
		{in: "유학 준비", want: "유학-준비"},
		{in: "!!!", want: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.in, func(t *testing.T) {
			assert.Equal(t, testCase.want, Slugify(testCase.in))
		})
	}
}
