package parser

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Article is what the importer keeps from an article page or a feed item body.
type Article struct {
	Title    string
	Byline   string
	Excerpt  string
	Text     string
	TopImage string
}

// ExtractArticle runs readability over rawHTML. pageURL resolves relative image links and may be empty.
// When readability finds no lead image, the page's meta and link tags are consulted.
func ExtractArticle(rawHTML string, pageURL string) (*Article, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	var baseURL *url.URL
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			baseURL = u
		}
	}

	article, err := readability.FromDocument(doc, baseURL)
	if err != nil {
		return nil, err
	}

	out := &Article{
		Title:   strings.TrimSpace(article.Title),
		Byline:  strings.TrimSpace(article.Byline),
		Excerpt: strings.TrimSpace(article.Excerpt),
		Text:    strings.TrimSpace(article.TextContent),
	}

	img := article.Image
	if img == "" {
		img = findTopImageFromMeta(doc)
	}
	if img == "" {
		img = findTopImageFromLink(doc)
	}
	out.TopImage = resolveImageURL(img, baseURL)
	return out, nil
}
