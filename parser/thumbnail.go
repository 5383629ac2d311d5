package parser

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// FirstImage returns the src of the first <img> in an HTML fragment, resolved against pageURL.
// Feed item bodies rarely carry meta tags, so this is the last resort for a cover image.
func FirstImage(fragment string, pageURL string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	var baseURL *url.URL
	if u, err := url.Parse(pageURL); err == nil && pageURL != "" {
		baseURL = u
	}

	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, a := range n.Attr {
				if strings.EqualFold(a.Key, "src") && strings.TrimSpace(a.Val) != "" {
					result = a.Val
					return
				}
			}
		}
		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return resolveImageURL(result, baseURL)
}

func findTopImageFromMeta(doc *html.Node) string {
	// order: Open Graph image, then Twitter card image, then other image meta
	if url := findMetaContent(doc, "property", []string{
		"og:image",
		"og:image:url",
		"og:image:secure_url",
	}); url != "" {
		return url
	}

	if url := findMetaContent(doc, "name", []string{
		"twitter:image",
		"twitter:image:src",
		"thumbnail",
	}); url != "" {
		return url
	}

	return findMetaContent(doc, "itemprop", []string{"image"})
}

func findMetaContent(root *html.Node, key string, candidates []string) string {
	candidateSet := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		candidateSet[strings.ToLower(c)] = struct{}{}
	}

	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "meta" {
			var attrValue, content string
			for _, a := range n.Attr {
				switch strings.ToLower(a.Key) {
				case strings.ToLower(key):
					attrValue = strings.ToLower(a.Val)
				case "content":
					content = a.Val
				}
			}
			if _, ok := candidateSet[attrValue]; ok && content != "" {
				result = content
				return
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return result
}

func findTopImageFromLink(doc *html.Node) string {
	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "link" {
			var rel, href string
			for _, a := range n.Attr {
				switch strings.ToLower(a.Key) {
				case "rel":
					rel = strings.ToLower(a.Val)
				case "href":
					href = a.Val
				}
			}
			if href != "" && (rel == "image_src" || strings.Contains(rel, "thumbnail")) {
				result = href
				return
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return result
}

// resolveImageURL makes src absolute against baseURL when it can; otherwise src is returned as is.
func resolveImageURL(src string, baseURL *url.URL) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return src
	}
	if parsed.IsAbs() || baseURL == nil {
		return parsed.String()
	}
	return baseURL.ResolveReference(parsed).String()
}
