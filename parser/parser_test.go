package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html><head>
<title>Writing a Statement of Purpose</title>
<meta property="og:image" content="/img/sop-cover.jpg">
</head>
<body>
<nav><a href="/">Home</a> <a href="/blogs">Blogs</a></nav>
<article>
<h1>Writing a Statement of Purpose</h1>
<p>A statement of purpose tells an admissions committee why you want to pursue a doctorate, what you want to study and why their program is the right place to do it. Committees read hundreds of them every cycle.</p>
<p>Start from the research question that keeps you up at night. Explain how your previous work led you to it and which faculty members you would like to work with, and be specific about methods and datasets.</p>
<p>Finally, keep it short. Two pages is plenty for most programs, and a tight, well argued statement is remembered far longer than an exhaustive one.</p>
</article>
<footer>Copyright GradPath</footer>
</body></html>`

func TestExtractArticle(t *testing.T) {
	article, err := ExtractArticle(articlePage, "https://blog.example.com/posts/sop")
	require.NoError(t, err)

	assert.Equal(t, "Writing a Statement of Purpose", article.Title)
	assert.Contains(t, article.Text, "research question")
	assert.NotContains(t, article.Text, "Copyright GradPath")
	assert.Equal(t, "https://blog.example.com/img/sop-cover.jpg", article.TopImage)
}

func TestFindTopImageFallbacks(t *testing.T) {
	testCases := []struct {
		name string
		page string
		want string
	}{
		{
			name: "twitter card",
			page: `<html><head><meta name="twitter:image" content="https://cdn.example.com/t.png"></head><body></body></html>`,
			want: "https://cdn.example.com/t.png",
		},
		{
			name: "image_src link",
			page: `<html><head><link rel="image_src" href="/thumb.png"></head><body></body></html>`,
			want: "/thumb.png",
		},
		{
			name: "nothing",
			page: `<html><head></head><body><p>text</p></body></html>`,
			want: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			doc := mustParse(t, testCase.page)
			got := findTopImageFromMeta(doc)
			if got == "" {
				got = findTopImageFromLink(doc)
			}
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestFirstImage(t *testing.T) {
	fragment := `<p>intro</p><figure><img src="/uploads/a.png" alt=""></figure><img src="/uploads/b.png">`

	assert.Equal(t, "https://medium.example.com/uploads/a.png", FirstImage(fragment, "https://medium.example.com/p/1"))
	assert.Equal(t, "/uploads/a.png", FirstImage(fragment, ""))
	assert.Equal(t, "", FirstImage("<p>no images</p>", ""))
}
