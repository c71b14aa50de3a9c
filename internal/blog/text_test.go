package blog

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"  Go_lang -- tips  ", "go-lang-tips"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   spaces\tand\nlines", "multiple-spaces-and-lines"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Slugify(tt.in)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Slugify(got); again != got {
				t.Errorf("Slugify is not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNextFreeSlug(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		taken []string
		want  string
	}{
		{"Free", "go", nil, "go"},
		{"FirstSuffix", "go", []string{"go"}, "go-2"},
		{"SkipsTaken", "go", []string{"go", "go-2", "go-3"}, "go-4"},
		{"FillsGap", "go", []string{"go", "go-3"}, "go-2"},
		{"SuffixOnlyTaken", "go", []string{"go-2"}, "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextFreeSlug(tt.base, tt.taken))
		})
	}
}

func TestSlugBase(t *testing.T) {
	assert.Equal(t, "post", slugBase("!!!", "post", postSlugLen))
	assert.Equal(t, "hello", slugBase("Hello", "post", postSlugLen))

	long := slugBase(strings.Repeat("a", 300), "post", postSlugLen)
	assert.Len(t, long, postSlugLen-slugSuffixRoom)

	// a cut that lands on a separator must not leave a trailing hyphen
	cut := slugBase(strings.Repeat("ab ", 20), "tag", 14)
	assert.False(t, strings.HasSuffix(cut, "-"), cut)
}

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("# Hello\n\nSome **bold** text.\n\n<script>alert(1)</script>\n\n[link](javascript:alert(1))")

	assert.Contains(t, html, "Hello</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "javascript:")
}

func TestDeriveExcerpt(t *testing.T) {
	t.Run("Short", func(t *testing.T) {
		assert.Equal(t, "Bold text & more", DeriveExcerpt("**Bold** text & more"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", DeriveExcerpt("   "))
	})

	t.Run("CutAtWordBoundary", func(t *testing.T) {
		excerpt := DeriveExcerpt(strings.Repeat("word ", 100))

		assert.True(t, strings.HasSuffix(excerpt, "word…"), excerpt)
		assert.LessOrEqual(t, utf8.RuneCountInString(excerpt), excerptLen+1)
	})
}

func TestSpamReason(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		authorURL *string
		want      string
	}{
		{"Clean", "Nice post, thanks!", nil, ""},
		{"TwoLinksAllowed", "see https://a.example and www.b.example", nil, ""},
		{"TooManyLinks", "http://a.example http://b.example https://c.example", nil, "too many links"},
		{"BlockedPhrase", "Buy cheap pills", nil, "blocked phrase"},
		{"BlockedPhraseInURL", "hello", strPtr("http://casino.example"), "blocked phrase"},
		{"OnlyMarkup", "<b></b>", nil, "empty content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpamReason(tt.content, tt.authorURL))
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "go generics", normalizeQuery("  Go \t GENERICS "))
	assert.Equal(t, "", normalizeQuery("   "))

	long := normalizeQuery(strings.Repeat("Ü", 300))
	assert.Equal(t, searchQueryLen, utf8.RuneCountInString(long))
	assert.Equal(t, strings.Repeat("ü", searchQueryLen), long)
}

func strPtr(s string) *string { return &s }
