package blog

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	postSlugLen     = 200
	categorySlugLen = 100
	tagSlugLen      = 50

	// room kept for a "-N" collision suffix
	slugSuffixRoom = 6
)

var (
	nonWord    = regexp.MustCompile(`[^a-z0-9_\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Slugify builds a URL-safe identifier: "Hello, World! 2024" becomes "hello-world-2024".
func Slugify(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonWord.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// nextFreeSlug returns base when it is not taken, otherwise base with the
// first free numeric suffix starting at 2.
func nextFreeSlug(base string, taken []string) string {
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}

	if _, ok := used[base]; !ok {
		return base
	}

	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, ok := used[candidate]; !ok {
			return candidate
		}
	}
}

func slugBase(source, fallback string, maxLen int) string {
	base := Slugify(source)
	if limit := maxLen - slugSuffixRoom; len(base) > limit {
		base = strings.TrimRight(base[:limit], "-")
	}
	if base == "" {
		base = fallback
	}
	return base
}

// uniqueSlug derives a slug for source that no other row of table uses.
func uniqueSlug(ctx context.Context, repo *db.Repository, table, source, fallback string, maxLen, excludeID int) (string, error) {
	base := slugBase(source, fallback, maxLen)

	taken, err := repo.TakenSlugs(ctx, table, base, excludeID)
	if err != nil {
		return "", fmt.Errorf("load taken slugs: %w", err)
	}

	return nextFreeSlug(base, taken), nil
}
