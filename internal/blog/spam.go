package blog

import (
	"regexp"
	"strings"
)

const maxCommentLinks = 2

var (
	linkPattern    = regexp.MustCompile(`(?i)(https?://|www\.)`)
	blockedPhrases = []string{
		"buy cheap",
		"casino",
		"viagra",
		"free money",
		"crypto giveaway",
		"earn $",
		"work from home",
		"click here",
		"payday loan",
	}
)

// SpamReason returns why a comment looks like spam, or "" when it does not.
func SpamReason(content string, authorURL *string) string {
	if strings.TrimSpace(stripPolicy.Sanitize(content)) == "" {
		return "empty content"
	}

	links := len(linkPattern.FindAllStringIndex(content, -1))
	if links > maxCommentLinks {
		return "too many links"
	}

	lower := strings.ToLower(content)
	if authorURL != nil {
		lower += " " + strings.ToLower(*authorURL)
	}
	for _, phrase := range blockedPhrases {
		if strings.Contains(lower, phrase) {
			return "blocked phrase"
		}
	}

	return ""
}
