package news

import (
	"html"
	"regexp"
	"strings"

	"nhl-discord-bot/pkg/models"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanHTML strips markup tags and decodes HTML entities out of feed
// text, collapsing runs of whitespace.
func CleanHTML(s string) string {
	text := tagPattern.ReplaceAllString(s, "")
	text = html.UnescapeString(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// FilterForTeam keeps the items whose headline mentions any of the
// team's search keywords, case-insensitively.
func FilterForTeam(items []models.NewsItem, keywords []string) []models.NewsItem {
	if len(keywords) == 0 {
		return nil
	}

	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	var filtered []models.NewsItem
	for _, item := range items {
		title := strings.ToLower(item.Title)
		for _, keyword := range lowered {
			if strings.Contains(title, keyword) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}
