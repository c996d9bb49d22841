package content

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"
)

const defaultHeadlineLimit = 10

// News pulls headlines from an RSS feed, optionally filtered by keyword.
// The Cubs and Bears news segments share this type with different feeds.
type News struct {
	parser   *gofeed.Parser
	feedURL  string
	keywords []string
	limit    int
}

// NewNews builds a headline provider. Empty keywords keep every item.
func NewNews(feedURL string, keywords []string, limit int) *News {
	if limit <= 0 {
		limit = defaultHeadlineLimit
	}
	return &News{
		parser:   gofeed.NewParser(),
		feedURL:  feedURL,
		keywords: keywords,
		limit:    limit,
	}
}

func (n *News) Fetch(ctx context.Context) ([]string, error) {
	feed, err := n.parser.ParseURLWithContext(n.feedURL, ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, n.limit)
	for _, item := range feed.Items {
		if item == nil || item.Title == "" {
			continue
		}
		if !n.matches(item.Title) {
			continue
		}
		lines = append(lines, item.Title)
		if len(lines) == n.limit {
			break
		}
	}
	return lines, nil
}

func (n *News) matches(title string) bool {
	if len(n.keywords) == 0 {
		return true
	}
	lower := strings.ToLower(title)
	for _, kw := range n.keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
