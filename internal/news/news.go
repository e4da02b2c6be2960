// Package news fetches the Pro Hockey Rumors RSS feeds behind a TTL
// cache and filters headlines per team.
package news

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"nhl-discord-bot/internal/cache"
	"nhl-discord-bot/pkg/models"
)

// rss mirrors just the parts of the feed the bot uses
type rss struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// Client fetches league and per-team news feeds. Only the league feed is
// cached; team feeds are fetched on demand.
type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      clockwork.Clock
	cache      *cache.Cache[[]models.NewsItem]
}

// NewClient creates a news client with the given league-feed cache TTL
func NewClient(baseURL string, ttl time.Duration, clock clockwork.Clock) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		clock:      clock,
		cache:      cache.New[[]models.NewsItem](ttl, clock),
	}
}

// LeagueNews returns the current league-wide news items
func (c *Client) LeagueNews() ([]models.NewsItem, error) {
	return c.cache.Get(func() ([]models.NewsItem, error) {
		return c.fetchFeed(c.baseURL + "/feed")
	})
}

// TeamNews returns a team's category feed by slug, or nil when the team
// has no feed slug
func (c *Client) TeamNews(slug string) ([]models.NewsItem, error) {
	if slug == "" {
		return nil, nil
	}
	return c.fetchFeed(fmt.Sprintf("%s/category/%s/feed", c.baseURL, slug))
}

func (c *Client) fetchFeed(feedURL string) ([]models.NewsItem, error) {
	resp, err := c.httpClient.Get(feedURL)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}
	return ParseFeed(body, c.clock.Now()), nil
}

// ParseFeed decodes an RSS document into news items. Items with no title
// or link are dropped; an unparseable publish date falls back to now.
func ParseFeed(data []byte, now time.Time) []models.NewsItem {
	var doc rss
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil
	}

	items := make([]models.NewsItem, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		title := CleanHTML(item.Title)
		if title == "" || item.Link == "" {
			continue
		}

		published := now
		if t, err := time.Parse(time.RFC1123Z, item.PubDate); err == nil {
			published = t
		} else if t, err := time.Parse(time.RFC1123, item.PubDate); err == nil {
			published = t
		}

		items = append(items, models.NewsItem{
			Title:       title,
			Link:        item.Link,
			Description: CleanHTML(item.Description),
			Published:   published,
		})
	}
	return items
}
