// Package espn wraps the ESPN NHL injuries feed behind a TTL cache.
package espn

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"nhl-discord-bot/internal/cache"
	"nhl-discord-bot/pkg/models"
)

// Feed is the decoded injuries payload
type Feed struct {
	Injuries []TeamInjuries `json:"injuries"`
}

// TeamInjuries is one team's injury list
type TeamInjuries struct {
	DisplayName string   `json:"displayName"`
	Injuries    []Injury `json:"injuries"`
}

// Injury is one injury entry
type Injury struct {
	Status  string `json:"status"`
	Athlete struct {
		DisplayName string `json:"displayName"`
		Position    struct {
			Abbreviation string `json:"abbreviation"`
		} `json:"position"`
	} `json:"athlete"`
	LongComment  string `json:"longComment"`
	ShortComment string `json:"shortComment"`
}

func (i Injury) comment() string {
	if i.ShortComment != "" {
		return i.ShortComment
	}
	return i.LongComment
}

// Client fetches the injuries feed, serving cached data for up to the
// configured TTL
type Client struct {
	feedURL    string
	httpClient *http.Client
	cache      *cache.Cache[*Feed]
}

// NewClient creates an injuries client with the given cache TTL
func NewClient(feedURL string, ttl time.Duration, clock clockwork.Clock) *Client {
	return &Client{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      cache.New[*Feed](ttl, clock),
	}
}

// Injuries returns the current league-wide injuries feed
func (c *Client) Injuries() (*Feed, error) {
	return c.cache.Get(func() (*Feed, error) {
		resp, err := c.httpClient.Get(c.feedURL)
		if err != nil {
			return nil, fmt.Errorf("injuries request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		var feed Feed
		if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
			return nil, fmt.Errorf("failed to parse injuries feed: %w", err)
		}
		return &feed, nil
	})
}

// TeamInjuries projects one team's injury entries out of the feed,
// matched by full display name.
func TeamInjuriesFor(feed *Feed, teamName string) []models.Injury {
	if feed == nil {
		return nil
	}
	for _, team := range feed.Injuries {
		if team.DisplayName != teamName {
			continue
		}
		injuries := make([]models.Injury, 0, len(team.Injuries))
		for _, inj := range team.Injuries {
			injuries = append(injuries, models.Injury{
				PlayerName: inj.Athlete.DisplayName,
				Position:   inj.Athlete.Position.Abbreviation,
				Status:     inj.Status,
				Comment:    inj.comment(),
				TeamName:   team.DisplayName,
			})
		}
		return injuries
	}
	return nil
}

// SearchPlayerInjury returns every injury entry whose player name
// contains the query, case-insensitively, across all teams.
func SearchPlayerInjury(feed *Feed, playerQuery string) []models.Injury {
	if feed == nil {
		return nil
	}
	query := strings.ToLower(playerQuery)

	var matches []models.Injury
	for _, team := range feed.Injuries {
		for _, inj := range team.Injuries {
			if !strings.Contains(strings.ToLower(inj.Athlete.DisplayName), query) {
				continue
			}
			matches = append(matches, models.Injury{
				PlayerName: inj.Athlete.DisplayName,
				Position:   inj.Athlete.Position.Abbreviation,
				Status:     inj.Status,
				Comment:    inj.comment(),
				TeamName:   team.DisplayName,
			})
		}
	}
	return matches
}
