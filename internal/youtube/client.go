package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const baseURL = "https://www.googleapis.com/youtube/v3"

// Video is one search result
type Video struct {
	ID           string
	Title        string
	ChannelTitle string
	Thumbnail    string
	PublishedAt  time.Time
}

// WatchURL returns the public watch URL for the video
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// ResultsURL returns a public search-results URL for a query
func ResultsURL(query string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(query)
}

// Client talks to the YouTube Data API. The API key is optional; callers
// check HasKey before searching and fall back to search links without it.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a YouTube search client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// HasKey reports whether an API key is configured
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search runs a video search ordered by date within the publish window.
// channelID restricts results to one channel when non-empty.
func (c *Client) Search(query, channelID string, publishedAfter, publishedBefore time.Time) ([]Video, error) {
	if !c.HasKey() {
		return nil, fmt.Errorf("no API key configured")
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("order", "date")
	params.Set("maxResults", "15")
	params.Set("publishedAfter", publishedAfter.UTC().Format(time.RFC3339))
	params.Set("publishedBefore", publishedBefore.UTC().Format(time.RFC3339))
	params.Set("key", c.apiKey)
	if channelID != "" {
		params.Set("channelId", channelID)
	}

	resp, err := c.httpClient.Get(baseURL + "/search?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	videos := make([]Video, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		published, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		videos = append(videos, Video{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			PublishedAt:  published,
		})
	}
	return videos, nil
}
