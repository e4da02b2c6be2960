package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the NHL Discord bot
type Config struct {
	// Discord settings
	DiscordToken string
	BotPrefix    string

	// Data feed endpoints
	NHLAPIBaseURL       string
	PlayerSearchBaseURL string
	InjuriesFeedURL     string
	NewsFeedBaseURL     string

	// Optional video search credential; recaps degrade to search links
	// without it
	YouTubeAPIKey string

	// Feed cache TTLs
	InjuriesCacheTTL time.Duration
	NewsCacheTTL     time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Discord configuration
	config.DiscordToken = os.Getenv("DISCORD_TOKEN")
	if config.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN environment variable is required")
	}

	config.BotPrefix = getEnvWithDefault("BOT_PREFIX", "!")

	// Data feed endpoints
	config.NHLAPIBaseURL = getEnvWithDefault("NHL_API_BASE_URL", "https://api-web.nhle.com")
	config.PlayerSearchBaseURL = getEnvWithDefault("PLAYER_SEARCH_BASE_URL", "https://search.d3.nhle.com")
	config.InjuriesFeedURL = getEnvWithDefault("INJURIES_FEED_URL", "https://site.api.espn.com/apis/site/v2/sports/hockey/nhl/injuries")
	config.NewsFeedBaseURL = getEnvWithDefault("NEWS_FEED_BASE_URL", "https://www.prohockeyrumors.com")

	config.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")

	// Cache TTLs
	injuriesTTL, err := strconv.Atoi(getEnvWithDefault("INJURIES_CACHE_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid INJURIES_CACHE_MINUTES value: %v", err)
	}
	config.InjuriesCacheTTL = time.Duration(injuriesTTL) * time.Minute

	newsTTL, err := strconv.Atoi(getEnvWithDefault("NEWS_CACHE_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEWS_CACHE_MINUTES value: %v", err)
	}
	config.NewsCacheTTL = time.Duration(newsTTL) * time.Minute

	// Logging
	config.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	return config, nil
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
