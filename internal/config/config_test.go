package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("BOT_PREFIX", "")
	t.Setenv("INJURIES_CACHE_MINUTES", "")
	t.Setenv("NEWS_CACHE_MINUTES", "")
	t.Setenv("YOUTUBE_API_KEY", "")

	Convey("Given a token, Load fills in defaults", t, func() {
		cfg, err := Load()

		So(err, ShouldBeNil)
		So(cfg.DiscordToken, ShouldEqual, "test-token")
		So(cfg.BotPrefix, ShouldEqual, "!")
		So(cfg.NHLAPIBaseURL, ShouldEqual, "https://api-web.nhle.com")
		So(cfg.PlayerSearchBaseURL, ShouldEqual, "https://search.d3.nhle.com")
		So(cfg.InjuriesCacheTTL, ShouldEqual, 5*time.Minute)
		So(cfg.NewsCacheTTL, ShouldEqual, 10*time.Minute)
		So(cfg.YouTubeAPIKey, ShouldBeEmpty)
		So(cfg.LogLevel, ShouldEqual, "info")
	})

	Convey("Overrides take effect", t, func() {
		t.Setenv("BOT_PREFIX", "?")
		t.Setenv("INJURIES_CACHE_MINUTES", "2")

		cfg, err := Load()

		So(err, ShouldBeNil)
		So(cfg.BotPrefix, ShouldEqual, "?")
		So(cfg.InjuriesCacheTTL, ShouldEqual, 2*time.Minute)
	})

	Convey("A malformed TTL is an error", t, func() {
		t.Setenv("INJURIES_CACHE_MINUTES", "soon")

		_, err := Load()
		So(err, ShouldNotBeNil)
	})
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	Convey("Load fails without a Discord token", t, func() {
		_, err := Load()
		So(err, ShouldNotBeNil)
	})
}
