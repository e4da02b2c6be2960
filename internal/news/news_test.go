package news

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"nhl-discord-bot/pkg/models"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Pro Hockey Rumors</title>
    <item>
      <title>Penguins Sign Defenseman &amp; Recall Forward</title>
      <link>https://example.com/penguins-sign</link>
      <description>&lt;p&gt;The &lt;b&gt;Penguins&lt;/b&gt; made two moves today.&lt;/p&gt;</description>
      <pubDate>Fri, 15 Nov 2024 14:30:00 +0000</pubDate>
    </item>
    <item>
      <title>Rangers Place Goaltender On Waivers</title>
      <link>https://example.com/rangers-waivers</link>
      <description>A roster crunch in New York.</description>
      <pubDate>not a date</pubDate>
    </item>
    <item>
      <title></title>
      <link>https://example.com/untitled</link>
      <description>dropped</description>
    </item>
  </channel>
</rss>`

func TestParseFeed(t *testing.T) {
	now := time.Date(2024, time.November, 16, 9, 0, 0, 0, time.UTC)

	Convey("Given a league RSS document", t, func() {
		items := ParseFeed([]byte(sampleFeed), now)

		Convey("Items without a title are dropped", func() {
			So(items, ShouldHaveLength, 2)
		})

		Convey("Titles and descriptions are cleaned of markup and entities", func() {
			So(items[0].Title, ShouldEqual, "Penguins Sign Defenseman & Recall Forward")
			So(items[0].Description, ShouldEqual, "The Penguins made two moves today.")
			So(items[0].Link, ShouldEqual, "https://example.com/penguins-sign")
		})

		Convey("Publish dates parse, with unparseable dates falling back to now", func() {
			So(items[0].Published.Equal(time.Date(2024, time.November, 15, 14, 30, 0, 0, time.UTC)), ShouldBeTrue)
			So(items[1].Published.Equal(now), ShouldBeTrue)
		})
	})

	Convey("A malformed document yields no items", t, func() {
		So(ParseFeed([]byte("not xml at all"), now), ShouldBeNil)
	})
}

func TestCleanHTML(t *testing.T) {
	Convey("CleanHTML strips tags, entities, and runs of whitespace", t, func() {
		So(CleanHTML("<p>Hello <b>world</b></p>"), ShouldEqual, "Hello world")
		So(CleanHTML("a &amp; b"), ShouldEqual, "a & b")
		So(CleanHTML("  spaced\n\tout  "), ShouldEqual, "spaced out")
		So(CleanHTML(""), ShouldBeEmpty)
	})
}

func TestFilterForTeam(t *testing.T) {
	items := []models.NewsItem{
		{Title: "Penguins Sign Defenseman"},
		{Title: "Rangers Place Goaltender On Waivers"},
		{Title: "Pittsburgh Recalls Forward"},
		{Title: "League Announces Schedule"},
	}

	Convey("Headlines are kept when any keyword matches, case-insensitively", t, func() {
		filtered := FilterForTeam(items, []string{"penguins", "pittsburgh", "pens"})
		So(filtered, ShouldHaveLength, 2)
		So(filtered[0].Title, ShouldEqual, "Penguins Sign Defenseman")
		So(filtered[1].Title, ShouldEqual, "Pittsburgh Recalls Forward")
	})

	Convey("No keywords means no matches", t, func() {
		So(FilterForTeam(items, nil), ShouldBeNil)
	})
}
