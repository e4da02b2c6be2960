package nhl

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"nhl-discord-bot/pkg/models"
)

func landingWithSummaryStars(entries ...string) *GameLanding {
	var l GameLanding
	for _, e := range entries {
		l.Summary.ThreeStars = append(l.Summary.ThreeStars, json.RawMessage(e))
	}
	return &l
}

func TestGameLandingStars(t *testing.T) {
	Convey("Three-stars entries normalize across observed feed shapes", t, func() {
		Convey("Localized names with a team abbreviation", func() {
			l := landingWithSummaryStars(`{"name":{"default":"Sidney Crosby"},"teamAbbrev":"PIT"}`)
			So(l.Stars(), ShouldResemble, []models.Star{
				{Name: "Sidney Crosby", Team: "Pittsburgh Penguins"},
			})
		})

		Convey("Plain string names", func() {
			l := landingWithSummaryStars(`{"name":"Sidney Crosby","teamAbbrev":"PIT"}`)
			So(l.Stars()[0].Name, ShouldEqual, "Sidney Crosby")
		})

		Convey("Split first and last name fields", func() {
			l := landingWithSummaryStars(`{"firstName":{"default":"Sidney"},"lastName":{"default":"Crosby"},"teamAbbrev":"PIT"}`)
			So(l.Stars()[0].Name, ShouldEqual, "Sidney Crosby")
		})

		Convey("A nested player record", func() {
			l := landingWithSummaryStars(`{"player":{"name":"Sidney Crosby","teamAbbrev":"PIT"}}`)
			So(l.Stars(), ShouldResemble, []models.Star{
				{Name: "Sidney Crosby", Team: "Pittsburgh Penguins"},
			})
		})

		Convey("A bare string is a name with no team", func() {
			l := landingWithSummaryStars(`"Sidney Crosby"`)
			So(l.Stars(), ShouldResemble, []models.Star{{Name: "Sidney Crosby"}})
		})

		Convey("An unknown abbreviation passes through unchanged", func() {
			l := landingWithSummaryStars(`{"name":"Someone","teamAbbrev":"XXX"}`)
			So(l.Stars()[0].Team, ShouldEqual, "XXX")
		})

		Convey("Unrecognized shapes are dropped, not fatal", func() {
			l := landingWithSummaryStars(`{"jersey":87}`, `{"name":"Sidney Crosby"}`)
			So(l.Stars(), ShouldHaveLength, 1)
		})
	})

	Convey("The landing payload locations are tried in order", t, func() {
		Convey("Top-level threeStars is used when the summary is empty", func() {
			var l GameLanding
			l.ThreeStars = []json.RawMessage{json.RawMessage(`"Sidney Crosby"`)}
			So(l.Stars(), ShouldHaveLength, 1)
		})

		Convey("The boxscore is the last resort", func() {
			var l GameLanding
			l.Boxscore.ThreeStars = []json.RawMessage{json.RawMessage(`"Sidney Crosby"`)}
			So(l.Stars(), ShouldHaveLength, 1)
		})

		Convey("No stars anywhere yields an empty list", func() {
			var l GameLanding
			So(l.Stars(), ShouldBeEmpty)
		})
	})
}
