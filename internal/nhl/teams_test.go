package nhl

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTeamAbbr(t *testing.T) {
	Convey("Resolving team input", t, func() {
		Convey("An abbreviation resolves regardless of case", func() {
			So(TeamAbbr("PIT"), ShouldEqual, "PIT")
			So(TeamAbbr("pit"), ShouldEqual, "PIT")
		})

		Convey("City names and nicknames resolve", func() {
			So(TeamAbbr("pittsburgh"), ShouldEqual, "PIT")
			So(TeamAbbr("pens"), ShouldEqual, "PIT")
			So(TeamAbbr("Penguins"), ShouldEqual, "PIT")
			So(TeamAbbr("habs"), ShouldEqual, "MTL")
			So(TeamAbbr("rangers"), ShouldEqual, "NYR")
		})

		Convey("Full team names resolve", func() {
			So(TeamAbbr("new york rangers"), ShouldEqual, "NYR")
			So(TeamAbbr("Pittsburgh Penguins"), ShouldEqual, "PIT")
		})

		Convey("Multi-word aliases resolve", func() {
			So(TeamAbbr("tampa bay"), ShouldEqual, "TBL")
			So(TeamAbbr("st. louis"), ShouldEqual, "STL")
		})

		Convey("Surrounding whitespace is ignored", func() {
			So(TeamAbbr("  pens  "), ShouldEqual, "PIT")
		})

		Convey("Unknown input returns empty, never a guess", func() {
			So(TeamAbbr("xyz"), ShouldBeEmpty)
			So(TeamAbbr("peng"), ShouldBeEmpty)
			So(TeamAbbr(""), ShouldBeEmpty)
		})
	})
}

func TestTeamLookups(t *testing.T) {
	Convey("Team metadata lookups", t, func() {
		So(TeamName("PIT"), ShouldEqual, "Pittsburgh Penguins")
		So(TeamName("XXX"), ShouldBeEmpty)
		So(KnownTeam("UTA"), ShouldBeTrue)
		So(KnownTeam("ARI"), ShouldBeFalse)
		So(TeamRSSSlug("PIT"), ShouldEqual, "pittsburgh-penguins")
		So(TeamSearchKeywords("PIT"), ShouldContain, "penguins")
	})
}
