package espn

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func sampleFeed() *Feed {
	crosby := Injury{Status: "Day-To-Day", ShortComment: "Upper body"}
	crosby.Athlete.DisplayName = "Sidney Crosby"
	crosby.Athlete.Position.Abbreviation = "C"

	letang := Injury{Status: "Out", LongComment: "Expected back in two weeks"}
	letang.Athlete.DisplayName = "Kris Letang"
	letang.Athlete.Position.Abbreviation = "D"

	fox := Injury{Status: "Out"}
	fox.Athlete.DisplayName = "Adam Fox"
	fox.Athlete.Position.Abbreviation = "D"

	return &Feed{Injuries: []TeamInjuries{
		{DisplayName: "Pittsburgh Penguins", Injuries: []Injury{crosby, letang}},
		{DisplayName: "New York Rangers", Injuries: []Injury{fox}},
	}}
}

func TestTeamInjuriesFor(t *testing.T) {
	Convey("Given the league injuries feed", t, func() {
		feed := sampleFeed()

		Convey("A team's injuries project by exact display name", func() {
			injuries := TeamInjuriesFor(feed, "Pittsburgh Penguins")

			So(injuries, ShouldHaveLength, 2)
			So(injuries[0].PlayerName, ShouldEqual, "Sidney Crosby")
			So(injuries[0].Position, ShouldEqual, "C")
			So(injuries[0].Status, ShouldEqual, "Day-To-Day")
			So(injuries[0].TeamName, ShouldEqual, "Pittsburgh Penguins")
		})

		Convey("The short comment wins over the long one", func() {
			injuries := TeamInjuriesFor(feed, "Pittsburgh Penguins")
			So(injuries[0].Comment, ShouldEqual, "Upper body")
			So(injuries[1].Comment, ShouldEqual, "Expected back in two weeks")
		})

		Convey("An unlisted team yields nothing", func() {
			So(TeamInjuriesFor(feed, "Boston Bruins"), ShouldBeNil)
		})

		Convey("A nil feed yields nothing", func() {
			So(TeamInjuriesFor(nil, "Pittsburgh Penguins"), ShouldBeNil)
		})
	})
}

func TestSearchPlayerInjury(t *testing.T) {
	Convey("Given the league injuries feed", t, func() {
		feed := sampleFeed()

		Convey("Player search matches by case-insensitive substring", func() {
			matches := SearchPlayerInjury(feed, "crosby")
			So(matches, ShouldHaveLength, 1)
			So(matches[0].PlayerName, ShouldEqual, "Sidney Crosby")
			So(matches[0].TeamName, ShouldEqual, "Pittsburgh Penguins")
		})

		Convey("Search spans all teams", func() {
			So(SearchPlayerInjury(feed, "fox"), ShouldHaveLength, 1)
		})

		Convey("No match yields nothing", func() {
			So(SearchPlayerInjury(feed, "ovechkin"), ShouldBeNil)
		})
	})
}
