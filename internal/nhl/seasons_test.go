package nhl

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/smartystreets/goconvey/convey"
)

func clockAt(year int, month time.Month, day int) clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

func TestCurrentSeason(t *testing.T) {
	Convey("The season boundary falls between June and July", t, func() {
		So(CurrentSeason(clockAt(2024, time.November, 15)), ShouldEqual, 20242025)
		So(CurrentSeason(clockAt(2025, time.March, 1)), ShouldEqual, 20242025)
		So(CurrentSeason(clockAt(2024, time.July, 1)), ShouldEqual, 20242025)
		So(CurrentSeason(clockAt(2024, time.June, 30)), ShouldEqual, 20232024)
		So(CurrentSeason(clockAt(2024, time.December, 31)), ShouldEqual, 20242025)
		So(CurrentSeason(clockAt(2025, time.January, 1)), ShouldEqual, 20242025)
	})
}

func TestPreviousSeason(t *testing.T) {
	Convey("PreviousSeason steps back exactly one season", t, func() {
		So(PreviousSeason(20242025), ShouldEqual, 20232024)
		So(PreviousSeason(20002001), ShouldEqual, 19992000)
	})
}

func TestFormatSeasonDisplay(t *testing.T) {
	Convey("Season ids render as start-end year pairs", t, func() {
		So(FormatSeasonDisplay(20242025), ShouldEqual, "2024-25")
		So(FormatSeasonDisplay(19992000), ShouldEqual, "1999-00")
		So(FormatSeasonDisplay(20092010), ShouldEqual, "2009-10")
	})
}

func TestStartSeason(t *testing.T) {
	Convey("Regular-season walks start at the current season", t, func() {
		So(startSeason(clockAt(2024, time.October, 1), false), ShouldEqual, 20242025)
		So(startSeason(clockAt(2025, time.February, 1), false), ShouldEqual, 20242025)
	})

	Convey("Playoff walks outside the spring window start one season back", t, func() {
		// In October the current season's playoffs have not happened yet
		So(startSeason(clockAt(2024, time.October, 1), true), ShouldEqual, 20232024)
		So(startSeason(clockAt(2025, time.February, 1), true), ShouldEqual, 20232024)

		// In May and June the current season's playoffs are underway
		So(startSeason(clockAt(2025, time.May, 15), true), ShouldEqual, 20242025)
		So(startSeason(clockAt(2025, time.June, 10), true), ShouldEqual, 20242025)
	})
}

func TestCollectPastGames(t *testing.T) {
	clock := clockAt(2024, time.November, 15)

	Convey("Given a season fetcher returning two games per season", t, func() {
		var fetched []int
		fetch := func(season int) ([]int, error) {
			fetched = append(fetched, season)
			return []int{season, season}, nil
		}

		Convey("The walk stops once n games are collected", func() {
			games := collectPastGames(clock, false, 5, fetch)

			So(games, ShouldHaveLength, 5)
			So(fetched, ShouldResemble, []int{20242025, 20232024, 20222023})
			So(games[0], ShouldEqual, 20242025)
			So(games[4], ShouldEqual, 20222023)
		})
	})

	Convey("Given a fetcher that always fails", t, func() {
		calls := 0
		fetch := func(season int) ([]int, error) {
			calls++
			return nil, errors.New("no data")
		}

		Convey("The walk gives up after a bounded number of seasons", func() {
			games := collectPastGames(clock, false, 20, fetch)

			So(games, ShouldBeEmpty)
			So(calls, ShouldEqual, 10)
		})
	})

	Convey("Given a player with only one season of history", t, func() {
		fetch := func(season int) ([]int, error) {
			if season == 20242025 {
				return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, nil
			}
			return nil, errors.New("no data")
		}

		Convey("Fewer than n games come back rather than an error", func() {
			games := collectPastGames(clock, false, 20, fetch)
			So(games, ShouldHaveLength, 12)
		})
	})

	Convey("A season returning more than n games is truncated", t, func() {
		fetch := func(season int) ([]int, error) {
			return []int{1, 2, 3, 4, 5, 6, 7, 8}, nil
		}
		So(collectPastGames(clock, false, 5, fetch), ShouldHaveLength, 5)
	})
}
