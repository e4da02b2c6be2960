package nhl

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseTOI(t *testing.T) {
	Convey("Time-on-ice strings parse to seconds", t, func() {
		So(ParseTOI("12:34"), ShouldEqual, 754)
		So(ParseTOI("60:00"), ShouldEqual, 3600)
		So(ParseTOI("0:45"), ShouldEqual, 45)
	})

	Convey("Malformed values count as zero", t, func() {
		So(ParseTOI(""), ShouldEqual, 0)
		So(ParseTOI("12"), ShouldEqual, 0)
		So(ParseTOI("a:b"), ShouldEqual, 0)
	})
}

func TestAggregateSkaterGames(t *testing.T) {
	Convey("Given a span of skater games", t, func() {
		games := []GameLogEntry{
			{Goals: 2, Assists: 1, PlusMinus: 3, PIM: 0, Shots: 6, TOI: "21:30"},
			{Goals: 0, Assists: 2, PlusMinus: -1, PIM: 2, Shots: 3, TOI: "19:30"},
			{Goals: 1, Assists: 0, PlusMinus: 0, PIM: 4, Shots: 5, TOI: "22:00"},
		}

		totals := AggregateSkaterGames(games)

		Convey("Counting stats sum, with points derived from goals and assists", func() {
			So(totals.Games, ShouldEqual, 3)
			So(totals.Goals, ShouldEqual, 3)
			So(totals.Assists, ShouldEqual, 3)
			So(totals.Points, ShouldEqual, 6)
			So(totals.PlusMinus, ShouldEqual, 2)
			So(totals.PIM, ShouldEqual, 6)
			So(totals.Shots, ShouldEqual, 14)
		})

		Convey("Shooting percentage and average TOI derive from the sums", func() {
			So(totals.ShootingPct, ShouldEqual, "21.4")
			So(totals.AvgTOI(), ShouldEqual, "21:00")
		})
	})

	Convey("An empty span yields zeros with safe display defaults", t, func() {
		totals := AggregateSkaterGames(nil)
		So(totals.Games, ShouldEqual, 0)
		So(totals.ShootingPct, ShouldEqual, "0.0")
		So(totals.AvgTOI(), ShouldEqual, "N/A")
	})
}

func TestAggregateGoalieGames(t *testing.T) {
	Convey("Given a span of goaltender games without feed save percentages", t, func() {
		games := []GameLogEntry{
			{ShotsAgainst: 30, GoalsAgainst: 2, TOI: "60:00", GamesStarted: 1, Wins: 1},
			{ShotsAgainst: 25, GoalsAgainst: 3, TOI: "58:00", GamesStarted: 1, Losses: 1},
			{ShotsAgainst: 28, GoalsAgainst: 1, TOI: "61:00", GamesStarted: 1, Wins: 1, Shutouts: 0},
		}

		totals := AggregateGoalieGames(games)

		Convey("Saves fall back to shots minus goals", func() {
			So(totals.Saves, ShouldEqual, 77)
			So(totals.ShotsAgainst, ShouldEqual, 83)
			So(totals.GoalsAgainst, ShouldEqual, 6)
		})

		Convey("Save percentage and GAA derive from the sums", func() {
			So(totals.SavePct, ShouldEqual, "92.8")
			So(totals.GAA, ShouldEqual, "2.01")
		})

		Convey("Record and starts sum", func() {
			So(totals.Wins, ShouldEqual, 2)
			So(totals.Losses, ShouldEqual, 1)
			So(totals.Starts, ShouldEqual, 3)
		})
	})

	Convey("A feed save percentage is preferred for per-game saves", t, func() {
		totals := AggregateGoalieGames([]GameLogEntry{
			{ShotsAgainst: 30, GoalsAgainst: 5, SavePctg: 0.9, TOI: "60:00"},
		})
		So(totals.Saves, ShouldEqual, 27)
	})

	Convey("An empty span yields safe display defaults", t, func() {
		totals := AggregateGoalieGames(nil)
		So(totals.SavePct, ShouldEqual, "0.0")
		So(totals.GAA, ShouldEqual, "0.00")
	})
}

func TestGoalieGameResult(t *testing.T) {
	Convey("Goalie game results classify from decision or result flags", t, func() {
		So(GoalieGameResult(GameLogEntry{Decision: "W"}), ShouldEqual, "W")
		So(GoalieGameResult(GameLogEntry{Wins: 1}), ShouldEqual, "W")
		So(GoalieGameResult(GameLogEntry{Decision: "L"}), ShouldEqual, "L")
		So(GoalieGameResult(GameLogEntry{OTLosses: 1}), ShouldEqual, "OTL")
		So(GoalieGameResult(GameLogEntry{}), ShouldEqual, "-")
	})
}

func gameResult(home, away string, homeScore, awayScore int, lastPeriod string) ScheduleGame {
	return ScheduleGame{
		HomeTeam:    ScheduleTeam{Abbrev: home, Score: homeScore},
		AwayTeam:    ScheduleTeam{Abbrev: away, Score: awayScore},
		GameOutcome: GameOutcome{LastPeriodType: lastPeriod},
	}
}

func TestTeamGameResult(t *testing.T) {
	Convey("Team game results from the team's perspective", t, func() {
		Convey("Outscoring the opponent is a win either home or away", func() {
			So(TeamGameResult(gameResult("PIT", "NYR", 4, 2, "REG"), "PIT"), ShouldEqual, "W")
			So(TeamGameResult(gameResult("NYR", "PIT", 2, 4, "REG"), "PIT"), ShouldEqual, "W")
		})

		Convey("A regulation loss is a plain loss", func() {
			So(TeamGameResult(gameResult("PIT", "NYR", 2, 4, "REG"), "PIT"), ShouldEqual, "L")
		})

		Convey("Losses in overtime or a shootout are overtime losses", func() {
			So(TeamGameResult(gameResult("PIT", "NYR", 2, 3, "OT"), "PIT"), ShouldEqual, "OTL")
			So(TeamGameResult(gameResult("PIT", "NYR", 2, 3, "SO"), "PIT"), ShouldEqual, "OTL")
		})
	})
}

func TestAggregateTeamGames(t *testing.T) {
	Convey("Given a span of team games", t, func() {
		games := []ScheduleGame{
			gameResult("PIT", "NYR", 4, 2, "REG"),
			gameResult("NYR", "PIT", 3, 2, "OT"),
			gameResult("PIT", "BOS", 1, 5, "REG"),
			gameResult("BOS", "PIT", 2, 6, "REG"),
		}

		totals := AggregateTeamGames(games, "PIT")

		Convey("Results and goals tally from the team's perspective", func() {
			So(totals.Record(), ShouldEqual, "2-1-1")
			So(totals.GoalsFor, ShouldEqual, 13)
			So(totals.GoalsAgainst, ShouldEqual, 12)
			So(totals.GoalDiff, ShouldEqual, 1)
		})

		Convey("Per-game averages format to two decimals", func() {
			So(totals.GFPerGame, ShouldEqual, "3.25")
			So(totals.GAPerGame, ShouldEqual, "3.00")
		})
	})

	Convey("An empty span yields zeroed totals", t, func() {
		totals := AggregateTeamGames(nil, "PIT")
		So(totals.Record(), ShouldEqual, "0-0-0")
		So(totals.GFPerGame, ShouldEqual, "0.00")
	})
}
