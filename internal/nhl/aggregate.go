package nhl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"nhl-discord-bot/pkg/models"
)

// ParseTOI converts a "MM:SS" time-on-ice string to total seconds.
// Malformed or empty values count as zero.
func ParseTOI(toi string) int {
	parts := strings.Split(toi, ":")
	if len(parts) != 2 {
		return 0
	}
	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return mins*60 + secs
}

// AggregateSkaterGames reduces a span of skater game-log entries to
// cumulative totals. Points are derived from goals plus assists, and
// shooting percentage defaults to "0.0" when no shots were taken.
func AggregateSkaterGames(games []GameLogEntry) models.SkaterTotals {
	totals := models.SkaterTotals{Games: len(games)}

	for _, g := range games {
		totals.Goals += g.Goals
		totals.Assists += g.Assists
		totals.PlusMinus += g.PlusMinus
		totals.PIM += g.PIM
		totals.Shots += g.Shots
		totals.TOISeconds += ParseTOI(g.TOI)
	}
	totals.Points = totals.Goals + totals.Assists

	if totals.Shots > 0 {
		totals.ShootingPct = fmt.Sprintf("%.1f", float64(totals.Goals)/float64(totals.Shots)*100)
	} else {
		totals.ShootingPct = "0.0"
	}
	return totals
}

// gameSaves derives saves for one goaltender game. The feed's save
// percentage is preferred when present; otherwise shots minus goals.
func gameSaves(g GameLogEntry) int {
	if g.SavePctg > 0 {
		return int(math.Round(float64(g.ShotsAgainst) * g.SavePctg))
	}
	return g.ShotsAgainst - g.GoalsAgainst
}

// AggregateGoalieGames reduces a span of goaltender game-log entries to
// cumulative totals. Save percentage and goals-against average default to
// "0.0" and "0.00" when no shots were faced or no ice time was logged.
func AggregateGoalieGames(games []GameLogEntry) models.GoalieTotals {
	totals := models.GoalieTotals{Games: len(games)}

	for _, g := range games {
		totals.Starts += g.GamesStarted
		totals.Wins += g.Wins
		totals.Losses += g.Losses
		totals.OTLosses += g.OTLosses
		totals.ShotsAgainst += g.ShotsAgainst
		totals.GoalsAgainst += g.GoalsAgainst
		totals.Saves += gameSaves(g)
		totals.Shutouts += g.Shutouts
		totals.TOISeconds += ParseTOI(g.TOI)
	}

	if totals.ShotsAgainst > 0 {
		totals.SavePct = fmt.Sprintf("%.1f", float64(totals.Saves)/float64(totals.ShotsAgainst)*100)
	} else {
		totals.SavePct = "0.0"
	}
	if totals.TOISeconds > 0 {
		totals.GAA = fmt.Sprintf("%.2f", float64(totals.GoalsAgainst)/(float64(totals.TOISeconds)/3600))
	} else {
		totals.GAA = "0.00"
	}
	return totals
}

// GoalieGameResult classifies one goaltender game for display. The feed
// sometimes carries an explicit decision and sometimes 1/0 result flags;
// a game with neither is rendered as "-".
func GoalieGameResult(g GameLogEntry) string {
	switch {
	case g.Decision == "W" || g.Wins == 1:
		return "W"
	case g.Decision == "L" || g.Losses == 1:
		return "L"
	case g.Decision == "O" || g.OTLosses == 1:
		return "OTL"
	}
	return "-"
}

// TeamGameResult classifies one schedule game from the perspective of the
// team with the given abbreviation. A loss counts as an overtime loss
// only when the game ended in overtime or a shootout.
func TeamGameResult(g ScheduleGame, abbr string) string {
	teamScore, oppScore := g.ScoresFor(abbr)
	if teamScore > oppScore {
		return "W"
	}
	if g.GameOutcome.LastPeriodType == "OT" || g.GameOutcome.LastPeriodType == "SO" {
		return "OTL"
	}
	return "L"
}

// AggregateTeamGames tallies results and goals over a span of schedule
// games for the team with the given abbreviation.
func AggregateTeamGames(games []ScheduleGame, abbr string) models.TeamTotals {
	totals := models.TeamTotals{Games: len(games)}

	for _, g := range games {
		teamScore, oppScore := g.ScoresFor(abbr)
		totals.GoalsFor += teamScore
		totals.GoalsAgainst += oppScore

		switch TeamGameResult(g, abbr) {
		case "W":
			totals.Wins++
		case "OTL":
			totals.OTLosses++
		default:
			totals.Losses++
		}
	}
	totals.GoalDiff = totals.GoalsFor - totals.GoalsAgainst

	if totals.Games > 0 {
		totals.GFPerGame = fmt.Sprintf("%.2f", float64(totals.GoalsFor)/float64(totals.Games))
		totals.GAPerGame = fmt.Sprintf("%.2f", float64(totals.GoalsAgainst)/float64(totals.Games))
	} else {
		totals.GFPerGame = "0.00"
		totals.GAPerGame = "0.00"
	}
	return totals
}
