package nhl

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Game type codes used by the NHL schedule and game-log feeds
const (
	GameTypeRegular = 2
	GameTypePlayoff = 3
)

// maxSeasonSteps bounds the backward season walk so players with sparse
// history (rookies, retired goalies) cannot trigger an unbounded scan
const maxSeasonSteps = 10

// CurrentSeason returns the season id for the clock's current date in the
// startYear*10000+endYear encoding (e.g. 20242025). July through December
// belong to the season starting that calendar year; January through June
// belong to the season that started the previous year.
func CurrentSeason(clock clockwork.Clock) int {
	now := clock.Now()
	year := now.Year()
	if now.Month() >= time.July {
		return year*10000 + year + 1
	}
	return (year-1)*10000 + year
}

// PreviousSeason returns the season immediately before s
func PreviousSeason(s int) int {
	return s - 10001
}

// FormatSeasonDisplay renders a season id as e.g. "2024-25"
func FormatSeasonDisplay(s int) string {
	start := s / 10000
	end := s % 10000
	return fmt.Sprintf("%d-%02d", start, end%100)
}

// startSeason picks the first season for a past-games walk. Playoff
// lookups outside the May-August window target the last season whose
// playoffs have plausibly completed, so a September request for playoff
// games returns the previous spring's run rather than nothing.
func startSeason(clock clockwork.Clock, playoffs bool) int {
	season := CurrentSeason(clock)
	if !playoffs {
		return season
	}
	month := clock.Now().Month()
	if month >= time.September || month <= time.April {
		return PreviousSeason(season)
	}
	return season
}

// collectPastGames walks backward through seasons, fetching one season's
// games at a time, until n games are collected or maxSeasonSteps seasons
// have been tried. A failed season fetch contributes zero games and the
// walk continues. The result is truncated to at most n games.
func collectPastGames[T any](clock clockwork.Clock, playoffs bool, n int, fetchSeason func(season int) ([]T, error)) []T {
	var games []T
	season := startSeason(clock, playoffs)

	for attempts := 0; len(games) < n && attempts < maxSeasonSteps; attempts++ {
		seasonGames, err := fetchSeason(season)
		if err != nil {
			log.Debug().Err(err).Int("season", season).Msg("no game data for season, walking back")
		} else {
			games = append(games, seasonGames...)
		}
		season = PreviousSeason(season)
	}

	if len(games) > n {
		games = games[:n]
	}
	return games
}
