package nhl

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"nhl-discord-bot/internal/youtube"
	"nhl-discord-bot/pkg/models"
)

// nhlChannelID is the official NHL YouTube channel, searched before
// falling back to a league-wide query
const nhlChannelID = "UCqFii6I0kpYUaHV3t_dUOOg"

// VideoSearcher is the video search surface the recap chain needs.
// *youtube.Client satisfies it; tests substitute a fake.
type VideoSearcher interface {
	HasKey() bool
	Search(query, channelID string, publishedAfter, publishedBefore time.Time) ([]youtube.Video, error)
}

// GameRecap bundles a completed game with its details and located
// highlight video. Details and Video are nil when the game-details fetch
// failed; Video falls back to a search-link payload when no embeddable
// video could be found.
type GameRecap struct {
	Game    *ScheduleGame
	Details *GameLanding
	Video   *models.RecapVideo
}

// GameRecap locates the team's most recent completed game and its
// highlight video. Returns nil when the team has no completed games.
func (c *Client) GameRecap(abbr string) (*GameRecap, error) {
	game, err := c.PreviousGame(abbr)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, nil
	}

	details, err := c.GameLanding(game.ID)
	if err != nil {
		log.Warn().Err(err).Int64("game_id", game.ID).Msg("failed to fetch game details")
		return &GameRecap{Game: game}, nil
	}

	awayName := TeamName(game.AwayTeam.Abbrev)
	if awayName == "" {
		awayName = game.AwayTeam.Abbrev
	}
	homeName := TeamName(game.HomeTeam.Abbrev)
	if homeName == "" {
		homeName = game.HomeTeam.Abbrev
	}

	video := findRecapVideo(c.videos, awayName, homeName, game.StartTimeUTC)
	return &GameRecap{Game: game, Details: details, Video: video}, nil
}

// shortName is the last word of a team name, lowercased ("pittsburgh
// penguins" -> "penguins")
func shortName(teamName string) string {
	parts := strings.Fields(strings.ToLower(teamName))
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// recapQueries returns the search phrasings tried in order. Short-name
// permutations come first because that is how highlight titles are
// usually worded.
func recapQueries(awayShort, homeShort, awayFull, homeFull string) []string {
	return []string{
		fmt.Sprintf("%s vs %s highlights", awayShort, homeShort),
		fmt.Sprintf("%s %s highlights", awayShort, homeShort),
		fmt.Sprintf("%s vs %s highlights", homeShort, awayShort),
		fmt.Sprintf("%s vs %s highlights", awayFull, homeFull),
	}
}

// isHighlightTitle reports whether the title looks like a game highlight
// video rather than an interview or analysis clip
func isHighlightTitle(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "highlights") ||
		strings.Contains(lower, "recap") ||
		strings.Contains(lower, "condensed")
}

// matchesTeams requires both teams to appear in the title, by short or
// full name
func matchesTeams(title, awayShort, homeShort, awayFull, homeFull string) bool {
	lower := strings.ToLower(title)
	hasAway := strings.Contains(lower, awayShort) || strings.Contains(lower, strings.ToLower(awayFull))
	hasHome := strings.Contains(lower, homeShort) || strings.Contains(lower, strings.ToLower(homeFull))
	return hasAway && hasHome
}

// isTrustedChannel limits embeds to broadcasters that publish real game
// highlights
func isTrustedChannel(channelTitle string) bool {
	lower := strings.ToLower(channelTitle)
	return strings.Contains(lower, "nhl") ||
		strings.Contains(lower, "sportsnet") ||
		strings.Contains(lower, "tsn") ||
		strings.Contains(lower, "espn")
}

// isDateValid accepts videos published between one day before and three
// days after the game
func isDateValid(published, gameDate time.Time) bool {
	diff := published.Sub(gameDate).Hours() / 24
	return diff >= -1 && diff <= 3
}

// searchLinkVideo builds the deterministic search-link fallback payload
func searchLinkVideo(awayShort, homeShort, awayFull, homeFull string, gameDate time.Time, noVideoFound bool) *models.RecapVideo {
	longDate := gameDate.Format("January 2, 2006")
	query := fmt.Sprintf("%s vs %s highlights %s NHL", awayShort, homeShort, longDate)
	return &models.RecapVideo{
		URL:          youtube.ResultsURL(query),
		Title:        fmt.Sprintf("%s vs %s Highlights", awayFull, homeFull),
		SearchQuery:  query,
		Search:       true,
		NoVideoFound: noVideoFound,
	}
}

// findRecapVideo evaluates the recap strategies in order: each query
// phrasing is searched (NHL channel first, then league-wide) and the
// first video satisfying all four predicates wins. Exhausting every
// phrasing, or having no API key at all, falls through to a search-link
// payload.
func findRecapVideo(videos VideoSearcher, awayName, homeName string, gameDate time.Time) *models.RecapVideo {
	awayShort := shortName(awayName)
	homeShort := shortName(homeName)

	if videos == nil || !videos.HasKey() {
		return searchLinkVideo(awayShort, homeShort, awayName, homeName, gameDate, false)
	}

	publishedAfter := time.Date(gameDate.Year(), gameDate.Month(), gameDate.Day(), 0, 0, 0, 0, time.UTC)
	publishedBefore := publishedAfter.AddDate(0, 0, 3).Add(24*time.Hour - time.Second)

	for _, query := range recapQueries(awayShort, homeShort, awayName, homeName) {
		results, err := videos.Search(query, nhlChannelID, publishedAfter, publishedBefore)
		if err == nil && len(results) == 0 {
			results, err = videos.Search(query+" NHL highlights", "", publishedAfter, publishedBefore)
		}
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("video search failed")
			continue
		}

		for _, v := range results {
			if isHighlightTitle(v.Title) &&
				matchesTeams(v.Title, awayShort, homeShort, awayName, homeName) &&
				isTrustedChannel(v.ChannelTitle) &&
				isDateValid(v.PublishedAt, gameDate) {
				return &models.RecapVideo{
					URL:          v.WatchURL(),
					Title:        v.Title,
					Thumbnail:    v.Thumbnail,
					ChannelTitle: v.ChannelTitle,
					PublishedAt:  v.PublishedAt.Format(time.RFC3339),
					Embeddable:   true,
				}
			}
		}
	}

	return searchLinkVideo(awayShort, homeShort, awayName, homeName, gameDate, true)
}
