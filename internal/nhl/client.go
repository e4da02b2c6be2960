package nhl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"nhl-discord-bot/pkg/models"
)

// Client talks to the NHL api-web and player-search feeds
type Client struct {
	baseURL    string
	searchURL  string
	httpClient *http.Client
	clock      clockwork.Clock
	videos     VideoSearcher
}

// NewClient creates a new NHL data client. videos may be nil, in which
// case game recaps fall back to search links.
func NewClient(baseURL, searchURL string, videos VideoSearcher, clock clockwork.Clock) *Client {
	return &Client{
		baseURL:    baseURL,
		searchURL:  searchURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		clock:      clock,
		videos:     videos,
	}
}

// getJSON fetches a URL and decodes the JSON response into out
func (c *Client) getJSON(rawURL string, out interface{}) error {
	log.Debug().Str("url", rawURL).Msg("GET")

	resp, err := c.httpClient.Get(rawURL)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d (%s)", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// LocalizedName is the feed's {"default": "..."} string wrapper
type LocalizedName struct {
	Default string `json:"default"`
}

// ScheduleTeam is one side of a schedule game
type ScheduleTeam struct {
	Abbrev    string        `json:"abbrev"`
	Score     int           `json:"score"`
	PlaceName LocalizedName `json:"placeName"`
}

// GameOutcome carries how a completed game ended
type GameOutcome struct {
	LastPeriodType string `json:"lastPeriodType"`
}

// ScheduleGame is one game from the club schedule feed. Season and
// SeasonDisplay are stamped by the season walker, not the feed.
type ScheduleGame struct {
	ID            int64        `json:"id"`
	Season        int          `json:"season"`
	GameType      int          `json:"gameType"`
	GameState     string       `json:"gameState"`
	StartTimeUTC  time.Time    `json:"startTimeUTC"`
	HomeTeam      ScheduleTeam `json:"homeTeam"`
	AwayTeam      ScheduleTeam `json:"awayTeam"`
	GameOutcome   GameOutcome  `json:"gameOutcome"`
	SeasonDisplay string       `json:"-"`
}

// Completed reports whether the game has finished
func (g *ScheduleGame) Completed() bool {
	return g.GameState == "OFF" || g.GameState == "FINAL"
}

// IsHome reports whether abbr is the home team in this game
func (g *ScheduleGame) IsHome(abbr string) bool {
	return g.HomeTeam.Abbrev == abbr
}

// Opponent returns the other team's abbreviation
func (g *ScheduleGame) Opponent(abbr string) string {
	if g.IsHome(abbr) {
		return g.AwayTeam.Abbrev
	}
	return g.HomeTeam.Abbrev
}

// ScoresFor returns (teamScore, opponentScore) from abbr's perspective
func (g *ScheduleGame) ScoresFor(abbr string) (int, int) {
	if g.IsHome(abbr) {
		return g.HomeTeam.Score, g.AwayTeam.Score
	}
	return g.AwayTeam.Score, g.HomeTeam.Score
}

type scheduleResponse struct {
	Games []ScheduleGame `json:"games"`
}

// currentSchedule fetches the team's current-season schedule
func (c *Client) currentSchedule(abbr string) ([]ScheduleGame, error) {
	var resp scheduleResponse
	u := fmt.Sprintf("%s/v1/club-schedule-season/%s/now", c.baseURL, abbr)
	if err := c.getJSON(u, &resp); err != nil {
		return nil, err
	}
	return resp.Games, nil
}

// NextGame returns the team's next upcoming game, or nil if the schedule
// holds no future games.
func (c *Client) NextGame(abbr string) (*ScheduleGame, error) {
	games, err := c.currentSchedule(abbr)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	for i := range games {
		if !games[i].StartTimeUTC.Before(now) {
			return &games[i], nil
		}
	}
	return nil, nil
}

// UpcomingGames returns up to n of the team's next scheduled games
func (c *Client) UpcomingGames(abbr string, n int) ([]ScheduleGame, error) {
	games, err := c.currentSchedule(abbr)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	var upcoming []ScheduleGame
	for _, g := range games {
		if g.StartTimeUTC.Before(now) {
			continue
		}
		upcoming = append(upcoming, g)
		if len(upcoming) == n {
			break
		}
	}
	return upcoming, nil
}

// PreviousGame returns the team's most recent completed game, or nil
func (c *Client) PreviousGame(abbr string) (*ScheduleGame, error) {
	games, err := c.currentSchedule(abbr)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	var last *ScheduleGame
	for i := range games {
		if games[i].StartTimeUTC.Before(now) && games[i].GameState == "OFF" {
			last = &games[i]
		}
	}
	return last, nil
}

// TeamPastGames collects the team's last n completed games of the given
// type, walking backward through seasons as needed. Seasons with no data
// contribute nothing; the walk never aborts on a single season's failure.
func (c *Client) TeamPastGames(abbr string, n int, playoffs bool) []ScheduleGame {
	gameType := GameTypeRegular
	if playoffs {
		gameType = GameTypePlayoff
	}

	return collectPastGames(c.clock, playoffs, n, func(season int) ([]ScheduleGame, error) {
		var resp scheduleResponse
		u := fmt.Sprintf("%s/v1/club-schedule-season/%s/%d", c.baseURL, abbr, season)
		if err := c.getJSON(u, &resp); err != nil {
			return nil, err
		}

		var seasonGames []ScheduleGame
		for _, g := range resp.Games {
			if g.GameType != gameType || !g.Completed() {
				continue
			}
			g.Season = season
			g.SeasonDisplay = FormatSeasonDisplay(season)
			seasonGames = append(seasonGames, g)
		}
		sort.Slice(seasonGames, func(i, j int) bool {
			return seasonGames[i].StartTimeUTC.After(seasonGames[j].StartTimeUTC)
		})
		return seasonGames, nil
	})
}

type standingsResponse struct {
	Standings []standingsTeam `json:"standings"`
}

type standingsTeam struct {
	TeamAbbrev       LocalizedName `json:"teamAbbrev"`
	TeamName         LocalizedName `json:"teamName"`
	DivisionName     string        `json:"divisionName"`
	ConferenceName   string        `json:"conferenceName"`
	Wins             int           `json:"wins"`
	Losses           int           `json:"losses"`
	OTLosses         int           `json:"otLosses"`
	Points           int           `json:"points"`
	PointPctg        float64       `json:"pointPctg"`
	GamesPlayed      int           `json:"gamesPlayed"`
	GoalFor          int           `json:"goalFor"`
	GoalAgainst      int           `json:"goalAgainst"`
	GoalDifferential int           `json:"goalDifferential"`
}

// Standings returns the current league standings as plain rows
func (c *Client) Standings() ([]models.StandingsRow, error) {
	var resp standingsResponse
	u := fmt.Sprintf("%s/v1/standings/now", c.baseURL)
	if err := c.getJSON(u, &resp); err != nil {
		return nil, err
	}

	rows := make([]models.StandingsRow, 0, len(resp.Standings))
	for _, t := range resp.Standings {
		rows = append(rows, models.StandingsRow{
			TeamAbbrev:     t.TeamAbbrev.Default,
			TeamName:       t.TeamName.Default,
			DivisionName:   t.DivisionName,
			ConferenceName: t.ConferenceName,
			Wins:           t.Wins,
			Losses:         t.Losses,
			OTLosses:       t.OTLosses,
			Points:         t.Points,
			PointPctg:      t.PointPctg,
		})
	}
	return rows, nil
}

// TeamStats returns the team's current standings line, or nil when the
// team does not appear in the standings.
func (c *Client) TeamStats(abbr string) (*models.TeamStats, error) {
	var resp standingsResponse
	u := fmt.Sprintf("%s/v1/standings/now", c.baseURL)
	if err := c.getJSON(u, &resp); err != nil {
		return nil, err
	}

	for _, t := range resp.Standings {
		if t.TeamAbbrev.Default != abbr {
			continue
		}
		return &models.TeamStats{
			Wins:             t.Wins,
			Losses:           t.Losses,
			OTLosses:         t.OTLosses,
			Points:           t.Points,
			PointPctg:        t.PointPctg,
			GamesPlayed:      t.GamesPlayed,
			GoalsFor:         t.GoalFor,
			GoalsAgainst:     t.GoalAgainst,
			GoalDifferential: t.GoalDifferential,
		}, nil
	}
	return nil, nil
}

// GameLanding is the gamecenter landing payload for a single game.
// Three-stars data shows up under several keys depending on feed vintage;
// all are kept raw and normalized later.
type GameLanding struct {
	Summary struct {
		ThreeStars []json.RawMessage `json:"threeStars"`
	} `json:"summary"`
	ThreeStars []json.RawMessage `json:"threeStars"`
	Boxscore   struct {
		ThreeStars []json.RawMessage `json:"threeStars"`
	} `json:"boxscore"`
}

// GameLanding fetches the gamecenter landing data for a game
func (c *Client) GameLanding(gameID int64) (*GameLanding, error) {
	var landing GameLanding
	u := fmt.Sprintf("%s/v1/gamecenter/%d/landing", c.baseURL, gameID)
	if err := c.getJSON(u, &landing); err != nil {
		return nil, err
	}
	return &landing, nil
}

// searchPlayersURL builds the player search URL for a free-text query
func (c *Client) searchPlayersURL(query string) string {
	return fmt.Sprintf("%s/api/v1/search/player?culture=en-us&limit=50&q=%s", c.searchURL, url.QueryEscape(query))
}
