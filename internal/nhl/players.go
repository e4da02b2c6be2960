package nhl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"nhl-discord-bot/pkg/models"
)

// How many ranked candidates get a concurrent landing fetch before the
// results are joined and re-ranked
const (
	maxStatsFetch  = 8
	maxCareerFetch = 10
	maxResults     = 5
)

// searchPlayer is one record from the player search feed
type searchPlayer struct {
	PlayerID   int    `json:"playerId,string"`
	Name       string `json:"name"`
	TeamAbbrev string `json:"teamAbbrev"`
	Active     bool   `json:"active"`
}

// candidate is a search record with its computed match score
type candidate struct {
	searchPlayer
	score     int
	activeNHL bool
}

// playerLanding is the player landing payload
type playerLanding struct {
	Position          string                  `json:"position"`
	CurrentTeamAbbrev string                  `json:"currentTeamAbbrev"`
	BirthDate         string                  `json:"birthDate"`
	BirthCity         LocalizedName           `json:"birthCity"`
	BirthCountry      string                  `json:"birthCountry"`
	SeasonTotals      []landingSeasonTotal    `json:"seasonTotals"`
	CareerTotals      struct {
		RegularSeason landingSeasonTotal `json:"regularSeason"`
	} `json:"careerTotals"`
}

type landingSeasonTotal struct {
	Season          int     `json:"season"`
	LeagueAbbrev    string  `json:"leagueAbbrev"`
	GamesPlayed     int     `json:"gamesPlayed"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Points          int     `json:"points"`
	PlusMinus       int     `json:"plusMinus"`
	PIM             int     `json:"pim"`
	Shots           int     `json:"shots"`
	ShootingPctg    float64 `json:"shootingPctg"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	OTLosses        int     `json:"otLosses"`
	Shutouts        int     `json:"shutouts"`
	GoalsAgainstAvg float64 `json:"goalsAgainstAvg"`
	SavePctg        float64 `json:"savePctg"`
}

func (t landingSeasonTotal) toStatLine() models.SeasonStatLine {
	return models.SeasonStatLine{
		Season:          t.Season,
		GamesPlayed:     t.GamesPlayed,
		Goals:           t.Goals,
		Assists:         t.Assists,
		Points:          t.Points,
		PlusMinus:       t.PlusMinus,
		PIM:             t.PIM,
		Shots:           t.Shots,
		ShootingPctg:    t.ShootingPctg,
		Wins:            t.Wins,
		Losses:          t.Losses,
		OTLosses:        t.OTLosses,
		Shutouts:        t.Shutouts,
		GoalsAgainstAvg: t.GoalsAgainstAvg,
		SavePctg:        t.SavePctg,
	}
}

// nhlSeasonTotal finds the NHL totals for a specific season, or nil
func (l *playerLanding) nhlSeasonTotal(season int) *landingSeasonTotal {
	for i := range l.SeasonTotals {
		if l.SeasonTotals[i].Season == season && l.SeasonTotals[i].LeagueAbbrev == "NHL" {
			return &l.SeasonTotals[i]
		}
	}
	return nil
}

// hasNHLCareer reports whether the player has ever played an NHL season
func (l *playerLanding) hasNHLCareer() bool {
	for _, s := range l.SeasonTotals {
		if s.LeagueAbbrev == "NHL" {
			return true
		}
	}
	return false
}

// playerLanding fetches a player's landing data by id
func (c *Client) playerLanding(playerID int) (*playerLanding, error) {
	var landing playerLanding
	u := fmt.Sprintf("%s/v1/player/%d/landing", c.baseURL, playerID)
	if err := c.getJSON(u, &landing); err != nil {
		return nil, err
	}
	return &landing, nil
}

// searchCandidates runs the search feed and scores every record against
// the query. activeOnly drops players who are not on a current NHL
// roster. Results are sorted by descending score; the stable sort keeps
// the feed's order for exact ties.
func (c *Client) searchCandidates(query string, activeOnly bool) ([]candidate, error) {
	var players []searchPlayer
	if err := c.getJSON(c.searchPlayersURL(query), &players); err != nil {
		return nil, err
	}

	queryParts := strings.Fields(strings.TrimSpace(query))

	var candidates []candidate
	for _, p := range players {
		activeNHL := p.Active && p.TeamAbbrev != "" && KnownTeam(p.TeamAbbrev)
		if activeOnly && !activeNHL {
			continue
		}
		score := ScorePlayerMatch(p.Name, queryParts)
		if score == 0 {
			continue
		}
		candidates = append(candidates, candidate{searchPlayer: p, score: score, activeNHL: activeNHL})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	return candidates, nil
}

// SearchPlayer resolves a free-text query to the single best-matching
// active NHL player, verified against their landing data. Returns nil
// when nothing matches.
func (c *Client) SearchPlayer(query string) (*models.Player, error) {
	candidates, err := c.searchCandidates(query, true)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	best := candidates[0]
	landing, err := c.playerLanding(best.PlayerID)
	if err != nil {
		return nil, err
	}

	player := &models.Player{
		PlayerID: best.PlayerID,
		Name:     best.Name,
		Position: landing.Position,
		Team:     landing.CurrentTeamAbbrev,
		TeamName: TeamName(landing.CurrentTeamAbbrev),
		Score:    best.score,
	}
	return player, nil
}

// PlayerStats resolves a query to up to five ranked players with their
// current-season NHL totals. A full-name query whose top candidate scores
// confidently short-circuits to a single result; otherwise the top
// candidates' landing data is fetched concurrently and joined.
func (c *Client) PlayerStats(query string) ([]models.PlayerSeasonStats, error) {
	candidates, err := c.searchCandidates(query, true)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	fullNameQuery := len(strings.Fields(query)) > 1
	season := CurrentSeason(c.clock)

	if fullNameQuery && candidates[0].score >= ScoreConfident {
		if result := c.seasonStatsFor(candidates[0], season); result != nil {
			return []models.PlayerSeasonStats{*result}, nil
		}
	}

	toFetch := candidates
	if len(toFetch) > maxStatsFetch {
		toFetch = toFetch[:maxStatsFetch]
	}

	results := make([]*models.PlayerSeasonStats, len(toFetch))
	var g errgroup.Group
	for i, cand := range toFetch {
		i, cand := i, cand
		g.Go(func() error {
			results[i] = c.seasonStatsFor(cand, season)
			return nil
		})
	}
	g.Wait()

	var stats []models.PlayerSeasonStats
	for _, r := range results {
		if r != nil {
			stats = append(stats, *r)
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Score > stats[j].Score
	})
	if len(stats) > maxResults {
		stats = stats[:maxResults]
	}
	return stats, nil
}

// seasonStatsFor fetches one candidate's landing data and projects their
// totals for the given season. A fetch failure or a missing NHL season
// yields nil so the caller can skip the candidate and continue.
func (c *Client) seasonStatsFor(cand candidate, season int) *models.PlayerSeasonStats {
	landing, err := c.playerLanding(cand.PlayerID)
	if err != nil {
		log.Warn().Err(err).Int("player_id", cand.PlayerID).Msg("failed to fetch player landing")
		return nil
	}

	total := landing.nhlSeasonTotal(season)
	if total == nil {
		return nil
	}

	return &models.PlayerSeasonStats{
		Player: models.Player{
			PlayerID: cand.PlayerID,
			Name:     cand.Name,
			Position: landing.Position,
			Team:     landing.CurrentTeamAbbrev,
			TeamName: TeamName(landing.CurrentTeamAbbrev),
			Score:    cand.score,
		},
		Season: season,
		Stats:  total.toStatLine(),
	}
}

// PlayerCareerStats resolves a query to up to five ranked players with
// their career regular-season NHL totals. Retired players are included;
// active NHL players sort ahead of them at equal scores.
func (c *Client) PlayerCareerStats(query string) ([]models.PlayerCareerStats, error) {
	candidates, err := c.searchCandidates(query, false)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].activeNHL != candidates[j].activeNHL {
			return candidates[i].activeNHL
		}
		return candidates[i].score > candidates[j].score
	})

	fullNameQuery := len(strings.Fields(query)) > 1
	if fullNameQuery && candidates[0].score >= ScoreConfident {
		if result := c.careerStatsFor(candidates[0]); result != nil {
			return []models.PlayerCareerStats{*result}, nil
		}
	}

	toFetch := candidates
	if len(toFetch) > maxCareerFetch {
		toFetch = toFetch[:maxCareerFetch]
	}

	results := make([]*models.PlayerCareerStats, len(toFetch))
	var g errgroup.Group
	for i, cand := range toFetch {
		i, cand := i, cand
		g.Go(func() error {
			results[i] = c.careerStatsFor(cand)
			return nil
		})
	}
	g.Wait()

	var stats []models.PlayerCareerStats
	for _, r := range results {
		if r != nil {
			stats = append(stats, *r)
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Active != stats[j].Active {
			return stats[i].Active
		}
		return stats[i].Score > stats[j].Score
	})
	if len(stats) > maxResults {
		stats = stats[:maxResults]
	}
	return stats, nil
}

// careerStatsFor fetches one candidate's landing data and projects their
// career totals. Nil on fetch failure or when the player never reached
// the NHL.
func (c *Client) careerStatsFor(cand candidate) *models.PlayerCareerStats {
	landing, err := c.playerLanding(cand.PlayerID)
	if err != nil {
		log.Warn().Err(err).Int("player_id", cand.PlayerID).Msg("failed to fetch player landing")
		return nil
	}
	if !landing.hasNHLCareer() {
		return nil
	}

	career := landing.CareerTotals.RegularSeason
	if career.GamesPlayed == 0 {
		return nil
	}

	return &models.PlayerCareerStats{
		Player: models.Player{
			PlayerID: cand.PlayerID,
			Name:     cand.Name,
			Position: landing.Position,
			Team:     landing.CurrentTeamAbbrev,
			TeamName: TeamName(landing.CurrentTeamAbbrev),
			Score:    cand.score,
		},
		Active:       cand.activeNHL,
		BirthDate:    landing.BirthDate,
		BirthCity:    landing.BirthCity.Default,
		BirthCountry: landing.BirthCountry,
		Stats:        career.toStatLine(),
	}
}

// GameLogEntry is one game from the player game-log feed. Season and
// SeasonDisplay are stamped by the season walker.
type GameLogEntry struct {
	GameDate       string  `json:"gameDate"`
	OpponentAbbrev string  `json:"opponentAbbrev"`
	HomeRoadFlag   string  `json:"homeRoadFlag"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	Points         int     `json:"points"`
	PlusMinus      int     `json:"plusMinus"`
	PIM            int     `json:"pim"`
	Shots          int     `json:"shots"`
	TOI            string  `json:"toi"`
	GamesStarted   int     `json:"gamesStarted"`
	Decision       string  `json:"decision"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	OTLosses       int     `json:"otLosses"`
	ShotsAgainst   int     `json:"shotsAgainst"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	SavePctg       float64 `json:"savePctg"`
	Shutouts       int     `json:"shutouts"`
	Season         int     `json:"-"`
	SeasonDisplay  string  `json:"-"`
}

type gameLogResponse struct {
	GameLog []GameLogEntry `json:"gameLog"`
}

// PlayerPastGames collects the player's last n games of the given type,
// walking backward through seasons. The game-log feed already orders a
// season's games most recent first.
func (c *Client) PlayerPastGames(playerID, n int, playoffs bool) []GameLogEntry {
	gameType := GameTypeRegular
	if playoffs {
		gameType = GameTypePlayoff
	}

	return collectPastGames(c.clock, playoffs, n, func(season int) ([]GameLogEntry, error) {
		var resp gameLogResponse
		u := fmt.Sprintf("%s/v1/player/%d/game-log/%d/%d", c.baseURL, playerID, season, gameType)
		if err := c.getJSON(u, &resp); err != nil {
			return nil, err
		}

		games := resp.GameLog
		for i := range games {
			games[i].Season = season
			games[i].SeasonDisplay = FormatSeasonDisplay(season)
		}
		return games, nil
	})
}
