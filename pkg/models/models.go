package models

import (
	"fmt"
	"time"
)

// Player represents a resolved NHL player
type Player struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	TeamName string `json:"team_name"`
	Score    int    `json:"score"`
}

// IsGoalie returns true if the player is a goaltender
func (p *Player) IsGoalie() bool {
	return p.Position == "G"
}

// SeasonStatLine holds a single season's (or career's) stat totals for a player.
// Skater and goalie fields share one struct because the upstream feed does.
type SeasonStatLine struct {
	Season       int     `json:"season"`
	GamesPlayed  int     `json:"games_played"`
	Goals        int     `json:"goals"`
	Assists      int     `json:"assists"`
	Points       int     `json:"points"`
	PlusMinus    int     `json:"plus_minus"`
	PIM          int     `json:"pim"`
	Shots        int     `json:"shots"`
	ShootingPctg float64 `json:"shooting_pctg"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	OTLosses     int     `json:"ot_losses"`
	Shutouts     int     `json:"shutouts"`
	GoalsAgainstAvg float64 `json:"goals_against_avg"`
	SavePctg     float64 `json:"save_pctg"`
}

// PlayerSeasonStats is a ranked candidate with their current-season totals
type PlayerSeasonStats struct {
	Player
	Season int            `json:"season"`
	Stats  SeasonStatLine `json:"stats"`
}

// PlayerCareerStats is a ranked candidate with their career regular-season totals
type PlayerCareerStats struct {
	Player
	Active      bool           `json:"active"`
	BirthDate   string         `json:"birth_date"`
	BirthCity   string         `json:"birth_city"`
	BirthCountry string        `json:"birth_country"`
	Stats       SeasonStatLine `json:"stats"`
}

// SkaterTotals holds aggregate stats over a span of skater games
type SkaterTotals struct {
	Games      int    `json:"games"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	Points     int    `json:"points"`
	PlusMinus  int    `json:"plus_minus"`
	PIM        int    `json:"pim"`
	Shots      int    `json:"shots"`
	TOISeconds int    `json:"toi_seconds"`
	ShootingPct string `json:"shooting_pct"`
}

// AvgTOI returns the average time on ice per game as "M:SS", or "N/A"
func (t *SkaterTotals) AvgTOI() string {
	if t.Games == 0 || t.TOISeconds == 0 {
		return "N/A"
	}
	perGame := t.TOISeconds / t.Games
	return fmt.Sprintf("%d:%02d", perGame/60, perGame%60)
}

// GoalieTotals holds aggregate stats over a span of goaltender games
type GoalieTotals struct {
	Games        int    `json:"games"`
	Starts       int    `json:"starts"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	OTLosses     int    `json:"ot_losses"`
	ShotsAgainst int    `json:"shots_against"`
	GoalsAgainst int    `json:"goals_against"`
	Saves        int    `json:"saves"`
	Shutouts     int    `json:"shutouts"`
	TOISeconds   int    `json:"toi_seconds"`
	SavePct      string `json:"save_pct"`
	GAA          string `json:"gaa"`
}

// TeamTotals holds aggregate results over a span of team games
type TeamTotals struct {
	Games        int    `json:"games"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	OTLosses     int    `json:"ot_losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
	GFPerGame    string `json:"gf_per_game"`
	GAPerGame    string `json:"ga_per_game"`
}

// Record returns the aggregate record as "W-L-OTL"
func (t *TeamTotals) Record() string {
	return fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.OTLosses)
}

// TeamStats represents a team's current standings line
type TeamStats struct {
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	OTLosses         int     `json:"ot_losses"`
	Points           int     `json:"points"`
	PointPctg        float64 `json:"point_pctg"`
	GamesPlayed      int     `json:"games_played"`
	GoalsFor         int     `json:"goals_for"`
	GoalsAgainst     int     `json:"goals_against"`
	GoalDifferential int     `json:"goal_differential"`
}

// StandingsRow is one team's row in the league standings
type StandingsRow struct {
	TeamAbbrev     string  `json:"team_abbrev"`
	TeamName       string  `json:"team_name"`
	DivisionName   string  `json:"division_name"`
	ConferenceName string  `json:"conference_name"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	OTLosses       int     `json:"ot_losses"`
	Points         int     `json:"points"`
	PointPctg      float64 `json:"point_pctg"`
}

// RecapVideo is the outcome of the highlight-video search chain.
// Exactly one of Embeddable/Search is set; a nil *RecapVideo means the
// game-details fetch itself failed.
type RecapVideo struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	ChannelTitle string `json:"channel_title,omitempty"`
	PublishedAt  string `json:"published_at,omitempty"`
	SearchQuery  string `json:"search_query,omitempty"`
	Embeddable   bool   `json:"embeddable"`
	Search       bool   `json:"search"`
	NoVideoFound bool   `json:"no_video_found"`
}

// Star is the canonical projection of a three-stars entry
type Star struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

// NewsItem is one entry from the league news RSS feed
type NewsItem struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Published   time.Time `json:"published"`
}

// Injury is one entry from the injuries feed
type Injury struct {
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
	Status     string `json:"status"`
	Comment    string `json:"comment"`
	TeamName   string `json:"team_name"`
}
