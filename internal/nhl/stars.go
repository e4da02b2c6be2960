package nhl

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"nhl-discord-bot/pkg/models"
)

// starRecord covers the shapes three-stars entries have been observed in:
// a flat record with a localized or plain name, a nested player record,
// or split first/last name fields. Unknown shapes normalize to nothing.
type starRecord struct {
	Name      flexibleName `json:"name"`
	FirstName flexibleName `json:"firstName"`
	LastName  flexibleName `json:"lastName"`

	TeamAbbrev       string `json:"teamAbbrev"`
	TeamAbbreviation string `json:"teamAbbreviation"`
	Team             struct {
		Abbrev string `json:"abbrev"`
	} `json:"team"`

	Player *starRecord `json:"player"`
}

// flexibleName accepts either a bare JSON string or {"default": "..."}
type flexibleName struct {
	Value string
}

func (n *flexibleName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n.Value = s
		return nil
	}
	var localized LocalizedName
	if err := json.Unmarshal(data, &localized); err == nil {
		n.Value = localized.Default
		return nil
	}
	// Unrecognized name shape; leave empty rather than failing the record
	return nil
}

// Stars extracts and normalizes the game's three stars, trying the known
// locations in the landing payload in order.
func (l *GameLanding) Stars() []models.Star {
	raw := l.Summary.ThreeStars
	if len(raw) == 0 {
		raw = l.ThreeStars
	}
	if len(raw) == 0 {
		raw = l.Boxscore.ThreeStars
	}

	var stars []models.Star
	for _, entry := range raw {
		star, ok := normalizeStar(entry)
		if !ok {
			log.Warn().RawJSON("entry", entry).Msg("unrecognized three-stars shape")
			continue
		}
		stars = append(stars, star)
	}
	return stars
}

// normalizeStar projects one raw three-stars entry onto the canonical
// {name, team} record. A bare string is taken as a name with no team.
func normalizeStar(entry json.RawMessage) (models.Star, bool) {
	var plain string
	if err := json.Unmarshal(entry, &plain); err == nil {
		if plain == "" {
			return models.Star{}, false
		}
		return models.Star{Name: plain}, true
	}

	var rec starRecord
	if err := json.Unmarshal(entry, &rec); err != nil {
		return models.Star{}, false
	}

	name := rec.displayName()
	if name == "" {
		return models.Star{}, false
	}

	abbrev := rec.teamAbbreviation()
	team := TeamName(abbrev)
	if team == "" {
		team = abbrev
	}
	return models.Star{Name: name, Team: team}, true
}

func (r *starRecord) displayName() string {
	if r.Name.Value != "" {
		return r.Name.Value
	}
	if r.FirstName.Value != "" && r.LastName.Value != "" {
		return r.FirstName.Value + " " + r.LastName.Value
	}
	if r.Player != nil {
		return r.Player.displayName()
	}
	return ""
}

func (r *starRecord) teamAbbreviation() string {
	switch {
	case r.TeamAbbrev != "":
		return r.TeamAbbrev
	case r.Team.Abbrev != "":
		return r.Team.Abbrev
	case r.TeamAbbreviation != "":
		return r.TeamAbbreviation
	case r.Player != nil:
		return r.Player.teamAbbreviation()
	}
	return ""
}
