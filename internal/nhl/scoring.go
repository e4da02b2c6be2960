package nhl

import "strings"

// Match score tiers. Callers treat >= ScoreConfident as a single
// confident match and anything in (0, ScoreConfident) as ambiguous.
const (
	ScoreExact     = 100
	ScoreConfident = 80
)

// ScorePlayerMatch ranks how well a player's full name matches the query
// tokens. Surname is the dominant signal: multi-token queries must match
// the candidate's last name token or they score 0, which keeps a shared
// first name ("connor") from pulling in the wrong player.
//
// Tiers: 100 exact full name; 80 surname plus every query token matching
// some name token; 40 surname only; 70 exact surname on a single-token
// query; 50 partial surname; 20 first-name fallback; 0 no match.
func ScorePlayerMatch(playerName string, queryParts []string) int {
	nameLower := strings.ToLower(playerName)
	nameParts := strings.Fields(nameLower)
	if len(nameParts) == 0 || len(queryParts) == 0 {
		return 0
	}

	queryLower := make([]string, len(queryParts))
	for i, part := range queryParts {
		queryLower[i] = strings.ToLower(part)
	}

	if nameLower == strings.Join(queryLower, " ") {
		return ScoreExact
	}

	querySurname := queryLower[len(queryLower)-1]
	playerSurname := nameParts[len(nameParts)-1]
	surnameMatches := playerSurname == querySurname ||
		strings.Contains(playerSurname, querySurname) ||
		strings.Contains(querySurname, playerSurname)

	// Full-name search: surname is a mandatory gate
	if len(queryLower) > 1 {
		if !surnameMatches {
			return 0
		}

		allPartsMatch := true
		for _, qPart := range queryLower {
			if !anyTokenMatches(nameParts, qPart) {
				allPartsMatch = false
				break
			}
		}
		if allPartsMatch {
			return 80
		}
		return 40
	}

	// Surname-only search
	if surnameMatches {
		if playerSurname == querySurname {
			return 70
		}
		return 50
	}

	// Single token that matches a first or middle name
	if anyTokenMatches(nameParts, querySurname) {
		return 20
	}

	return 0
}

func anyTokenMatches(nameParts []string, query string) bool {
	for _, part := range nameParts {
		if strings.Contains(part, query) || strings.Contains(query, part) {
			return true
		}
	}
	return false
}
