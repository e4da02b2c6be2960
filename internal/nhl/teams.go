package nhl

import "strings"

// Team is one entry in the static team table. Abbreviation is the
// canonical 3-letter key; aliases are matched case-insensitively.
type Team struct {
	Abbreviation   string
	Name           string
	Aliases        []string
	SearchKeywords []string
	RSSSlug        string
}

// teams is loaded once and immutable for the process lifetime
var teams = map[string]Team{
	"ANA": {"ANA", "Anaheim Ducks", []string{"ana", "anaheim", "ducks"}, []string{"ducks", "anaheim"}, "anaheim-ducks"},
	"BOS": {"BOS", "Boston Bruins", []string{"bos", "boston", "bruins"}, []string{"bruins", "boston"}, "boston-bruins"},
	"BUF": {"BUF", "Buffalo Sabres", []string{"buf", "buffalo", "sabres"}, []string{"sabres", "buffalo"}, "buffalo-sabres"},
	"CGY": {"CGY", "Calgary Flames", []string{"cgy", "calgary", "flames"}, []string{"flames", "calgary"}, "calgary-flames"},
	"CAR": {"CAR", "Carolina Hurricanes", []string{"car", "carolina", "hurricanes", "canes"}, []string{"hurricanes", "carolina", "canes"}, "carolina-hurricanes"},
	"CHI": {"CHI", "Chicago Blackhawks", []string{"chi", "chicago", "blackhawks", "hawks"}, []string{"blackhawks", "chicago"}, "chicago-blackhawks"},
	"COL": {"COL", "Colorado Avalanche", []string{"col", "colorado", "avalanche", "avs"}, []string{"avalanche", "colorado", "avs"}, "colorado-avalanche"},
	"CBJ": {"CBJ", "Columbus Blue Jackets", []string{"cbj", "columbus", "blue jackets", "jackets"}, []string{"blue jackets", "columbus"}, "columbus-blue-jackets"},
	"DAL": {"DAL", "Dallas Stars", []string{"dal", "dallas", "stars"}, []string{"stars", "dallas"}, "dallas-stars"},
	"DET": {"DET", "Detroit Red Wings", []string{"det", "detroit", "red wings", "wings"}, []string{"red wings", "detroit"}, "detroit-red-wings"},
	"EDM": {"EDM", "Edmonton Oilers", []string{"edm", "edmonton", "oilers"}, []string{"oilers", "edmonton"}, "edmonton-oilers"},
	"FLA": {"FLA", "Florida Panthers", []string{"fla", "florida", "panthers"}, []string{"panthers", "florida"}, "florida-panthers"},
	"LAK": {"LAK", "Los Angeles Kings", []string{"lak", "la", "los angeles", "kings"}, []string{"kings", "los angeles"}, "los-angeles-kings"},
	"MIN": {"MIN", "Minnesota Wild", []string{"min", "minnesota", "wild"}, []string{"wild", "minnesota"}, "minnesota-wild"},
	"MTL": {"MTL", "Montreal Canadiens", []string{"mtl", "montreal", "canadiens", "habs"}, []string{"canadiens", "montreal", "habs"}, "montreal-canadiens"},
	"NSH": {"NSH", "Nashville Predators", []string{"nsh", "nashville", "predators", "preds"}, []string{"predators", "nashville", "preds"}, "nashville-predators"},
	"NJD": {"NJD", "New Jersey Devils", []string{"njd", "nj", "new jersey", "devils"}, []string{"devils", "new jersey"}, "new-jersey-devils"},
	"NYI": {"NYI", "New York Islanders", []string{"nyi", "islanders", "isles"}, []string{"islanders", "isles"}, "new-york-islanders"},
	"NYR": {"NYR", "New York Rangers", []string{"nyr", "rangers"}, []string{"rangers"}, "new-york-rangers"},
	"OTT": {"OTT", "Ottawa Senators", []string{"ott", "ottawa", "senators", "sens"}, []string{"senators", "ottawa", "sens"}, "ottawa-senators"},
	"PHI": {"PHI", "Philadelphia Flyers", []string{"phi", "philadelphia", "philly", "flyers"}, []string{"flyers", "philadelphia"}, "philadelphia-flyers"},
	"PIT": {"PIT", "Pittsburgh Penguins", []string{"pit", "pittsburgh", "penguins", "pens"}, []string{"penguins", "pittsburgh", "pens"}, "pittsburgh-penguins"},
	"SEA": {"SEA", "Seattle Kraken", []string{"sea", "seattle", "kraken"}, []string{"kraken", "seattle"}, "seattle-kraken"},
	"SJS": {"SJS", "San Jose Sharks", []string{"sjs", "sj", "san jose", "sharks"}, []string{"sharks", "san jose"}, "san-jose-sharks"},
	"STL": {"STL", "St. Louis Blues", []string{"stl", "st louis", "st. louis", "blues"}, []string{"blues", "st. louis", "st louis"}, "st-louis-blues"},
	"TBL": {"TBL", "Tampa Bay Lightning", []string{"tbl", "tb", "tampa", "tampa bay", "lightning", "bolts"}, []string{"lightning", "tampa bay", "bolts"}, "tampa-bay-lightning"},
	"TOR": {"TOR", "Toronto Maple Leafs", []string{"tor", "toronto", "maple leafs", "leafs"}, []string{"maple leafs", "toronto", "leafs"}, "toronto-maple-leafs"},
	"UTA": {"UTA", "Utah Mammoth", []string{"uta", "utah", "mammoth"}, []string{"mammoth", "utah"}, "utah-mammoth"},
	"VAN": {"VAN", "Vancouver Canucks", []string{"van", "vancouver", "canucks", "nucks"}, []string{"canucks", "vancouver"}, "vancouver-canucks"},
	"VGK": {"VGK", "Vegas Golden Knights", []string{"vgk", "vegas", "las vegas", "golden knights", "knights"}, []string{"golden knights", "vegas"}, "vegas-golden-knights"},
	"WPG": {"WPG", "Winnipeg Jets", []string{"wpg", "winnipeg", "jets"}, []string{"jets", "winnipeg"}, "winnipeg-jets"},
	"WSH": {"WSH", "Washington Capitals", []string{"wsh", "washington", "capitals", "caps"}, []string{"capitals", "washington", "caps"}, "washington-capitals"},
}

// TeamAbbr resolves free-text team input to a canonical abbreviation.
// Exact abbreviation keys win; otherwise full names and aliases are
// scanned for an exact case-insensitive match. Returns "" when the input
// is not recognized. There is no partial matching for teams.
func TeamAbbr(input string) string {
	upper := strings.ToUpper(strings.TrimSpace(input))
	if _, ok := teams[upper]; ok {
		return upper
	}

	lower := strings.ToLower(strings.TrimSpace(input))
	for abbr, team := range teams {
		if strings.ToLower(team.Name) == lower {
			return abbr
		}
		for _, alias := range team.Aliases {
			if alias == lower {
				return abbr
			}
		}
	}
	return ""
}

// TeamName returns the canonical team name for an abbreviation, or ""
func TeamName(abbr string) string {
	return teams[abbr].Name
}

// KnownTeam reports whether abbr is a current NHL team abbreviation
func KnownTeam(abbr string) bool {
	_, ok := teams[abbr]
	return ok
}

// TeamSearchKeywords returns the keywords used to filter news headlines
func TeamSearchKeywords(abbr string) []string {
	return teams[abbr].SearchKeywords
}

// TeamRSSSlug returns the team's news category slug, or "" if none
func TeamRSSSlug(abbr string) string {
	return teams[abbr].RSSSlug
}
