package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"nhl-discord-bot/internal/espn"
	"nhl-discord-bot/internal/news"
	"nhl-discord-bot/internal/nhl"
	"nhl-discord-bot/pkg/models"
)

func (b *Bot) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	p := b.config.BotPrefix
	embed := &discordgo.MessageEmbed{
		Color: colorInfo,
		Title: "🏒 NHL Bot Commands",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Games", Value: fmt.Sprintf("`%scountdown <team>` time until the next game\n`%sschedule <team>` upcoming games\n`%sprevious game <team>` last result\n`%srecap <team>` video recap of the last game\n`%scountdownsite` live countdown website", p, p, p, p, p)},
			{Name: "Teams", Value: fmt.Sprintf("`%sstats <team>` season record\n`%steampast5|10|20 <team> [playoffs]` recent games with totals\n`%sdivisionstandings <team>`, `%sconferencestandings <team>`, `%sleaguestandings [team]`", p, p, p, p, p)},
			{Name: "Players", Value: fmt.Sprintf("`%splayerstats <name>` current season stats\n`%scareerstats <name>` career totals\n`%splayerpast5|10|20 <name> [playoffs]` recent games with totals", p, p, p)},
			{Name: "League", Value: fmt.Sprintf("`%sinjuries <team>` team injury report\n`%sinjury <name>` search a player's injury status\n`%snews [team]` latest headlines", p, p, p)},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Teams can be named by city, nickname, or abbreviation (pens, pittsburgh, PIT)"},
	}
	b.replyEmbeds(s, m, embed)
	return nil
}

func (b *Bot) handleCountdown(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	abbr, teamName, ok := b.resolveTeamArg(s, m, teamQuery(args), b.config.BotPrefix+"countdown pen")
	if !ok {
		return nil
	}

	game, err := b.nhl.NextGame(abbr)
	if err != nil {
		return err
	}
	if game == nil {
		b.reply(s, m, fmt.Sprintf("No upcoming games found for the %s.", teamName))
		return nil
	}

	b.replyEmbeds(s, m, b.countdownEmbed(abbr, teamName, game))
	return nil
}

const countdownSiteURL = "https://tomcourt89.github.io/NHL-Countdown/"

func (b *Bot) handleCountdownSite(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	b.replyEmbeds(s, m, &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       "🏒 NHL Countdown Website",
		Description: "Check out the NHL Countdown website for live countdowns to all upcoming games!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🌐 Website", Value: fmt.Sprintf("[NHL Countdown](%s)", countdownSiteURL)},
		},
	})
	if _, err := s.ChannelMessageSend(m.ChannelID, countdownSiteURL); err != nil {
		log.Warn().Err(err).Msg("failed to send site link")
	}
	return nil
}

func (b *Bot) handleSchedule(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	abbr, teamName, ok := b.resolveTeamArg(s, m, teamQuery(args), b.config.BotPrefix+"schedule pen")
	if !ok {
		return nil
	}

	games, err := b.nhl.UpcomingGames(abbr, 5)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		b.reply(s, m, fmt.Sprintf("No upcoming games found for the %s.", teamName))
		return nil
	}

	b.replyEmbeds(s, m, b.scheduleEmbed(abbr, teamName, games))
	return nil
}

func (b *Bot) handlePreviousGame(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	abbr, teamName, ok := b.resolveTeamArg(s, m, teamQuery(args), b.config.BotPrefix+"previousgame pen")
	if !ok {
		return nil
	}

	game, err := b.nhl.PreviousGame(abbr)
	if err != nil {
		return err
	}
	if game == nil {
		b.reply(s, m, fmt.Sprintf("No recent games found for the %s.", teamName))
		return nil
	}

	b.replyEmbeds(s, m, b.previousGameEmbed(abbr, teamName, game))
	return nil
}

func (b *Bot) handleRecap(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	abbr, teamName, ok := b.resolveTeamArg(s, m, teamQuery(args), b.config.BotPrefix+"recap pen")
	if !ok {
		return nil
	}

	recap, err := b.nhl.GameRecap(abbr)
	if err != nil {
		return err
	}
	if recap == nil {
		b.reply(s, m, fmt.Sprintf("No recent games found for the %s.", teamName))
		return nil
	}

	embed := b.recapEmbed(abbr, teamName, recap)
	b.replyEmbeds(s, m, embed)

	// An embeddable video link is sent as a bare message so Discord
	// renders the player inline
	if recap.Video != nil && recap.Video.Embeddable {
		if _, err := s.ChannelMessageSend(m.ChannelID, recap.Video.URL); err != nil {
			log.Warn().Err(err).Msg("failed to send video link")
		}
	}
	return nil
}

func (b *Bot) handleTeamStats(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	abbr, teamName, ok := b.resolveTeamArg(s, m, teamQuery(args), b.config.BotPrefix+"stats pen")
	if !ok {
		return nil
	}

	stats, err := b.nhl.TeamStats(abbr)
	if err != nil {
		return err
	}
	if stats == nil {
		b.reply(s, m, fmt.Sprintf("No stats found for the %s.", teamName))
		return nil
	}

	b.replyEmbeds(s, m, b.teamStatsEmbed(teamName, stats))
	return nil
}

func (b *Bot) handlePlayerStats(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	query := strings.Join(args[1:], " ")
	if query == "" {
		b.reply(s, m, fmt.Sprintf("Please specify a player name! Example: `%splayerstats mcdavid`", b.config.BotPrefix))
		return nil
	}

	players, err := b.nhl.PlayerStats(query)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		b.reply(s, m, fmt.Sprintf("No active NHL player found matching %q.", query))
		return nil
	}

	b.replyEmbeds(s, m, b.playerStatsEmbed(query, players))
	return nil
}

func (b *Bot) handleCareerStats(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	query := strings.Join(args[1:], " ")
	if query == "" {
		b.reply(s, m, fmt.Sprintf("Please specify a player name! Example: `%scareerstats jagr`", b.config.BotPrefix))
		return nil
	}

	players, err := b.nhl.PlayerCareerStats(query)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		b.reply(s, m, fmt.Sprintf("No NHL player found matching %q.", query))
		return nil
	}

	b.replyEmbeds(s, m, b.careerStatsEmbed(query, players))
	return nil
}

func (b *Bot) handleDivisionStandings(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	abbr, _, ok := b.resolveTeamArg(s, m, teamQuery(args), b.config.BotPrefix+"divisionstandings pen")
	if !ok {
		return nil
	}

	rows, err := b.nhl.Standings()
	if err != nil {
		return err
	}

	division := divisionFor(rows, abbr)
	if division == "" {
		b.reply(s, m, "Could not find division standings.")
		return nil
	}

	b.replyEmbeds(s, m, b.divisionStandingsEmbed(abbr, division, rows))
	return nil
}

func (b *Bot) handleConferenceStandings(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	abbr, teamName, ok := b.resolveTeamArg(s, m, teamQuery(args), b.config.BotPrefix+"conferencestandings pen")
	if !ok {
		return nil
	}

	rows, err := b.nhl.Standings()
	if err != nil {
		return err
	}

	conference := conferenceFor(rows, abbr)
	if conference == "" {
		b.reply(s, m, "Could not find conference standings.")
		return nil
	}

	b.replyEmbeds(s, m, b.conferenceStandingsEmbeds(abbr, teamName, conference, rows)...)
	return nil
}

func (b *Bot) handleLeagueStandings(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	rows, err := b.nhl.Standings()
	if err != nil {
		return err
	}

	highlight := ""
	if input := teamQuery(args); input != "" {
		highlight = nhl.TeamAbbr(input)
		if highlight == "" {
			b.reply(s, m, fmt.Sprintf("Sorry, I don't recognize the team %q. Showing full standings without highlighting.", input))
		}
	}

	b.replyEmbeds(s, m, b.leagueStandingsEmbeds(highlight, rows)...)
	return nil
}

func (b *Bot) handleInjuries(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	_, teamName, ok := b.resolveTeamArg(s, m, teamQuery(args), b.config.BotPrefix+"injuries pen")
	if !ok {
		return nil
	}

	feed, err := b.injuries.Injuries()
	if err != nil {
		return err
	}

	injuries := espn.TeamInjuriesFor(feed, teamName)
	if len(injuries) == 0 {
		b.reply(s, m, fmt.Sprintf("No injuries reported for the %s. 🎉", teamName))
		return nil
	}

	b.replyEmbeds(s, m, b.injuriesEmbed(teamName, injuries))
	return nil
}

func (b *Bot) handleInjury(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	query := strings.Join(args[1:], " ")
	if query == "" {
		b.reply(s, m, fmt.Sprintf("Please specify a player name! Example: `%sinjury crosby`", b.config.BotPrefix))
		return nil
	}

	feed, err := b.injuries.Injuries()
	if err != nil {
		return err
	}

	matches := espn.SearchPlayerInjury(feed, query)
	if len(matches) == 0 {
		b.reply(s, m, fmt.Sprintf("No injury report found for %q.", query))
		return nil
	}

	b.replyEmbeds(s, m, b.injurySearchEmbed(query, matches))
	return nil
}

func (b *Bot) handleNews(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
	input := teamQuery(args)

	if input == "" {
		items, err := b.news.LeagueNews()
		if err != nil {
			return err
		}
		b.replyEmbeds(s, m, b.newsEmbed("🏒 NHL News", items))
		return nil
	}

	abbr, teamName, ok := b.resolveTeamArg(s, m, input, b.config.BotPrefix+"news pen")
	if !ok {
		return nil
	}

	// The team category feed is preferred; keyword filtering of the
	// cached league feed is the fallback when the fetch fails
	items, err := b.news.TeamNews(nhl.TeamRSSSlug(abbr))
	if err != nil || len(items) == 0 {
		if err != nil {
			log.Warn().Err(err).Str("team", abbr).Msg("team news feed failed, falling back to league feed")
		}
		league, err := b.news.LeagueNews()
		if err != nil {
			return err
		}
		items = news.FilterForTeam(league, nhl.TeamSearchKeywords(abbr))
	}

	if len(items) == 0 {
		b.reply(s, m, fmt.Sprintf("No recent news found for the %s.", teamName))
		return nil
	}
	b.replyEmbeds(s, m, b.newsEmbed(fmt.Sprintf("🏒 %s News", teamName), items))
	return nil
}

func (b *Bot) handleTeamPastGames(s *discordgo.Session, m *discordgo.MessageCreate, args []string, n int) error {
	teamArg, playoffs := splitPlayoffsFlag(args[1:])
	example := fmt.Sprintf("%steampast%d pen", b.config.BotPrefix, n)
	abbr, teamName, ok := b.resolveTeamArg(s, m, teamArg, example)
	if !ok {
		return nil
	}

	games := b.nhl.TeamPastGames(abbr, n, playoffs)
	if len(games) == 0 {
		b.reply(s, m, fmt.Sprintf("No recent %s games found for the %s.", gameTypeText(playoffs), teamName))
		return nil
	}

	b.replyEmbeds(s, m, b.teamPastGamesEmbed(abbr, teamName, games, n, playoffs))
	return nil
}

func (b *Bot) handlePlayerPastGames(s *discordgo.Session, m *discordgo.MessageCreate, args []string, n int) error {
	query, playoffs := splitPlayoffsFlag(args[1:])
	if query == "" {
		b.reply(s, m, fmt.Sprintf("Please specify a player name! Example: `%splayerpast%d crosby`", b.config.BotPrefix, n))
		return nil
	}

	player, err := b.nhl.SearchPlayer(query)
	if err != nil {
		return err
	}
	if player == nil {
		b.reply(s, m, fmt.Sprintf("No active NHL player found matching %q.", query))
		return nil
	}

	games := b.nhl.PlayerPastGames(player.PlayerID, n, playoffs)
	if len(games) == 0 {
		b.reply(s, m, fmt.Sprintf("No recent %s games found for %s.", gameTypeText(playoffs), player.Name))
		return nil
	}

	b.replyEmbeds(s, m, b.playerPastGamesEmbed(player, games, n, playoffs))
	return nil
}

// teamQuery joins everything after the command name so multi-word team
// names like "new york rangers" resolve
func teamQuery(args []string) string {
	return strings.Join(args[1:], " ")
}

func gameTypeText(playoffs bool) string {
	if playoffs {
		return "playoff"
	}
	return "regular season"
}

func divisionFor(rows []models.StandingsRow, abbr string) string {
	for _, row := range rows {
		if row.TeamAbbrev == abbr {
			return row.DivisionName
		}
	}
	return ""
}

func conferenceFor(rows []models.StandingsRow, abbr string) string {
	for _, row := range rows {
		if row.TeamAbbrev == abbr {
			return row.ConferenceName
		}
	}
	return ""
}
