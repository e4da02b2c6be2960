package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"nhl-discord-bot/internal/nhl"
	"nhl-discord-bot/pkg/models"
)

const (
	colorInfo    = 0x0099ff
	colorSuccess = 0x2ecc71
	colorError   = 0xe74c3c
	colorNeutral = 0x95a5a6
)

// Discord rejects embed descriptions past 4096 characters; 4000 leaves
// headroom for the closing divider
const maxDescriptionLen = 4000

func truncateDescription(s string) string {
	if len(s) <= maxDescriptionLen {
		return s
	}
	cut := strings.LastIndex(s[:maxDescriptionLen], "\n")
	if cut < 0 {
		cut = maxDescriptionLen
	}
	return s[:cut] + "\n…"
}

// formatCountdown renders a duration as "2d 5h 31m", dropping leading
// zero units. Non-positive durations mean the game has started.
func formatCountdown(d time.Duration) string {
	if d <= 0 {
		return "Game time!"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", minutes))
	return strings.Join(parts, " ")
}

func matchupLine(g *nhl.ScheduleGame) string {
	return fmt.Sprintf("%s @ %s", g.AwayTeam.Abbrev, g.HomeTeam.Abbrev)
}

func (b *Bot) countdownEmbed(abbr, teamName string, game *nhl.ScheduleGame) *discordgo.MessageEmbed {
	until := game.StartTimeUTC.Sub(b.clock.Now())
	venue := "on the road"
	if game.IsHome(abbr) {
		venue = "at home"
	}
	return &discordgo.MessageEmbed{
		Color: colorInfo,
		Title: fmt.Sprintf("⏳ Next %s Game", teamName),
		Description: fmt.Sprintf("**%s**\n%s vs %s %s\n\n**%s**",
			matchupLine(game),
			teamName, nhl.TeamName(game.Opponent(abbr)), venue,
			formatCountdown(until)),
		Footer: &discordgo.MessageEmbedFooter{
			Text: game.StartTimeUTC.Format("Mon Jan 2, 15:04 MST"),
		},
	}
}

func (b *Bot) scheduleEmbed(abbr, teamName string, games []nhl.ScheduleGame) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, g := range games {
		marker := "vs"
		if !g.IsHome(abbr) {
			marker = "@"
		}
		fmt.Fprintf(&sb, "**%s** %s %s — %s\n",
			g.StartTimeUTC.Format("Mon Jan 2"),
			marker,
			nhl.TeamName(g.Opponent(abbr)),
			g.StartTimeUTC.Format("15:04 MST"))
	}
	return &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       fmt.Sprintf("📅 Upcoming %s Games", teamName),
		Description: truncateDescription(sb.String()),
	}
}

func (b *Bot) previousGameEmbed(abbr, teamName string, game *nhl.ScheduleGame) *discordgo.MessageEmbed {
	teamScore, oppScore := game.ScoresFor(abbr)
	result := nhl.TeamGameResult(*game, abbr)
	resultWord := map[string]string{"W": "Win", "L": "Loss", "O": "OT Loss"}[result]
	if resultWord == "" {
		resultWord = "Final"
	}

	overtime := ""
	switch game.GameOutcome.LastPeriodType {
	case "OT":
		overtime = " (OT)"
	case "SO":
		overtime = " (SO)"
	}

	color := colorSuccess
	if result != "W" {
		color = colorError
	}

	return &discordgo.MessageEmbed{
		Color: color,
		Title: fmt.Sprintf("🏒 %s %d - %d %s%s", teamName, teamScore, oppScore, nhl.TeamName(game.Opponent(abbr)), overtime),
		Description: fmt.Sprintf("**%s** on %s\n%s",
			resultWord,
			game.StartTimeUTC.Format("Monday, January 2"),
			matchupLine(game)),
	}
}

func starsField(details *nhl.GameLanding) *discordgo.MessageEmbedField {
	if details == nil {
		return nil
	}
	stars := details.Stars()
	if len(stars) == 0 {
		return nil
	}
	var lines []string
	medals := []string{"⭐", "⭐⭐", "⭐⭐⭐"}
	for i, s := range stars {
		medal := "⭐"
		if i < len(medals) {
			medal = medals[i]
		}
		line := fmt.Sprintf("%s %s", medal, s.Name)
		if s.Team != "" {
			line += fmt.Sprintf(" (%s)", s.Team)
		}
		lines = append(lines, line)
	}
	return &discordgo.MessageEmbedField{Name: "Three Stars", Value: strings.Join(lines, "\n")}
}

func (b *Bot) recapEmbed(abbr, teamName string, recap *nhl.GameRecap) *discordgo.MessageEmbed {
	game := recap.Game
	teamScore, oppScore := game.ScoresFor(abbr)

	embed := &discordgo.MessageEmbed{
		Color: colorInfo,
		Title: fmt.Sprintf("🎬 Recap: %s %d - %d %s", teamName, teamScore, oppScore, nhl.TeamName(game.Opponent(abbr))),
		Description: fmt.Sprintf("%s — %s",
			matchupLine(game),
			game.StartTimeUTC.Format("Monday, January 2")),
	}
	if f := starsField(recap.Details); f != nil {
		embed.Fields = append(embed.Fields, f)
	}

	v := recap.Video
	switch {
	case v == nil:
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Highlights",
			Value: fmt.Sprintf("Game details are unavailable right now. Try <https://www.nhl.com/gamecenter/%d>", game.ID),
		})
	case v.Embeddable:
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Highlights",
			Value: fmt.Sprintf("**%s**\n%s", v.Title, v.ChannelTitle),
		})
		if v.Thumbnail != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: v.Thumbnail}
		}
	case v.Search:
		name := "Highlights"
		if v.NoVideoFound {
			name = "No recap video found yet"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: fmt.Sprintf("[Search YouTube for the recap](%s)", v.URL),
		})
	}
	return embed
}

func (b *Bot) teamStatsEmbed(teamName string, stats *models.TeamStats) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: colorInfo,
		Title: fmt.Sprintf("📊 %s Season Stats", teamName),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Record", Value: fmt.Sprintf("%d-%d-%d", stats.Wins, stats.Losses, stats.OTLosses), Inline: true},
			{Name: "Points", Value: fmt.Sprintf("%d", stats.Points), Inline: true},
			{Name: "Points %", Value: fmt.Sprintf("%.3f", stats.PointPctg), Inline: true},
			{Name: "Games Played", Value: fmt.Sprintf("%d", stats.GamesPlayed), Inline: true},
			{Name: "Goals For", Value: fmt.Sprintf("%d", stats.GoalsFor), Inline: true},
			{Name: "Goals Against", Value: fmt.Sprintf("%d", stats.GoalsAgainst), Inline: true},
			{Name: "Goal Differential", Value: fmt.Sprintf("%+d", stats.GoalDifferential), Inline: true},
		},
	}
}

func skaterSeasonLine(s models.SeasonStatLine) string {
	return fmt.Sprintf("GP %d | G %d | A %d | P %d | +/- %+d | PIM %d | S %d | S%% %.1f",
		s.GamesPlayed, s.Goals, s.Assists, s.Points, s.PlusMinus, s.PIM, s.Shots, s.ShootingPctg*100)
}

func goalieSeasonLine(s models.SeasonStatLine) string {
	return fmt.Sprintf("GP %d | W %d | L %d | OTL %d | SO %d | GAA %.2f | SV%% %.3f",
		s.GamesPlayed, s.Wins, s.Losses, s.OTLosses, s.Shutouts, s.GoalsAgainstAvg, s.SavePctg)
}

func playerHeading(p models.Player) string {
	team := p.TeamName
	if team == "" {
		team = p.Team
	}
	if team == "" {
		return fmt.Sprintf("%s (%s)", p.Name, p.Position)
	}
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.Position, team)
}

func (b *Bot) playerStatsEmbed(query string, players []models.PlayerSeasonStats) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color: colorInfo,
		Title: fmt.Sprintf("🏒 Player Stats: %q", query),
	}
	for _, p := range players {
		line := skaterSeasonLine(p.Stats)
		if p.IsGoalie() {
			line = goalieSeasonLine(p.Stats)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  playerHeading(p.Player),
			Value: fmt.Sprintf("%s\n%s", nhl.FormatSeasonDisplay(p.Season), line),
		})
	}
	return embed
}

func (b *Bot) careerStatsEmbed(query string, players []models.PlayerCareerStats) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color: colorInfo,
		Title: fmt.Sprintf("🏒 Career Stats: %q", query),
	}
	for _, p := range players {
		line := skaterSeasonLine(p.Stats)
		if p.IsGoalie() {
			line = goalieSeasonLine(p.Stats)
		}
		status := "Active"
		if !p.Active {
			status = "Retired"
		}
		origin := p.BirthCity
		if p.BirthCountry != "" {
			origin += ", " + p.BirthCountry
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  playerHeading(p.Player),
			Value: fmt.Sprintf("%s | Born %s (%s)\n%s", status, p.BirthDate, origin, line),
		})
	}
	return embed
}

func standingsLine(rank int, row models.StandingsRow, highlight string) string {
	marker := "  "
	if row.TeamAbbrev == highlight {
		marker = "➤ "
	}
	return fmt.Sprintf("%s%2d. %-4s %3d pts (%d-%d-%d)",
		marker, rank, row.TeamAbbrev, row.Points, row.Wins, row.Losses, row.OTLosses)
}

func standingsBlock(rows []models.StandingsRow, start int, highlight string) string {
	var sb strings.Builder
	sb.WriteString("```\n")
	for i, row := range rows {
		sb.WriteString(standingsLine(start+i, row, highlight))
		sb.WriteString("\n")
	}
	sb.WriteString("```")
	return sb.String()
}

func filterRows(rows []models.StandingsRow, keep func(models.StandingsRow) bool) []models.StandingsRow {
	var out []models.StandingsRow
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func (b *Bot) divisionStandingsEmbed(abbr, division string, rows []models.StandingsRow) *discordgo.MessageEmbed {
	divRows := filterRows(rows, func(r models.StandingsRow) bool { return r.DivisionName == division })
	return &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       fmt.Sprintf("🏆 %s Division", division),
		Description: standingsBlock(divRows, 1, abbr),
	}
}

func (b *Bot) conferenceStandingsEmbeds(abbr, teamName, conference string, rows []models.StandingsRow) []*discordgo.MessageEmbed {
	confRows := filterRows(rows, func(r models.StandingsRow) bool { return r.ConferenceName == conference })
	top, bottom := splitRows(confRows, 8)

	embeds := []*discordgo.MessageEmbed{{
		Color:       colorInfo,
		Title:       fmt.Sprintf("🏆 %s Conference (1-8)", conference),
		Description: standingsBlock(top, 1, abbr),
	}}
	if len(bottom) > 0 {
		embeds = append(embeds, &discordgo.MessageEmbed{
			Color:       colorInfo,
			Title:       fmt.Sprintf("🏆 %s Conference (9-%d)", conference, len(confRows)),
			Description: standingsBlock(bottom, 9, abbr),
		})
	}
	return embeds
}

func (b *Bot) leagueStandingsEmbeds(highlight string, rows []models.StandingsRow) []*discordgo.MessageEmbed {
	top, bottom := splitRows(rows, 16)

	embeds := []*discordgo.MessageEmbed{{
		Color:       colorInfo,
		Title:       "🏆 League Standings (1-16)",
		Description: standingsBlock(top, 1, highlight),
	}}
	if len(bottom) > 0 {
		embeds = append(embeds, &discordgo.MessageEmbed{
			Color:       colorInfo,
			Title:       fmt.Sprintf("🏆 League Standings (17-%d)", len(rows)),
			Description: standingsBlock(bottom, 17, highlight),
		})
	}
	return embeds
}

func splitRows(rows []models.StandingsRow, at int) ([]models.StandingsRow, []models.StandingsRow) {
	if len(rows) <= at {
		return rows, nil
	}
	return rows[:at], rows[at:]
}

func (b *Bot) injuriesEmbed(teamName string, injuries []models.Injury) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color: colorError,
		Title: fmt.Sprintf("🏥 %s Injuries", teamName),
	}
	for _, inj := range injuries {
		text := inj.Status
		if inj.Comment != "" {
			text = fmt.Sprintf("%s\n%s", inj.Status, inj.Comment)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%s)", inj.PlayerName, inj.Position),
			Value: text,
		})
	}
	return embed
}

func (b *Bot) injurySearchEmbed(query string, matches []models.Injury) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Color: colorError,
		Title: fmt.Sprintf("🏥 Injury Report: %q", query),
	}
	for _, inj := range matches {
		text := fmt.Sprintf("%s — %s", inj.TeamName, inj.Status)
		if inj.Comment != "" {
			text += "\n" + inj.Comment
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%s)", inj.PlayerName, inj.Position),
			Value: text,
		})
	}
	return embed
}

const maxNewsItems = 8

func (b *Bot) newsEmbed(title string, items []models.NewsItem) *discordgo.MessageEmbed {
	if len(items) > maxNewsItems {
		items = items[:maxNewsItems]
	}
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "**[%s](%s)**\n", item.Title, item.Link)
		if item.Description != "" {
			fmt.Fprintf(&sb, "%s\n", item.Description)
		}
		fmt.Fprintf(&sb, "*%s*\n\n", item.Published.Format("Jan 2, 15:04"))
	}
	return &discordgo.MessageEmbed{
		Color:       colorNeutral,
		Title:       title,
		Description: truncateDescription(sb.String()),
	}
}

func seasonDivider(display string, playoffs bool) string {
	label := "Regular Season"
	if playoffs {
		label = "Playoffs"
	}
	return fmt.Sprintf("── %s %s ──", display, label)
}

func (b *Bot) teamPastGamesEmbed(abbr, teamName string, games []nhl.ScheduleGame, n int, playoffs bool) *discordgo.MessageEmbed {
	var sb strings.Builder
	lastSeason := ""
	for _, g := range games {
		if g.SeasonDisplay != lastSeason {
			fmt.Fprintf(&sb, "%s\n", seasonDivider(g.SeasonDisplay, playoffs))
			lastSeason = g.SeasonDisplay
		}
		teamScore, oppScore := g.ScoresFor(abbr)
		marker := "vs"
		if !g.IsHome(abbr) {
			marker = "@"
		}
		fmt.Fprintf(&sb, "**%s** %s %s %s %d-%d\n",
			nhl.TeamGameResult(g, abbr),
			g.StartTimeUTC.Format("Jan 2"),
			marker, g.Opponent(abbr),
			teamScore, oppScore)
	}

	totals := nhl.AggregateTeamGames(games, abbr)
	embed := &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       fmt.Sprintf("🏒 %s — Last %d %s Games", teamName, len(games), titleGameType(playoffs)),
		Description: truncateDescription(sb.String()),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Record", Value: totals.Record(), Inline: true},
			{Name: "GF/G", Value: totals.GFPerGame, Inline: true},
			{Name: "GA/G", Value: totals.GAPerGame, Inline: true},
			{Name: "Goal Diff", Value: fmt.Sprintf("%+d", totals.GoalDiff), Inline: true},
		},
	}
	if len(games) < n {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Only %d of the requested %d games were available", len(games), n),
		}
	}
	return embed
}

func (b *Bot) playerPastGamesEmbed(player *models.Player, games []nhl.GameLogEntry, n int, playoffs bool) *discordgo.MessageEmbed {
	var sb strings.Builder
	lastSeason := ""
	for _, g := range games {
		if g.SeasonDisplay != lastSeason {
			fmt.Fprintf(&sb, "%s\n", seasonDivider(g.SeasonDisplay, playoffs))
			lastSeason = g.SeasonDisplay
		}
		marker := "vs"
		if g.HomeRoadFlag == "R" {
			marker = "@"
		}
		if player.IsGoalie() {
			fmt.Fprintf(&sb, "**%s** %s %s %s — %d/%d saves\n",
				nhl.GoalieGameResult(g), g.GameDate, marker, g.OpponentAbbrev,
				g.ShotsAgainst-g.GoalsAgainst, g.ShotsAgainst)
		} else {
			fmt.Fprintf(&sb, "%s %s %s — %dG %dA %dP\n",
				g.GameDate, marker, g.OpponentAbbrev,
				g.Goals, g.Assists, g.Goals+g.Assists)
		}
	}

	embed := &discordgo.MessageEmbed{
		Color:       colorInfo,
		Title:       fmt.Sprintf("🏒 %s — Last %d %s Games", player.Name, len(games), titleGameType(playoffs)),
		Description: truncateDescription(sb.String()),
	}

	if player.IsGoalie() {
		t := nhl.AggregateGoalieGames(games)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Record", Value: fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.OTLosses), Inline: true},
			{Name: "SV%", Value: t.SavePct, Inline: true},
			{Name: "GAA", Value: t.GAA, Inline: true},
			{Name: "Saves", Value: fmt.Sprintf("%d/%d", t.Saves, t.ShotsAgainst), Inline: true},
			{Name: "Shutouts", Value: fmt.Sprintf("%d", t.Shutouts), Inline: true},
			{Name: "Starts", Value: fmt.Sprintf("%d/%d", t.Starts, t.Games), Inline: true},
		}
	} else {
		t := nhl.AggregateSkaterGames(games)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Points", Value: fmt.Sprintf("%dG %dA %dP", t.Goals, t.Assists, t.Points), Inline: true},
			{Name: "+/-", Value: fmt.Sprintf("%+d", t.PlusMinus), Inline: true},
			{Name: "Shooting", Value: fmt.Sprintf("%d shots (%s%%)", t.Shots, t.ShootingPct), Inline: true},
			{Name: "PIM", Value: fmt.Sprintf("%d", t.PIM), Inline: true},
			{Name: "Avg TOI", Value: t.AvgTOI(), Inline: true},
		}
	}

	if len(games) < n {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Only %d of the requested %d games were available", len(games), n),
		}
	}
	return embed
}

func titleGameType(playoffs bool) string {
	if playoffs {
		return "Playoff"
	}
	return "Regular Season"
}
