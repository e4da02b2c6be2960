package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"nhl-discord-bot/internal/config"
	"nhl-discord-bot/internal/espn"
	"nhl-discord-bot/internal/news"
	"nhl-discord-bot/internal/nhl"
	"nhl-discord-bot/internal/youtube"
)

// handlerFunc is one prefix command. A returned error is caught at the
// dispatch boundary; handlers reply directly for expected outcomes like
// unrecognized teams.
type handlerFunc func(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error

// Bot represents the Discord bot
type Bot struct {
	discord  *discordgo.Session
	config   *config.Config
	nhl      *nhl.Client
	injuries *espn.Client
	news     *news.Client
	clock    clockwork.Clock
	commands map[string]handlerFunc
}

// New creates a new Discord bot instance
func New(cfg *config.Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	clock := clockwork.NewRealClock()

	bot := &Bot{
		discord:  dg,
		config:   cfg,
		nhl:      nhl.NewClient(cfg.NHLAPIBaseURL, cfg.PlayerSearchBaseURL, youtube.NewClient(cfg.YouTubeAPIKey), clock),
		injuries: espn.NewClient(cfg.InjuriesFeedURL, cfg.InjuriesCacheTTL, clock),
		news:     news.NewClient(cfg.NewsFeedBaseURL, cfg.NewsCacheTTL, clock),
		clock:    clock,
	}
	bot.commands = bot.commandRegistry()

	dg.AddHandler(bot.messageCreate)

	return bot, nil
}

// commandRegistry maps command names to their handlers
func (b *Bot) commandRegistry() map[string]handlerFunc {
	return map[string]handlerFunc{
		// Help
		"commands": b.handleHelp,
		"help":     b.handleHelp,

		// Countdown & schedule
		"countdown":     b.handleCountdown,
		"countdownsite": b.handleCountdownSite,
		"schedule":      b.handleSchedule,

		// Game info
		"previousgame": b.handlePreviousGame,
		"recap":        b.handleRecap,

		// Team stats
		"stats": b.handleTeamStats,

		// Player stats
		"playerstats": b.handlePlayerStats,
		"careerstats": b.handleCareerStats,

		// Standings
		"divisionstandings":   b.handleDivisionStandings,
		"conferencestandings": b.handleConferenceStandings,
		"leaguestandings":     b.handleLeagueStandings,

		// Injuries
		"injuries": b.handleInjuries,
		"injury":   b.handleInjury,

		// News
		"news": b.handleNews,

		// Team past games
		"teampast5":  b.pastGamesHandler(b.handleTeamPastGames, 5),
		"teampast10": b.pastGamesHandler(b.handleTeamPastGames, 10),
		"teampast20": b.pastGamesHandler(b.handleTeamPastGames, 20),

		// Player past games
		"playerpast5":  b.pastGamesHandler(b.handlePlayerPastGames, 5),
		"playerpast10": b.pastGamesHandler(b.handlePlayerPastGames, 10),
		"playerpast20": b.pastGamesHandler(b.handlePlayerPastGames, 20),
	}
}

// pastGamesHandler binds a game count into a past-games handler
func (b *Bot) pastGamesHandler(h func(s *discordgo.Session, m *discordgo.MessageCreate, args []string, n int) error, n int) handlerFunc {
	return func(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error {
		return h(s, m, args, n)
	}
}

// Start starts the Discord bot
func (b *Bot) Start() error {
	if err := b.discord.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	log.Info().Int("commands", len(b.commands)).Str("prefix", b.config.BotPrefix).Msg("Discord bot is now running")
	return nil
}

// Stop stops the Discord bot
func (b *Bot) Stop() {
	b.discord.Close()
}

// messageCreate routes prefix commands to their handlers. Handler errors
// never escape: the user gets a generic apology and the cause is logged.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, b.config.BotPrefix) {
		return
	}

	args := strings.Fields(strings.TrimPrefix(m.Content, b.config.BotPrefix))
	if len(args) == 0 {
		return
	}
	command := strings.ToLower(args[0])

	handler, ok := b.commands[command]
	if !ok {
		return
	}

	if err := handler(s, m, args); err != nil {
		log.Error().Err(err).Str("command", command).Msg("command failed")
		b.reply(s, m, "Sorry, there was an error processing your request. Please try again later.")
	}
}

// reply sends a plain text reply to the triggering message
func (b *Bot) reply(s *discordgo.Session, m *discordgo.MessageCreate, content string) {
	if _, err := s.ChannelMessageSendReply(m.ChannelID, content, m.Reference()); err != nil {
		log.Warn().Err(err).Msg("failed to send reply")
	}
}

// replyEmbeds sends one or more embeds as a reply
func (b *Bot) replyEmbeds(s *discordgo.Session, m *discordgo.MessageCreate, embeds ...*discordgo.MessageEmbed) {
	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:    embeds,
		Reference: m.Reference(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to send embed reply")
	}
}

// resolveTeamArg resolves a team argument, replying to the user when the
// team is not recognized. The bool result is false when the caller
// should stop.
func (b *Bot) resolveTeamArg(s *discordgo.Session, m *discordgo.MessageCreate, input, usageExample string) (string, string, bool) {
	if input == "" {
		b.reply(s, m, fmt.Sprintf("Please specify a team! Example: `%s`", usageExample))
		return "", "", false
	}

	abbr := nhl.TeamAbbr(input)
	if abbr == "" {
		b.reply(s, m, fmt.Sprintf("Sorry, I don't recognize the team %q. Use `%scommands` to see supported teams.", input, b.config.BotPrefix))
		return "", "", false
	}
	return abbr, nhl.TeamName(abbr), true
}

// splitPlayoffsFlag strips a trailing "playoffs" token from command
// arguments, returning the remaining joined query and whether the flag
// was present.
func splitPlayoffsFlag(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	if strings.EqualFold(args[len(args)-1], "playoffs") {
		return strings.Join(args[:len(args)-1], " "), true
	}
	return strings.Join(args, " "), false
}
