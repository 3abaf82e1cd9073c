package bot

import (
	"clanbot/internal/common"
	"clanbot/internal/config"
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Number of interactions answered at the same time
const interactionWorkers = 4

type Bot struct {
	config       *config.Config
	session      *discordgo.Session
	handler      *Handler
	watcher      *Watcher
	scheduler    *common.Scheduler
	interactions chan *discordgo.Interaction
}

func New(cfg *config.Config, api GameAPI) (*Bot, error) {

	// Create session
	discord, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("could not create discord session: %w", err)
	}
	discord.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:       cfg,
		session:      discord,
		handler:      NewHandler(api, discord, cfg.ClanTag),
		watcher:      NewWatcher(api, discord, cfg.ClanTag, cfg.AnnounceChannelID, cfg.ReminderOffset),
		scheduler:    common.NewScheduler(),
		interactions: make(chan *discordgo.Interaction, 64),
	}
	bot.scheduler.Add("war-reminder", cfg.WarPollInterval, bot.watcher.WarReminderTick)
	bot.scheduler.Add("cwl-announcement", cfg.CWLPollInterval, bot.watcher.CWLTick)

	// Event handlers
	discord.AddHandler(bot.receive)
	discord.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Info().Msgf("Logged in as %s (id: %s)", r.User.String(), r.User.ID)
	})

	return bot, nil
}

// Connect, register the commands, and poll until the context ends
func (bot *Bot) Run(ctx context.Context) error {

	// Open session
	if err := bot.session.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer bot.session.Close()

	if err := bot.registerCommands(); err != nil {
		return err
	}

	if bot.config.AnnounceChannelID != "" {
		if err := OnlineMessage().Send(bot.config.AnnounceChannelID, bot.session); err != nil {
			log.Error().Err(err).Msg("Could not send the online notice")
		}
	} else {
		log.Warn().Msg("No announce channel configured, reminders and announcements are disabled")
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return bot.scheduler.Run(ctx)
	})
	for i := 0; i < interactionWorkers; i++ {
		group.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case interaction := <-bot.interactions:
					bot.handler.Handle(ctx, interaction)
				}
			}
		})
	}

	log.Info().Msg("Bot is running")
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("Bot stopped")
	return nil
}

func (bot *Bot) receive(discord *discordgo.Session, interaction *discordgo.InteractionCreate) {
	select {
	case bot.interactions <- interaction.Interaction:
	default:
		log.Warn().Msg("Too many interactions pending, dropping one")
	}
}

// Commands go to the configured guild, or everywhere when there is none
func (bot *Bot) registerCommands() error {

	scope := bot.config.GuildID
	if scope == "" {
		scope = "global"
	}
	created, err := bot.session.ApplicationCommandBulkOverwrite(bot.session.State.User.ID, bot.config.GuildID, Commands)
	if err != nil {
		return fmt.Errorf("could not register commands (%s): %w", scope, err)
	}
	log.Info().Msgf("Registered %d commands (%s)", len(created), scope)
	return nil
}
