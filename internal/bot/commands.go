package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Slash commands registered at startup
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "war",
		Description: "Show current war status",
	},
	{
		Name:        "mvp",
		Description: "Show MVP of last war",
	},
	{
		Name:        "cwl",
		Description: "Show CWL status",
	},
	{
		Name:        "roster",
		Description: "Show clan roster",
	},
	{
		Name:        "player",
		Description: "Get player stats by tag (include #)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tag",
				Description: "Player tag, include #",
				Required:    true,
			},
		},
	},
}

// Handler answers slash commands. It never touches the poll state
type Handler struct {
	api       GameAPI
	messenger Messenger
	clanTag   string
	now       func() time.Time
}

func NewHandler(api GameAPI, messenger Messenger, clanTag string) *Handler {
	return &Handler{api: api, messenger: messenger, clanTag: clanTag, now: time.Now}
}

func (handler *Handler) Handle(ctx context.Context, interaction *discordgo.Interaction) {

	if interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}

	logger := log.With().Str("interaction", uuid.NewString()).Logger()
	ctx = logger.WithContext(ctx)

	data := interaction.ApplicationCommandData()
	logger.Info().Msgf("Received command %s", data.Name)

	// Wrong input is answered right away, without calling the game API
	parseResult := ParseInteraction(data)
	if parseResult.parseid != PARSEID_OK {
		logger.Info().Msgf("Wrong input: %s", parseResult.errorMessage)
		err := handler.messenger.InteractionRespond(interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: InputNotValid(parseResult.errorMessage),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			logger.Error().Err(err).Msg("Could not respond to the interaction")
		}
		return
	}

	// Acknowledge first, the game API may be slower than the interaction timeout
	err := handler.messenger.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Could not defer the interaction")
		return
	}

	responses, err := handler.run(ctx, parseResult)
	if err != nil {
		logger.Error().Err(err).Msgf("Command %s failed", data.Name)
		responses = GenericFailure()
	}
	for _, response := range responses {
		if err := response.Followup(interaction, handler.messenger); err != nil {
			logger.Error().Err(err).Msg("Could not send the follow-up")
		}
	}
}

func (handler *Handler) run(ctx context.Context, parseResult ParseResult) ([]Response, error) {
	switch parseResult.command {
	case COMMAND_WAR:
		return handler.war(ctx)
	case COMMAND_MVP:
		return handler.mvp(ctx)
	case COMMAND_CWL:
		return handler.cwl(ctx)
	case COMMAND_ROSTER:
		return handler.roster(ctx)
	case COMMAND_PLAYER:
		tag, ok := parseResult.arguments.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected type of player tag %T", parseResult.arguments)
		}
		return handler.player(ctx, tag)
	default:
		return nil, fmt.Errorf("command %d is not one of the possible ones", parseResult.command)
	}
}

func (handler *Handler) war(ctx context.Context) ([]Response, error) {

	war, err := handler.api.GetCurrentWar(ctx, handler.clanTag)
	if err != nil {
		return nil, err
	}
	return []Response{WarEmbed(war, handler.now())}, nil
}

func (handler *Handler) mvp(ctx context.Context) ([]Response, error) {

	warlog, err := handler.api.GetWarLog(ctx, handler.clanTag)
	if err != nil {
		return nil, err
	}
	if len(warlog) == 0 {
		return NoWarLog(), nil
	}

	last := warlog[0]
	best, ok := MVP(last)
	if !ok {
		return NoMemberData(), nil
	}
	zerolog.Ctx(ctx).Debug().Msgf("MVP of the last war is %s", best.Name)
	return []Response{MVPEmbed(last, best, handler.now())}, nil
}

func (handler *Handler) cwl(ctx context.Context) ([]Response, error) {

	group, err := handler.api.GetLeagueGroup(ctx, handler.clanTag)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return NotInLeague(), nil
	}
	return []Response{CWLEmbed("CWL Info", *group, handler.now())}, nil
}

func (handler *Handler) roster(ctx context.Context) ([]Response, error) {

	clan, err := handler.api.GetClan(ctx, handler.clanTag)
	if err != nil {
		return nil, err
	}
	return []Response{RosterEmbed(clan, handler.now())}, nil
}

func (handler *Handler) player(ctx context.Context, tag string) ([]Response, error) {

	player, err := handler.api.GetPlayer(ctx, tag)
	if err != nil {
		return nil, err
	}
	return []Response{PlayerEmbed(player, handler.now())}, nil
}
