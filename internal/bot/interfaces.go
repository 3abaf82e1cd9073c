package bot

import (
	"clanbot/internal/cocapi"
	"context"

	"github.com/bwmarrin/discordgo"
)

// GameAPI is the part of the game API client the bot uses
type GameAPI interface {
	GetClan(ctx context.Context, tag string) (cocapi.Clan, error)
	GetCurrentWar(ctx context.Context, tag string) (*cocapi.War, error)
	GetWarLog(ctx context.Context, tag string) ([]cocapi.WarLogEntry, error)
	GetLeagueGroup(ctx context.Context, tag string) (*cocapi.LeagueGroup, error)
	GetPlayer(ctx context.Context, tag string) (cocapi.Player, error)
}

// Messenger is the part of the discord session used to talk back to users.
// *discordgo.Session implements it
type Messenger interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}
