package bot

import (
	"github.com/bwmarrin/discordgo"
)

type ResponseString struct {
	string
}
type ResponseEmbed struct {
	discordgo.MessageEmbed
}

// A response can be posted to a channel or as the follow-up of a deferred interaction
type Response interface {
	Send(channelid string, messenger Messenger) error
	Followup(interaction *discordgo.Interaction, messenger Messenger) error
}

func (response ResponseString) Send(channelid string, messenger Messenger) error {
	_, err := messenger.ChannelMessageSend(channelid, response.string)
	return err
}

func (response ResponseString) Followup(interaction *discordgo.Interaction, messenger Messenger) error {
	_, err := messenger.FollowupMessageCreate(interaction, false, &discordgo.WebhookParams{Content: response.string})
	return err
}

func (response ResponseEmbed) Send(channelid string, messenger Messenger) error {
	_, err := messenger.ChannelMessageSendEmbed(channelid, &response.MessageEmbed)
	return err
}

func (response ResponseEmbed) Followup(interaction *discordgo.Interaction, messenger Messenger) error {
	_, err := messenger.FollowupMessageCreate(interaction, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{&response.MessageEmbed},
	})
	return err
}
