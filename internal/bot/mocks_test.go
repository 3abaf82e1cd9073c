package bot

import (
	"clanbot/internal/cocapi"
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// MockGameAPI is a mock implementation of GameAPI
type MockGameAPI struct {
	mock.Mock
}

func (m *MockGameAPI) GetClan(ctx context.Context, tag string) (cocapi.Clan, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(cocapi.Clan), args.Error(1)
}

func (m *MockGameAPI) GetCurrentWar(ctx context.Context, tag string) (*cocapi.War, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cocapi.War), args.Error(1)
}

func (m *MockGameAPI) GetWarLog(ctx context.Context, tag string) ([]cocapi.WarLogEntry, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cocapi.WarLogEntry), args.Error(1)
}

func (m *MockGameAPI) GetLeagueGroup(ctx context.Context, tag string) (*cocapi.LeagueGroup, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cocapi.LeagueGroup), args.Error(1)
}

func (m *MockGameAPI) GetPlayer(ctx context.Context, tag string) (cocapi.Player, error) {
	args := m.Called(ctx, tag)
	return args.Get(0).(cocapi.Player), args.Error(1)
}

// MockMessenger is a mock implementation of Messenger
type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *MockMessenger) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, embed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}

func (m *MockMessenger) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	args := m.Called(interaction, resp)
	return args.Error(0)
}

func (m *MockMessenger) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(interaction, wait, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*discordgo.Message), args.Error(1)
}
