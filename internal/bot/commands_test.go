package bot

import (
	"clanbot/internal/cocapi"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func commandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:   "interaction-id",
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: name, Options: options},
	}
}

func tagOption(value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "tag",
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func newTestHandler(api GameAPI, messenger Messenger) *Handler {
	handler := NewHandler(api, messenger, testClanTag)
	handler.now = func() time.Time { return testNow }
	return handler
}

func isDeferred(resp *discordgo.InteractionResponse) bool {
	return resp.Type == discordgo.InteractionResponseDeferredChannelMessageWithSource
}

func followupEmbed(title string) interface{} {
	return mock.MatchedBy(func(params *discordgo.WebhookParams) bool {
		return len(params.Embeds) == 1 && params.Embeds[0].Title == title
	})
}

func followupContent(content string) interface{} {
	return mock.MatchedBy(func(params *discordgo.WebhookParams) bool {
		return params.Content == content
	})
}

func TestHandle_Commands(t *testing.T) {
	testCases := []struct {
		name     string
		command  *discordgo.Interaction
		setup    func(api *MockGameAPI)
		expected interface{}
	}{
		{
			name:    "war",
			command: commandInteraction("war"),
			setup: func(api *MockGameAPI) {
				api.On("GetCurrentWar", mock.Anything, testClanTag).Return(warEndingIn(time.Hour), nil)
			},
			expected: followupEmbed("Current War"),
		},
		{
			name:    "roster",
			command: commandInteraction("roster"),
			setup: func(api *MockGameAPI) {
				api.On("GetClan", mock.Anything, testClanTag).Return(cocapi.Clan{Name: "Warriors"}, nil)
			},
			expected: followupEmbed("Warriors | Roster"),
		},
		{
			name:    "cwl",
			command: commandInteraction("cwl"),
			setup: func(api *MockGameAPI) {
				api.On("GetLeagueGroup", mock.Anything, testClanTag).Return(leagueGroup("inWar", 2), nil)
			},
			expected: followupEmbed("CWL Info"),
		},
		{
			name:    "cwl outside a league",
			command: commandInteraction("cwl"),
			setup: func(api *MockGameAPI) {
				api.On("GetLeagueGroup", mock.Anything, testClanTag).Return(nil, nil)
			},
			expected: followupContent("Clan is not in a CWL right now."),
		},
		{
			name:    "mvp",
			command: commandInteraction("mvp"),
			setup: func(api *MockGameAPI) {
				api.On("GetWarLog", mock.Anything, testClanTag).Return([]cocapi.WarLogEntry{
					{Clan: cocapi.WarClan{Members: []cocapi.WarMember{{Name: "Chief", Stars: 3, Destruction: 100}}}},
				}, nil)
			},
			expected: followupEmbed("MVP | Last War"),
		},
		{
			name:    "mvp with empty war log",
			command: commandInteraction("mvp"),
			setup: func(api *MockGameAPI) {
				api.On("GetWarLog", mock.Anything, testClanTag).Return([]cocapi.WarLogEntry{}, nil)
			},
			expected: followupContent("No warlog found."),
		},
		{
			name:    "mvp without member data",
			command: commandInteraction("mvp"),
			setup: func(api *MockGameAPI) {
				api.On("GetWarLog", mock.Anything, testClanTag).Return([]cocapi.WarLogEntry{{Result: "win"}}, nil)
			},
			expected: followupContent("No member data for the last war."),
		},
		{
			name:    "player",
			command: commandInteraction("player", tagOption("#p0lq")),
			setup: func(api *MockGameAPI) {
				api.On("GetPlayer", mock.Anything, "#P0LQ").Return(cocapi.Player{Name: "Chief"}, nil)
			},
			expected: followupEmbed("Chief"),
		},
		{
			name:    "api failure",
			command: commandInteraction("roster"),
			setup: func(api *MockGameAPI) {
				api.On("GetClan", mock.Anything, testClanTag).Return(cocapi.Clan{}, errors.New("403 Access denied"))
			},
			expected: followupContent("Something went wrong while talking to the Clash of Clans API."),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockAPI := new(MockGameAPI)
			mockMessenger := new(MockMessenger)
			tc.setup(mockAPI)
			mockMessenger.On("InteractionRespond", tc.command, mock.MatchedBy(isDeferred)).Return(nil).Once()
			mockMessenger.On("FollowupMessageCreate", tc.command, false, tc.expected).Return(&discordgo.Message{}, nil).Once()

			newTestHandler(mockAPI, mockMessenger).Handle(context.Background(), tc.command)

			mockAPI.AssertExpectations(t)
			mockMessenger.AssertExpectations(t)
		})
	}
}

func TestHandle_WrongInputSkipsTheAPI(t *testing.T) {
	mockAPI := new(MockGameAPI)
	mockMessenger := new(MockMessenger)
	command := commandInteraction("player", tagOption("!!!"))

	mockMessenger.On("InteractionRespond", command, mock.MatchedBy(func(resp *discordgo.InteractionResponse) bool {
		return resp.Type == discordgo.InteractionResponseChannelMessageWithSource &&
			resp.Data.Flags == discordgo.MessageFlagsEphemeral &&
			resp.Data.Content == InputNotValid("Input `!!!` is not a player tag")
	})).Return(nil).Once()

	newTestHandler(mockAPI, mockMessenger).Handle(context.Background(), command)

	mockMessenger.AssertExpectations(t)
	mockAPI.AssertNotCalled(t, "GetPlayer", mock.Anything, mock.Anything)
}

func TestHandle_DeferFailureStops(t *testing.T) {
	mockAPI := new(MockGameAPI)
	mockMessenger := new(MockMessenger)
	command := commandInteraction("war")

	mockMessenger.On("InteractionRespond", command, mock.Anything).Return(errors.New("unknown interaction"))

	newTestHandler(mockAPI, mockMessenger).Handle(context.Background(), command)

	mockAPI.AssertNotCalled(t, "GetCurrentWar", mock.Anything, mock.Anything)
	mockMessenger.AssertNotCalled(t, "FollowupMessageCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_IgnoresOtherInteractions(t *testing.T) {
	mockAPI := new(MockGameAPI)
	mockMessenger := new(MockMessenger)

	newTestHandler(mockAPI, mockMessenger).Handle(context.Background(), &discordgo.Interaction{Type: discordgo.InteractionMessageComponent})

	mockMessenger.AssertNotCalled(t, "InteractionRespond", mock.Anything, mock.Anything)
}

func TestCommandsRegistered(t *testing.T) {
	names := []string{}
	for _, command := range Commands {
		names = append(names, command.Name)
	}
	assert.ElementsMatch(t, []string{"war", "mvp", "cwl", "roster", "player"}, names)
	assert.True(t, Commands[4].Options[0].Required)
}
