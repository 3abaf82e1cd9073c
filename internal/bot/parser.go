package bot

import (
	"clanbot/internal/cocapi"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	COMMAND_WAR    = iota
	COMMAND_MVP    = iota
	COMMAND_CWL    = iota
	COMMAND_ROSTER = iota
	COMMAND_PLAYER = iota
)

const (
	PARSEID_OK                     = iota
	PARSEID_COMMAND_NOT_RECOGNISED = iota
	PARSEID_NO_INPUT               = iota
	PARSEID_NOT_A_TAG              = iota
)

var errorMessages map[int]string = map[int]string{
	PARSEID_COMMAND_NOT_RECOGNISED: "Command `%s` not recognised",
	PARSEID_NO_INPUT:               "Command `%s` requires an argument",
	PARSEID_NOT_A_TAG:              "Input `%s` is not a player tag",
}

var commandIds = map[string]int{
	"war":    COMMAND_WAR,
	"mvp":    COMMAND_MVP,
	"cwl":    COMMAND_CWL,
	"roster": COMMAND_ROSTER,
	"player": COMMAND_PLAYER,
}

type ParseResult struct {
	command      int
	parseid      int
	errorMessage string
	arguments    interface{}
}

// Turn the data of a slash command into a command and its arguments
func ParseInteraction(data discordgo.ApplicationCommandInteractionData) ParseResult {

	command, ok := commandIds[data.Name]
	if !ok {
		parseid := PARSEID_COMMAND_NOT_RECOGNISED
		return ParseResult{parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], data.Name)}
	}

	if command != COMMAND_PLAYER {
		return ParseResult{command: command, parseid: PARSEID_OK}
	}

	// player <tag>
	var input string
	for _, option := range data.Options {
		if option.Name == "tag" && option.Type == discordgo.ApplicationCommandOptionString {
			input = option.StringValue()
		}
	}
	if input == "" {
		parseid := PARSEID_NO_INPUT
		return ParseResult{command: command, parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], data.Name)}
	}
	tag := cocapi.NormalizeTag(input)
	if tag == "" {
		parseid := PARSEID_NOT_A_TAG
		return ParseResult{command: command, parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], input)}
	}
	return ParseResult{command: command, parseid: PARSEID_OK, arguments: tag}
}
