package bot

import (
	"clanbot/internal/cocapi"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Use "gold" color for the bot
const color int = 0xF1C40F

// Discord limits
const maxFieldValue = 1024
const maxRosterMembers = 25

func newEmbed(title string, description string, now time.Time) discordgo.MessageEmbed {
	return discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}
}

func field(name string, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}

func RosterEmbed(clan cocapi.Clan, now time.Time) Response {

	embed := newEmbed(fmt.Sprintf("%s | Roster", clan.Name), fmt.Sprintf("Tag: %s", clan.Tag), now)

	members := clan.Members
	if len(members) > maxRosterMembers {
		members = members[:maxRosterMembers]
	}
	var builder strings.Builder
	for _, member := range members {
		line := fmt.Sprintf("%s - %s - TH%d\n", member.Name, member.Role, member.TownHallLevel)
		if builder.Len()+len(line) > maxFieldValue {
			break
		}
		builder.WriteString(line)
	}
	value := builder.String()
	if value == "" {
		value = "No data"
	}
	embed.Fields = append(embed.Fields, field("Top members", value, false))
	return ResponseEmbed{embed}
}

func PlayerEmbed(player cocapi.Player, now time.Time) Response {

	embed := newEmbed(player.Name, fmt.Sprintf("Tag: %s", player.Tag), now)
	embed.Fields = append(embed.Fields,
		field("Town Hall", strconv.Itoa(player.TownHallLevel), true),
		field("Trophies", strconv.Itoa(player.Trophies), true),
		field("Best Trophies", strconv.Itoa(player.BestTrophies), true),
	)
	return ResponseEmbed{embed}
}

func WarEmbed(war *cocapi.War, now time.Time) Response {

	embed := newEmbed("Current War", "", now)
	if war == nil {
		embed.Description = "Not in war"
		return ResponseEmbed{embed}
	}
	embed.Fields = append(embed.Fields,
		field("State", war.State.String(), true),
		field("Team Size", strconv.Itoa(war.TeamSize), true),
	)
	if war.Opponent != nil {
		embed.Fields = append(embed.Fields, field("Opponent", war.Opponent.Name, true))
	}
	embed.Fields = append(embed.Fields, field("Ends at (UTC)", war.EndTime.UTC().Format(time.RFC3339), false))
	return ResponseEmbed{embed}
}

// The best member of a war: most stars, then most destruction.
// On a complete tie the member listed first wins
func MVP(entry cocapi.WarLogEntry) (cocapi.WarMember, bool) {

	members := entry.Clan.Members
	if len(members) == 0 {
		return cocapi.WarMember{}, false
	}
	best := members[0]
	for _, member := range members[1:] {
		if member.Stars > best.Stars || (member.Stars == best.Stars && member.Destruction > best.Destruction) {
			best = member
		}
	}
	return best, true
}

func MVPEmbed(entry cocapi.WarLogEntry, mvp cocapi.WarMember, now time.Time) Response {

	opponent := "?"
	if entry.Opponent != nil && entry.Opponent.Name != "" {
		opponent = entry.Opponent.Name
	}
	embed := newEmbed("MVP | Last War", fmt.Sprintf("Opponent: %s", opponent), now)
	embed.Fields = append(embed.Fields,
		field("Player", mvp.Name, true),
		field("Stars", strconv.Itoa(mvp.Stars), true),
		field("Destruction %", strconv.FormatFloat(mvp.Destruction, 'f', -1, 64), true),
	)
	return ResponseEmbed{embed}
}

func CWLEmbed(title string, group cocapi.LeagueGroup, now time.Time) Response {

	embed := newEmbed(title, group.State, now)
	embed.Fields = append(embed.Fields, field("Rounds", strconv.Itoa(len(group.Rounds)), true))
	if group.Season != "" {
		embed.Fields = append(embed.Fields, field("Season", group.Season, true))
	}
	return ResponseEmbed{embed}
}

func ReminderMessage(minutesLeft int) Response {
	return ResponseString{fmt.Sprintf("🔔 War ends in about **%d minutes**, finish your final attacks!", minutesLeft)}
}

func OnlineMessage() Response {
	return ResponseString{"Clan bot online ✅"}
}

func NoWarLog() []Response {
	return []Response{ResponseString{"No warlog found."}}
}

func NoMemberData() []Response {
	return []Response{ResponseString{"No member data for the last war."}}
}

func NotInLeague() []Response {
	return []Response{ResponseString{"Clan is not in a CWL right now."}}
}

// Content of the private reply to a command with wrong input
func InputNotValid(errorMessage string) string {
	return fmt.Sprintf("Input not valid: \n> %s", errorMessage)
}

func GenericFailure() []Response {
	return []Response{ResponseString{"Something went wrong while talking to the Clash of Clans API."}}
}
