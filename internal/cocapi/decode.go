package cocapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layout of every timestamp sent by the game API
const TimeLayout = "20060102T150405.000Z"

var roles = map[string]string{
	"member":   "Member",
	"admin":    "Elder",
	"coLeader": "Co-Leader",
	"leader":   "Leader",
}

type rawAttack struct {
	Stars                 int     `json:"stars"`
	DestructionPercentage float64 `json:"destructionPercentage"`
}

type rawWarMember struct {
	Tag                   string      `json:"tag"`
	Name                  string      `json:"name"`
	Stars                 int         `json:"stars"`
	DestructionPercentage float64     `json:"destructionPercentage"`
	Attacks               []rawAttack `json:"attacks"`
}

type rawWarClan struct {
	Tag                   string         `json:"tag"`
	Name                  string         `json:"name"`
	Stars                 int            `json:"stars"`
	DestructionPercentage float64        `json:"destructionPercentage"`
	Members               []rawWarMember `json:"members"`
}

// Parse a game API timestamp. An empty string is the zero time
func ParseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q is not correctly formatted: %w", value, err)
	}
	return t.UTC(), nil
}

// Normalize a user provided tag the way the game does:
// uppercase, only letters and digits, O is always a zero
func NormalizeTag(tag string) string {
	var builder strings.Builder
	for _, r := range strings.ToUpper(tag) {
		switch {
		case r == 'O':
			builder.WriteRune('0')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		}
	}
	if builder.Len() == 0 {
		return ""
	}
	return "#" + builder.String()
}

// Display name of a clan role
func RoleName(role string) string {
	if name, ok := roles[role]; ok {
		return name
	}
	return role
}

func UnmarshalClan(data []byte) (Clan, error) {

	var raw struct {
		Tag        string `json:"tag"`
		Name       string `json:"name"`
		ClanLevel  int    `json:"clanLevel"`
		MemberList []struct {
			Tag           string `json:"tag"`
			Name          string `json:"name"`
			Role          string `json:"role"`
			TownHallLevel int    `json:"townHallLevel"`
			Trophies      int    `json:"trophies"`
		} `json:"memberList"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Clan{}, err
	}

	clan := Clan{Tag: raw.Tag, Name: raw.Name, Level: raw.ClanLevel}
	for _, member := range raw.MemberList {
		clan.Members = append(clan.Members, Member{
			Tag:           member.Tag,
			Name:          member.Name,
			Role:          RoleName(member.Role),
			TownHallLevel: member.TownHallLevel,
			Trophies:      member.Trophies,
		})
	}
	return clan, nil
}

func UnmarshalPlayer(data []byte) (Player, error) {

	var raw struct {
		Tag           string `json:"tag"`
		Name          string `json:"name"`
		TownHallLevel int    `json:"townHallLevel"`
		ExpLevel      int    `json:"expLevel"`
		Trophies      int    `json:"trophies"`
		BestTrophies  int    `json:"bestTrophies"`
		WarStars      int    `json:"warStars"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Player{}, err
	}
	return Player(raw), nil
}

func UnmarshalWar(data []byte) (War, error) {

	var raw struct {
		State     WarState    `json:"state"`
		TeamSize  int         `json:"teamSize"`
		StartTime string      `json:"startTime"`
		EndTime   string      `json:"endTime"`
		Clan      rawWarClan  `json:"clan"`
		Opponent  *rawWarClan `json:"opponent"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return War{}, err
	}

	start, err := ParseTime(raw.StartTime)
	if err != nil {
		return War{}, err
	}
	end, err := ParseTime(raw.EndTime)
	if err != nil {
		return War{}, err
	}

	return War{
		State:     raw.State,
		TeamSize:  raw.TeamSize,
		StartTime: start,
		EndTime:   end,
		Clan:      decodeWarClan(raw.Clan),
		Opponent:  decodeOpponent(raw.Opponent),
	}, nil
}

// The war log is returned newest first
func UnmarshalWarLog(data []byte) ([]WarLogEntry, error) {

	var raw struct {
		Items []struct {
			Result   string      `json:"result"`
			EndTime  string      `json:"endTime"`
			TeamSize int         `json:"teamSize"`
			Clan     rawWarClan  `json:"clan"`
			Opponent *rawWarClan `json:"opponent"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	entries := make([]WarLogEntry, 0, len(raw.Items))
	for _, item := range raw.Items {
		end, err := ParseTime(item.EndTime)
		if err != nil {
			return nil, err
		}
		entries = append(entries, WarLogEntry{
			Result:   item.Result,
			EndTime:  end,
			TeamSize: item.TeamSize,
			Clan:     decodeWarClan(item.Clan),
			Opponent: decodeOpponent(item.Opponent),
		})
	}
	return entries, nil
}

func UnmarshalLeagueGroup(data []byte) (LeagueGroup, error) {

	var group LeagueGroup
	if err := json.Unmarshal(data, &group); err != nil {
		return LeagueGroup{}, err
	}
	return group, nil
}

// Deterministic digest of the complete state of the group.
// Two groups have the same fingerprint only if every field is equal
func (group *LeagueGroup) Fingerprint() string {
	// Marshalling a struct of strings and slices cannot fail
	data, _ := json.Marshal(group)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func decodeWarClan(raw rawWarClan) WarClan {

	clan := WarClan{Tag: raw.Tag, Name: raw.Name, Stars: raw.Stars, Destruction: raw.DestructionPercentage}
	for _, member := range raw.Members {
		warMember := WarMember{Tag: member.Tag, Name: member.Name, Stars: member.Stars, Destruction: member.DestructionPercentage}
		// Members of the current war carry their attacks instead of totals
		if len(member.Attacks) > 0 {
			warMember.Stars, warMember.Destruction = 0, 0
			for _, attack := range member.Attacks {
				warMember.Stars += attack.Stars
				warMember.Destruction = max(warMember.Destruction, attack.DestructionPercentage)
			}
		}
		clan.Members = append(clan.Members, warMember)
	}
	return clan
}

// League wars log an empty opponent
func decodeOpponent(raw *rawWarClan) *WarClan {
	if raw == nil || (raw.Tag == "" && raw.Name == "") {
		return nil
	}
	opponent := decodeWarClan(*raw)
	return &opponent
}
