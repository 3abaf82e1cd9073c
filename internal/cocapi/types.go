package cocapi

import (
	"time"
)

type WarState string

const (
	WarStatePreparation WarState = "preparation"
	WarStateInWar       WarState = "inWar"
	WarStateEnded       WarState = "warEnded"
	WarStateNotInWar    WarState = "notInWar"
)

type Member struct {
	Tag           string
	Name          string
	Role          string
	TownHallLevel int
	Trophies      int
}

type Clan struct {
	Tag     string
	Name    string
	Level   int
	Members []Member
}

type Player struct {
	Tag           string
	Name          string
	TownHallLevel int
	ExpLevel      int
	Trophies      int
	BestTrophies  int
	WarStars      int
}

// Summary of one side of a war
type WarClan struct {
	Tag         string
	Name        string
	Stars       int
	Destruction float64
	Members     []WarMember
}

// Performance of one member in a war
type WarMember struct {
	Tag         string
	Name        string
	Stars       int
	Destruction float64
}

type War struct {
	State     WarState
	TeamSize  int
	StartTime time.Time
	EndTime   time.Time
	Clan      WarClan
	Opponent  *WarClan
}

type WarLogEntry struct {
	Result   string
	EndTime  time.Time
	TeamSize int
	Clan     WarClan
	Opponent *WarClan
}

type LeagueClan struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

type LeagueRound struct {
	WarTags []string `json:"warTags"`
}

type LeagueGroup struct {
	State  string        `json:"state"`
	Season string        `json:"season"`
	Clans  []LeagueClan  `json:"clans"`
	Rounds []LeagueRound `json:"rounds"`
}

func (state WarState) String() string {
	switch state {
	case WarStatePreparation:
		return "Preparation"
	case WarStateInWar:
		return "In War"
	case WarStateEnded:
		return "War Ended"
	case WarStateNotInWar:
		return "Not In War"
	default:
		return string(state)
	}
}
