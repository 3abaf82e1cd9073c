package config

import (
	"clanbot/internal/cocapi"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Clan tracked when CLAN_TAG is not set
const DefaultClanTag = "#2RQCG2CRV"

// Config holds all configuration values for the bot
type Config struct {
	// Discord
	DiscordToken      string
	GuildID           string // commands are registered globally when empty
	AnnounceChannelID string // unsolicited messages are disabled when empty

	// Clash of Clans API
	CocAPIKey string
	CocAPIURL string
	ClanTag   string

	// Polling
	ReminderOffset  time.Duration
	CWLPollInterval time.Duration
	WarPollInterval time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables,
// after loading a .env file if there is one
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		GuildID:           os.Getenv("GUILD_ID"),
		AnnounceChannelID: os.Getenv("ANNOUNCE_CHANNEL_ID"),
		CocAPIKey:         os.Getenv("COC_API_KEY"),
		CocAPIURL:         getEnvOrDefault("COC_API_URL", cocapi.DefaultBaseURL),
		ClanTag:           cocapi.NormalizeTag(getEnvOrDefault("CLAN_TAG", DefaultClanTag)),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.DiscordToken == "" || cfg.CocAPIKey == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN and COC_API_KEY are required")
	}
	if cfg.ClanTag == "" {
		return nil, fmt.Errorf("CLAN_TAG is not a valid tag")
	}

	var err error
	if cfg.ReminderOffset, err = getMinutes("REMINDER_OFFSET_MINUTES", 120); err != nil {
		return nil, err
	}
	if cfg.WarPollInterval, err = getMinutes("WAR_POLL_MINUTES", 10); err != nil {
		return nil, err
	}
	// Older deployments spell the key CWl_POLL_MINUTES
	cwlKey := "CWL_POLL_MINUTES"
	if os.Getenv(cwlKey) == "" && os.Getenv("CWl_POLL_MINUTES") != "" {
		cwlKey = "CWl_POLL_MINUTES"
	}
	if cfg.CWLPollInterval, err = getMinutes(cwlKey, 15); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getMinutes(key string, defaultValue int) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(defaultValue) * time.Minute, nil
	}
	minutes, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive number of minutes", key)
	}
	return time.Duration(minutes) * time.Minute, nil
}
