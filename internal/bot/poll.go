package bot

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// What has already been announced. Only the scheduler goroutine reads or writes it
type PollState struct {
	LastReminderWarEnd time.Time // end time of the war that already got its reminder
	LastCWLSnapshot    string    // fingerprint of the last announced league group
}

// Watcher polls the game API and pushes reminders and announcements to a channel
type Watcher struct {
	api            GameAPI
	messenger      Messenger
	clanTag        string
	channelId      string
	reminderOffset time.Duration
	now            func() time.Time
	state          PollState
}

func NewWatcher(api GameAPI, messenger Messenger, clanTag string, channelId string, reminderOffset time.Duration) *Watcher {
	return &Watcher{
		api:            api,
		messenger:      messenger,
		clanTag:        clanTag,
		channelId:      channelId,
		reminderOffset: reminderOffset,
		now:            time.Now,
	}
}

func (watcher *Watcher) State() PollState {
	return watcher.state
}

// Send a single reminder per war once it is about to end
func (watcher *Watcher) WarReminderTick(ctx context.Context) {

	logger := zerolog.Ctx(ctx)
	if watcher.channelId == "" {
		return
	}

	war, err := watcher.api.GetCurrentWar(ctx, watcher.clanTag)
	if err != nil {
		logger.Error().Err(err).Msg("Could not fetch the current war")
		return
	}
	if war == nil {
		logger.Debug().Msg("Clan is not in war")
		return
	}

	// Already reminded for this war
	if watcher.state.LastReminderWarEnd.Equal(war.EndTime) {
		return
	}

	minutesLeft := war.EndTime.Sub(watcher.now()).Minutes()
	if minutesLeft <= 0 || minutesLeft > watcher.reminderOffset.Minutes() {
		logger.Debug().Msgf("War ends in %.0f minutes, no reminder", minutesLeft)
		return
	}

	logger.Info().Msgf("Sending reminder, war ends in %d minutes", int(minutesLeft))
	if err := ReminderMessage(int(minutesLeft)).Send(watcher.channelId, watcher.messenger); err != nil {
		logger.Error().Err(err).Msg("Could not send the war reminder")
	}
	watcher.state.LastReminderWarEnd = war.EndTime
}

// Announce the league group every time its state changes
func (watcher *Watcher) CWLTick(ctx context.Context) {

	logger := zerolog.Ctx(ctx)
	if watcher.channelId == "" {
		return
	}

	group, err := watcher.api.GetLeagueGroup(ctx, watcher.clanTag)
	if err != nil {
		logger.Error().Err(err).Msg("Could not fetch the league group")
		return
	}
	if group == nil {
		logger.Debug().Msg("Clan is not in a league group")
		return
	}

	fingerprint := group.Fingerprint()
	if fingerprint == watcher.state.LastCWLSnapshot {
		return
	}

	logger.Info().Msgf("League group changed, state is %s", group.State)
	watcher.state.LastCWLSnapshot = fingerprint
	if err := CWLEmbed("CWL Update", *group, watcher.now()).Send(watcher.channelId, watcher.messenger); err != nil {
		logger.Error().Err(err).Msg("Could not send the league announcement")
	}
}
