package slack

import (
	"github.com/mauv0809/scorebook/internal/metrics"
	"github.com/mauv0809/scorebook/internal/schedule"
	"github.com/mauv0809/scorebook/internal/stats"

	"github.com/slack-go/slack"
)

// Notifier announces roster events to the team channel. Implementations must
// tolerate being unconfigured and degrade to a no-op.
type Notifier interface {
	GameCreated(game *schedule.Game) error
	BattingRecorded(playerName string, rec *stats.BattingRecord) error
	PitchingRecorded(playerName string, rec *stats.PitchingRecord) error
}

// SlackClient is a wrapper around the official slack-go client.
type SlackClient struct {
	api       *slack.Client
	channelID string
	metrics   metrics.Metrics
}
