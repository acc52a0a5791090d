package slack

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/scorebook/internal/metrics"
	"github.com/mauv0809/scorebook/internal/schedule"
	"github.com/mauv0809/scorebook/internal/stats"
	"github.com/slack-go/slack"
)

var _ Notifier = (*SlackClient)(nil)

// NewClient creates a new Slack client wrapper. An empty token disables the
// client; every notification becomes a no-op.
func NewClient(token, channelID string, m metrics.Metrics) *SlackClient {
	var api *slack.Client
	if token != "" {
		api = slack.New(token)
	}
	return &SlackClient{
		api:       api,
		channelID: channelID,
		metrics:   m,
	}
}

// NewClientWithAPI creates a new Slack client with a custom API client. Used for testing.
func NewClientWithAPI(api *slack.Client, channelID string, m metrics.Metrics) *SlackClient {
	return &SlackClient{
		api:       api,
		channelID: channelID,
		metrics:   m,
	}
}

// GameCreated announces a newly scheduled game.
func (c *SlackClient) GameCreated(game *schedule.Game) error {
	return c.send(c.FormatGameCreated(game))
}

// BattingRecorded announces a new batting line.
func (c *SlackClient) BattingRecorded(playerName string, rec *stats.BattingRecord) error {
	return c.send(c.FormatBattingRecorded(playerName, rec))
}

// PitchingRecorded announces a new pitching line.
func (c *SlackClient) PitchingRecorded(playerName string, rec *stats.PitchingRecord) error {
	return c.send(c.FormatPitchingRecorded(playerName, rec))
}

func (c *SlackClient) send(msg slack.Message) error {
	if c.api == nil || c.channelID == "" {
		log.Debug("Slack client is not configured. Skipping notification.")
		return nil
	}

	_, _, err := c.api.PostMessage(c.channelID, slack.MsgOptionBlocks(msg.Blocks.BlockSet...))
	if err != nil {
		log.Error("Failed to send Slack message", "error", err)
		if c.metrics != nil {
			c.metrics.IncNotifFailed()
		}
		return err
	}
	if c.metrics != nil {
		c.metrics.IncNotifSent()
	}
	return nil
}
