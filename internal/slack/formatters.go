package slack

import (
	"fmt"

	"github.com/mauv0809/scorebook/internal/schedule"
	"github.com/mauv0809/scorebook/internal/stats"
	"github.com/slack-go/slack"
)

// FormatGameCreated creates the Slack message for a newly scheduled game using Block Kit.
func (c *SlackClient) FormatGameCreated(game *schedule.Game) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚾ New game on the schedule! ⚾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	details := game.Name
	if game.Date != nil {
		details += fmt.Sprintf("\nDate: %s", *game.Date)
	}
	if game.Location != nil {
		details += fmt.Sprintf("\nLocation: %s", *game.Location)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// FormatBattingRecorded creates the Slack message for a new batting line using Block Kit.
func (c *SlackClient) FormatBattingRecorded(playerName string, rec *stats.BattingRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚾ Batting line recorded! ⚾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	line := fmt.Sprintf("%s went %d-for-%d", playerName, rec.Hits, rec.AtBats)
	if rec.HomeRuns > 0 {
		line += fmt.Sprintf(", %d HR", rec.HomeRuns)
	}
	if rec.RunsBattedIn > 0 {
		line += fmt.Sprintf(", %d RBI", rec.RunsBattedIn)
	}
	if rec.GameName != nil {
		line += fmt.Sprintf("\nGame: %s", *rec.GameName)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", line, true, false), nil, nil))

	context := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Season average: %.3f", rec.SnapshotAvg), true, false)
	blocks = append(blocks, slack.NewContextBlock("", context))

	return slack.NewBlockMessage(blocks...)
}

// FormatPitchingRecorded creates the Slack message for a new pitching line using Block Kit.
func (c *SlackClient) FormatPitchingRecorded(playerName string, rec *stats.PitchingRecord) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "⚾ Pitching line recorded! ⚾", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	line := fmt.Sprintf("%s threw %.1f innings, %d ER, %d K", playerName, rec.Innings, rec.EarnedRuns, rec.Strikeouts)
	if rec.GameName != nil {
		line += fmt.Sprintf("\nGame: %s", *rec.GameName)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", line, true, false), nil, nil))

	context := slack.NewTextBlockObject("plain_text", fmt.Sprintf("Season ERA: %.2f", rec.SnapshotERA), true, false)
	blocks = append(blocks, slack.NewContextBlock("", context))

	return slack.NewBlockMessage(blocks...)
}
