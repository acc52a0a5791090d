package slack_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/mauv0809/scorebook/internal/metrics"
	"github.com/mauv0809/scorebook/internal/schedule"
	internalslack "github.com/mauv0809/scorebook/internal/slack"
	"github.com/mauv0809/scorebook/internal/stats"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGameCreated_SendsBlocks(t *testing.T) {
	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))
		assert.Equal(t, "C123", vals.Get("channel"))

		var blocks slack.Blocks
		err := json.Unmarshal([]byte(vals.Get("blocks")), &blocks)
		require.NoError(t, err)
		require.Len(t, blocks.BlockSet, 2)

		header := blocks.BlockSet[0].(*slack.HeaderBlock)
		assert.Contains(t, header.Text.Text, "New game on the schedule!")
		section := blocks.BlockSet[1].(*slack.SectionBlock)
		assert.Contains(t, section.Text.Text, "Opener")
		assert.Contains(t, section.Text.Text, "2024-04-01")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "ts": "12345.6789"}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slack.New("test-token", slack.OptionAPIURL(srv.URL+"/"))
	m := metrics.NewMock()
	client := internalslack.NewClientWithAPI(api, "C123", m)

	game := &schedule.Game{ID: 1, Name: "Opener", Date: strPtr("2024-04-01"), Location: strPtr("Riverside field")}
	require.NoError(t, client.GameCreated(game))

	assert.True(t, handlerCalled, "Expected http handler to be called")
	assert.Equal(t, 1, m.NotifSent())
	assert.Equal(t, 0, m.NotifFailed())
}

func TestBattingRecorded_SendsBlocks(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))

		var blocks slack.Blocks
		err := json.Unmarshal([]byte(vals.Get("blocks")), &blocks)
		require.NoError(t, err)
		require.Len(t, blocks.BlockSet, 3)

		section := blocks.BlockSet[1].(*slack.SectionBlock)
		assert.Contains(t, section.Text.Text, "Kim went 3-for-10")
		assert.Contains(t, section.Text.Text, "2 RBI")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "ts": "12345.6789"}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slack.New("test-token", slack.OptionAPIURL(srv.URL+"/"))
	m := metrics.NewMock()
	client := internalslack.NewClientWithAPI(api, "C123", m)

	rec := &stats.BattingRecord{PlayerID: 1, AtBats: 10, Hits: 3, RunsBattedIn: 2, SnapshotAvg: 0.300}
	require.NoError(t, client.BattingRecorded("Kim", rec))
	assert.Equal(t, 1, m.NotifSent())
}

func TestSend_FailureIncrementsFailed(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": false, "error": "channel_not_found"}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	api := slack.New("test-token", slack.OptionAPIURL(srv.URL+"/"))
	m := metrics.NewMock()
	client := internalslack.NewClientWithAPI(api, "C123", m)

	err := client.PitchingRecorded("Park", &stats.PitchingRecord{Innings: 6.0, EarnedRuns: 2, SnapshotERA: 3.00})
	assert.Error(t, err)
	assert.Equal(t, 0, m.NotifSent())
	assert.Equal(t, 1, m.NotifFailed())
}

func TestUnconfiguredClientIsNoop(t *testing.T) {
	m := metrics.NewMock()
	client := internalslack.NewClient("", "", m)

	require.NoError(t, client.GameCreated(&schedule.Game{Name: "Opener"}))
	assert.Equal(t, 0, m.NotifSent())
	assert.Equal(t, 0, m.NotifFailed())
}
