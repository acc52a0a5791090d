package stats_test

import (
	"testing"

	"github.com/mauv0809/scorebook/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		hits   int
		atBats int
		want   float64
	}{
		{"no at-bats means no average", 0, 0, 0.0},
		{"hits without at-bats stays zero", 3, 0, 0.0},
		{"simple ratio", 3, 10, 0.3},
		{"rounds to three decimals", 1, 3, 0.333},
		{"rounds up", 2, 3, 0.667},
		{"perfect", 4, 4, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, stats.Average(tt.hits, tt.atBats), 1e-9)
		})
	}
}

func TestERA(t *testing.T) {
	tests := []struct {
		name       string
		earnedRuns int
		innings    float64
		want       float64
	}{
		{"no innings means no ERA", 0, 0, 0.0},
		{"earned runs without innings stays zero", 5, 0, 0.0},
		{"simple ratio", 2, 6.0, 3.0},
		{"rounds to two decimals", 5, 7.0, 6.43},
		{"fractional innings", 1, 0.2, 45.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, stats.ERA(tt.earnedRuns, tt.innings), 1e-9)
		})
	}
}

func TestEffectiveDate(t *testing.T) {
	gameDate := "2024-05-01"
	empty := ""

	assert.Equal(t, "2024-05-01", stats.EffectiveDate(&gameDate, "2024-06-15T12:00:00.000Z"))
	assert.Equal(t, "2024-06-15", stats.EffectiveDate(nil, "2024-06-15T12:00:00.000Z"))
	assert.Equal(t, "2024-06-15", stats.EffectiveDate(&empty, "2024-06-15T12:00:00.000Z"))
	assert.Equal(t, "short", stats.EffectiveDate(nil, "short"))
}

func TestSortBattingEvents(t *testing.T) {
	events := []stats.BattingEvent{
		{ID: 3, EffectiveDate: "2024-05-02"},
		{ID: 2, EffectiveDate: "2024-05-01"},
		{ID: 1, EffectiveDate: "2024-05-02"},
	}

	stats.SortBattingEvents(events)

	assert.Equal(t, int64(2), events[0].ID, "earlier date first")
	assert.Equal(t, int64(1), events[1].ID, "same date breaks ties by id")
	assert.Equal(t, int64(3), events[2].ID)
}

func TestBattingSnapshots(t *testing.T) {
	events := []stats.BattingEvent{
		{ID: 1, EffectiveDate: "2024-05-01", AtBats: 10, Hits: 3},
		{ID: 2, EffectiveDate: "2024-05-08", AtBats: 10, Hits: 5},
	}

	snapshots := stats.BattingSnapshots(events)

	assert.Len(t, snapshots, 2)
	assert.InDelta(t, 0.300, snapshots[0], 1e-9)
	assert.InDelta(t, 0.400, snapshots[1], 1e-9)
}

func TestBattingSnapshots_ZeroAtBatsPrefix(t *testing.T) {
	events := []stats.BattingEvent{
		{ID: 1, EffectiveDate: "2024-05-01", AtBats: 0, Hits: 0},
		{ID: 2, EffectiveDate: "2024-05-08", AtBats: 4, Hits: 2},
	}

	snapshots := stats.BattingSnapshots(events)

	assert.InDelta(t, 0.0, snapshots[0], 1e-9, "no at-bats yet means 0.0, not an error")
	assert.InDelta(t, 0.5, snapshots[1], 1e-9)
}

func TestPitchingSnapshots(t *testing.T) {
	events := []stats.PitchingEvent{
		{ID: 1, EffectiveDate: "2024-05-01", Innings: 6.0, EarnedRuns: 2},
		{ID: 2, EffectiveDate: "2024-05-08", Innings: 3.0, EarnedRuns: 1},
	}

	snapshots := stats.PitchingSnapshots(events)

	assert.Len(t, snapshots, 2)
	assert.InDelta(t, 3.00, snapshots[0], 1e-9)
	assert.InDelta(t, 3.00, snapshots[1], 1e-9)
}

func TestSnapshots_EmptyHistory(t *testing.T) {
	assert.Empty(t, stats.BattingSnapshots(nil))
	assert.Empty(t, stats.PitchingSnapshots(nil))
}
