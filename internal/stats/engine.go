package stats

import (
	"math"
	"sort"
)

// BattingEvent is the minimal shape the cumulative walk needs for one
// batting record.
type BattingEvent struct {
	ID            int64
	EffectiveDate string
	AtBats        int
	Hits          int
}

// PitchingEvent is the minimal shape the cumulative walk needs for one
// pitching record.
type PitchingEvent struct {
	ID            int64
	EffectiveDate string
	Innings       float64
	EarnedRuns    int
}

// EffectiveDate resolves the date used to order a record chronologically:
// the linked game's date when present, else the record's creation timestamp
// truncated to YYYY-MM-DD. Records from date-less games and records without
// a game fall back the same way, so ties are broken by record id, which
// reflects insertion order.
func EffectiveDate(gameDate *string, createdAt string) string {
	if gameDate != nil && *gameDate != "" {
		return *gameDate
	}
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return createdAt
}

// SortBattingEvents orders events by (effective date, record id) ascending.
func SortBattingEvents(events []BattingEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].EffectiveDate != events[j].EffectiveDate {
			return events[i].EffectiveDate < events[j].EffectiveDate
		}
		return events[i].ID < events[j].ID
	})
}

// SortPitchingEvents orders events by (effective date, record id) ascending.
func SortPitchingEvents(events []PitchingEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].EffectiveDate != events[j].EffectiveDate {
			return events[i].EffectiveDate < events[j].EffectiveDate
		}
		return events[i].ID < events[j].ID
	})
}

// BattingSnapshots walks chronologically ordered events and returns the
// cumulative batting average after each one. The result has the same length
// and order as the input.
func BattingSnapshots(events []BattingEvent) []float64 {
	snapshots := make([]float64, len(events))
	cumAB := 0
	cumHits := 0
	for i, ev := range events {
		cumAB += ev.AtBats
		cumHits += ev.Hits
		snapshots[i] = Average(cumHits, cumAB)
	}
	return snapshots
}

// PitchingSnapshots walks chronologically ordered events and returns the
// cumulative ERA after each one.
func PitchingSnapshots(events []PitchingEvent) []float64 {
	snapshots := make([]float64, len(events))
	cumInnings := 0.0
	cumER := 0
	for i, ev := range events {
		cumInnings += ev.Innings
		cumER += ev.EarnedRuns
		snapshots[i] = ERA(cumER, cumInnings)
	}
	return snapshots
}

// Average is hits/atBats rounded to 3 decimals. A player with no at-bats has
// no average, represented as 0.0 rather than an error.
func Average(hits, atBats int) float64 {
	if atBats <= 0 {
		return 0.0
	}
	return round(float64(hits)/float64(atBats), 3)
}

// ERA is earnedRuns*9/innings rounded to 2 decimals, 0.0 when no innings
// have been pitched.
func ERA(earnedRuns int, innings float64) float64 {
	if innings <= 0 {
		return 0.0
	}
	return round(float64(earnedRuns)*9.0/innings, 2)
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
