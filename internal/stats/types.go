package stats

import (
	"database/sql"
	"sync"
)

// store handles all database operations for batting and pitching records.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// BattingRecord is one batting line for a player, optionally tied to a game.
// SnapshotAvg is the cumulative batting average as of this record in
// chronological order, not the average of this record alone.
type BattingRecord struct {
	ID           int64   `json:"id"`
	PlayerID     int64   `json:"player_id"`
	GameID       *int64  `json:"game_id,omitempty"`
	GameName     *string `json:"game_name,omitempty"`
	GameDate     *string `json:"game_date,omitempty"`
	AtBats       int     `json:"ab"`
	Hits         int     `json:"hits"`
	HomeRuns     int     `json:"hr"`
	RunsBattedIn int     `json:"rbi"`
	SnapshotAvg  float64 `json:"snapshot_avg"`
	CreatedAt    string  `json:"created_at"`
}

// PitchingRecord is one pitching line for a player, optionally tied to a game.
type PitchingRecord struct {
	ID          int64   `json:"id"`
	PlayerID    int64   `json:"player_id"`
	GameID      *int64  `json:"game_id,omitempty"`
	GameName    *string `json:"game_name,omitempty"`
	GameDate    *string `json:"game_date,omitempty"`
	Innings     float64 `json:"innings"`
	EarnedRuns  int     `json:"er"`
	Strikeouts  int     `json:"so"`
	Walks       int     `json:"bb"`
	SnapshotERA float64 `json:"snapshot_era"`
	CreatedAt   string  `json:"created_at"`
}

// NewBattingRecord carries the writable fields of a batting record.
type NewBattingRecord struct {
	PlayerID     int64  `json:"player_id"`
	GameID       *int64 `json:"game_id,omitempty"`
	AtBats       int    `json:"ab"`
	Hits         int    `json:"hits"`
	HomeRuns     int    `json:"hr"`
	RunsBattedIn int    `json:"rbi"`
}

// NewPitchingRecord carries the writable fields of a pitching record.
type NewPitchingRecord struct {
	PlayerID   int64   `json:"player_id"`
	GameID     *int64  `json:"game_id,omitempty"`
	Innings    float64 `json:"innings"`
	EarnedRuns int     `json:"er"`
	Strikeouts int     `json:"so"`
	Walks      int     `json:"bb"`
}

// BattingTotals are a player's career batting sums plus the aggregate average.
type BattingTotals struct {
	AtBats       int     `json:"ab"`
	Hits         int     `json:"hits"`
	HomeRuns     int     `json:"hr"`
	RunsBattedIn int     `json:"rbi"`
	Average      float64 `json:"avg"`
}

// PitchingTotals are a player's career pitching sums plus the aggregate ERA.
type PitchingTotals struct {
	Innings    float64 `json:"innings"`
	EarnedRuns int     `json:"er"`
	Strikeouts int     `json:"so"`
	Walks      int     `json:"bb"`
	ERA        float64 `json:"era"`
}

// BattingLeaderboardRow is one player's line on the batting leaderboard.
type BattingLeaderboardRow struct {
	PlayerID     int64   `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Team         *string `json:"team,omitempty"`
	AtBats       int     `json:"ab"`
	Hits         int     `json:"hits"`
	HomeRuns     int     `json:"hr"`
	RunsBattedIn int     `json:"rbi"`
	Average      float64 `json:"avg"`
}

// PitchingLeaderboardRow is one player's line on the pitching leaderboard.
type PitchingLeaderboardRow struct {
	PlayerID   int64   `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Team       *string `json:"team,omitempty"`
	Innings    float64 `json:"innings"`
	EarnedRuns int     `json:"er"`
	Strikeouts int     `json:"so"`
	Walks      int     `json:"bb"`
	ERA        float64 `json:"era"`
}
