package stats

// StatsStore defines the interface for batting/pitching record storage and
// snapshot recomputation. Every mutating operation leaves the affected
// player's snapshots consistent before it returns.
type StatsStore interface {
	AddBattingRecord(rec NewBattingRecord) (*BattingRecord, error)
	UpdateBattingRecord(id int64, rec NewBattingRecord) (*BattingRecord, error)
	DeleteBattingRecord(id int64) error
	AddPitchingRecord(rec NewPitchingRecord) (*PitchingRecord, error)
	UpdatePitchingRecord(id int64, rec NewPitchingRecord) (*PitchingRecord, error)
	DeletePitchingRecord(id int64) error

	RecomputeBattingSnapshots(playerID int64) error
	RecomputePitchingSnapshots(playerID int64) error

	AggregateAverage(playerID int64) (float64, error)
	AggregateERA(playerID int64) (float64, error)

	BattingHistory(playerID int64) ([]BattingRecord, error)
	PitchingHistory(playerID int64) ([]PitchingRecord, error)
	BattingTotals(playerID int64) (BattingTotals, error)
	PitchingTotals(playerID int64) (PitchingTotals, error)

	BattingLeaderboard() ([]BattingLeaderboardRow, error)
	PitchingLeaderboard() ([]PitchingLeaderboardRow, error)
	GameBattingLines(gameID int64) ([]BattingLeaderboardRow, error)
	GamePitchingLines(gameID int64) ([]PitchingLeaderboardRow, error)

	PlayersWithRecordsForGame(gameID int64) ([]int64, []int64, error)
}
