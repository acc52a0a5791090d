package stats_test

import (
	"database/sql"
	"testing"

	"github.com/mauv0809/scorebook/internal/database"
	"github.com/mauv0809/scorebook/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (stats.StatsStore, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return stats.New(db), db, teardown
}

// seedPlayer inserts a player directly and returns its id.
func seedPlayer(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	res, err := db.Exec("INSERT INTO players (name) VALUES (?)", name)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// seedGame inserts a game with the given date (empty means no date).
func seedGame(t *testing.T, db *sql.DB, name, date string) int64 {
	t.Helper()
	var res sql.Result
	var err error
	if date == "" {
		res, err = db.Exec("INSERT INTO games (name) VALUES (?)", name)
	} else {
		res, err = db.Exec("INSERT INTO games (name, date) VALUES (?, ?)", name, date)
	}
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestAddBattingRecord_SetsSnapshots(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	playerID := seedPlayer(t, db, "Kim")
	g1 := seedGame(t, db, "Opener", "2024-04-01")
	g2 := seedGame(t, db, "Week two", "2024-04-08")

	recA, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g1, AtBats: 10, Hits: 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.300, recA.SnapshotAvg, 1e-9)

	recB, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g2, AtBats: 10, Hits: 5, HomeRuns: 1, RunsBattedIn: 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.400, recB.SnapshotAvg, 1e-9, "second record's snapshot is cumulative, not per-game")

	history, err := store.BattingHistory(playerID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.InDelta(t, 0.300, history[0].SnapshotAvg, 1e-9)
	assert.InDelta(t, 0.400, history[1].SnapshotAvg, 1e-9)
}

func TestAddBattingRecord_BackfillShiftsLaterSnapshots(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	playerID := seedPlayer(t, db, "Kim")
	g1 := seedGame(t, db, "Opener", "2024-04-01")
	g2 := seedGame(t, db, "Week two", "2024-04-08")

	// Record B first, against the later game.
	recB, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g2, AtBats: 10, Hits: 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.500, recB.SnapshotAvg, 1e-9)

	// Backfill record A with the earlier game date.
	recA, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g1, AtBats: 10, Hits: 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.300, recA.SnapshotAvg, 1e-9)

	history, err := store.BattingHistory(playerID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, recA.ID, history[0].ID, "backfilled record sorts first by game date")
	assert.InDelta(t, 0.300, history[0].SnapshotAvg, 1e-9)
	assert.InDelta(t, 0.400, history[1].SnapshotAvg, 1e-9, "existing record's snapshot must be corrected")
}

func TestRecomputeBattingSnapshots_Idempotent(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	playerID := seedPlayer(t, db, "Kim")
	_, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, AtBats: 10, Hits: 3})
	require.NoError(t, err)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, AtBats: 10, Hits: 5})
	require.NoError(t, err)

	first, err := store.BattingHistory(playerID)
	require.NoError(t, err)

	require.NoError(t, store.RecomputeBattingSnapshots(playerID))
	require.NoError(t, store.RecomputeBattingSnapshots(playerID))

	second, err := store.BattingHistory(playerID)
	require.NoError(t, err)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.InDelta(t, first[i].SnapshotAvg, second[i].SnapshotAvg, 1e-9)
	}
}

func TestOrderIndependenceOfFinalState(t *testing.T) {
	type line struct {
		game   string
		atBats int
		hits   int
	}
	lines := []line{
		{"2024-04-01", 4, 1},
		{"2024-04-08", 5, 3},
		{"2024-04-15", 3, 0},
	}
	permutations := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}}

	var want []float64
	for _, perm := range permutations {
		store, db, teardown := setupTestDB(t)

		playerID := seedPlayer(t, db, "Kim")
		gameIDs := make(map[string]int64)
		for _, l := range lines {
			gameIDs[l.game] = seedGame(t, db, "game "+l.game, l.game)
		}
		for _, idx := range perm {
			l := lines[idx]
			gid := gameIDs[l.game]
			_, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &gid, AtBats: l.atBats, Hits: l.hits})
			require.NoError(t, err)
		}

		history, err := store.BattingHistory(playerID)
		require.NoError(t, err)
		require.Len(t, history, len(lines))

		got := make([]float64, len(history))
		for i, rec := range history {
			got[i] = rec.SnapshotAvg
		}
		if want == nil {
			want = got
		} else {
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-9, "insertion order must not change final snapshots")
			}
		}
		teardown()
	}
}

func TestDeleteBattingRecord_RecomputesRemaining(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	playerID := seedPlayer(t, db, "Kim")
	g1 := seedGame(t, db, "Opener", "2024-04-01")
	g2 := seedGame(t, db, "Week two", "2024-04-08")

	recA, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g1, AtBats: 10, Hits: 3})
	require.NoError(t, err)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g2, AtBats: 10, Hits: 5})
	require.NoError(t, err)

	require.NoError(t, store.DeleteBattingRecord(recA.ID))

	history, err := store.BattingHistory(playerID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 0.500, history[0].SnapshotAvg, 1e-9, "remaining snapshot must revert")
}

func TestDeleteBattingRecord_NotFound(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	err := store.DeleteBattingRecord(42)
	assert.ErrorIs(t, err, stats.ErrRecordNotFound)
}

func TestUpdateBattingRecord_MoveRecomputesBothPlayers(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	p1 := seedPlayer(t, db, "Kim")
	p2 := seedPlayer(t, db, "Lee")
	g1 := seedGame(t, db, "Opener", "2024-04-01")
	g2 := seedGame(t, db, "Week two", "2024-04-08")

	moved, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: p1, GameID: &g1, AtBats: 10, Hits: 3})
	require.NoError(t, err)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: p1, GameID: &g2, AtBats: 10, Hits: 5})
	require.NoError(t, err)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: p2, GameID: &g2, AtBats: 4, Hits: 2})
	require.NoError(t, err)

	// Reassign the first record from Kim to Lee.
	_, err = store.UpdateBattingRecord(moved.ID, stats.NewBattingRecord{PlayerID: p2, GameID: &g1, AtBats: 10, Hits: 3})
	require.NoError(t, err)

	kim, err := store.BattingHistory(p1)
	require.NoError(t, err)
	require.Len(t, kim, 1)
	assert.InDelta(t, 0.500, kim[0].SnapshotAvg, 1e-9, "old player's history must be recomputed too")

	lee, err := store.BattingHistory(p2)
	require.NoError(t, err)
	require.Len(t, lee, 2)
	assert.Equal(t, moved.ID, lee[0].ID)
	assert.InDelta(t, 0.300, lee[0].SnapshotAvg, 1e-9)
	assert.InDelta(t, 0.357, lee[1].SnapshotAvg, 1e-9) // (3+2)/(10+4)
}

func TestUpdateBattingRecord_ValueEditShiftsSnapshots(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	playerID := seedPlayer(t, db, "Kim")
	g1 := seedGame(t, db, "Opener", "2024-04-01")
	g2 := seedGame(t, db, "Week two", "2024-04-08")

	recA, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g1, AtBats: 10, Hits: 3})
	require.NoError(t, err)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g2, AtBats: 10, Hits: 5})
	require.NoError(t, err)

	_, err = store.UpdateBattingRecord(recA.ID, stats.NewBattingRecord{PlayerID: playerID, GameID: &g1, AtBats: 10, Hits: 7})
	require.NoError(t, err)

	history, err := store.BattingHistory(playerID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.InDelta(t, 0.700, history[0].SnapshotAvg, 1e-9)
	assert.InDelta(t, 0.600, history[1].SnapshotAvg, 1e-9)
}

func TestPitchingRecords_CumulativeERA(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	playerID := seedPlayer(t, db, "Park")
	g1 := seedGame(t, db, "Opener", "2024-04-01")
	g2 := seedGame(t, db, "Week two", "2024-04-08")

	rec1, err := store.AddPitchingRecord(stats.NewPitchingRecord{PlayerID: playerID, GameID: &g1, Innings: 6.0, EarnedRuns: 2, Strikeouts: 7})
	require.NoError(t, err)
	assert.InDelta(t, 3.00, rec1.SnapshotERA, 1e-9)

	rec2, err := store.AddPitchingRecord(stats.NewPitchingRecord{PlayerID: playerID, GameID: &g2, Innings: 3.0, EarnedRuns: 1, Strikeouts: 4})
	require.NoError(t, err)
	assert.InDelta(t, 3.00, rec2.SnapshotERA, 1e-9, "27 earned-run-innings over 9 innings")

	era, err := store.AggregateERA(playerID)
	require.NoError(t, err)
	assert.InDelta(t, 3.00, era, 1e-9)
}

func TestAggregates_ZeroDenominators(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	playerID := seedPlayer(t, db, "Bench")

	avg, err := store.AggregateAverage(playerID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	era, err := store.AggregateERA(playerID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, era)
}

func TestAggregates_UnknownPlayerYieldsZero(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	avg, err := store.AggregateAverage(999)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	era, err := store.AggregateERA(999)
	require.NoError(t, err)
	assert.Equal(t, 0.0, era)
}

func TestAddBattingRecord_UnknownRefs(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: 999, AtBats: 1})
	assert.ErrorIs(t, err, stats.ErrPlayerNotFound)

	playerID := seedPlayer(t, db, "Kim")
	badGame := int64(999)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &badGame, AtBats: 1})
	assert.ErrorIs(t, err, stats.ErrGameNotFound)
}

func TestBattingLeaderboard(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	p1 := seedPlayer(t, db, "Kim")
	p2 := seedPlayer(t, db, "Lee")
	seedPlayer(t, db, "Bench") // no at-bats, must not appear

	_, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: p1, AtBats: 10, Hits: 3})
	require.NoError(t, err)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: p2, AtBats: 10, Hits: 5})
	require.NoError(t, err)

	board, err := store.BattingLeaderboard()
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Lee", board[0].PlayerName)
	assert.InDelta(t, 0.500, board[0].Average, 1e-9)
	assert.Equal(t, "Kim", board[1].PlayerName)
	assert.InDelta(t, 0.300, board[1].Average, 1e-9)
}

func TestPitchingLeaderboard(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	p1 := seedPlayer(t, db, "Park")
	p2 := seedPlayer(t, db, "Choi")

	_, err := store.AddPitchingRecord(stats.NewPitchingRecord{PlayerID: p1, Innings: 9.0, EarnedRuns: 4})
	require.NoError(t, err)
	_, err = store.AddPitchingRecord(stats.NewPitchingRecord{PlayerID: p2, Innings: 9.0, EarnedRuns: 2})
	require.NoError(t, err)

	board, err := store.PitchingLeaderboard()
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Choi", board[0].PlayerName, "lower ERA first")
	assert.InDelta(t, 2.00, board[0].ERA, 1e-9)
	assert.InDelta(t, 4.00, board[1].ERA, 1e-9)
}

func TestGameLines(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	p1 := seedPlayer(t, db, "Kim")
	p2 := seedPlayer(t, db, "Park")
	g1 := seedGame(t, db, "Opener", "2024-04-01")
	g2 := seedGame(t, db, "Week two", "2024-04-08")

	_, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: p1, GameID: &g1, AtBats: 4, Hits: 2})
	require.NoError(t, err)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: p1, GameID: &g2, AtBats: 4, Hits: 1})
	require.NoError(t, err)
	_, err = store.AddPitchingRecord(stats.NewPitchingRecord{PlayerID: p2, GameID: &g1, Innings: 5.0, EarnedRuns: 1, Strikeouts: 6})
	require.NoError(t, err)

	batting, err := store.GameBattingLines(g1)
	require.NoError(t, err)
	require.Len(t, batting, 1)
	assert.InDelta(t, 0.500, batting[0].Average, 1e-9, "per-game line uses the record's own ratio")

	pitching, err := store.GamePitchingLines(g1)
	require.NoError(t, err)
	require.Len(t, pitching, 1)
	assert.InDelta(t, 1.80, pitching[0].ERA, 1e-9)

	batters, pitchers, err := store.PlayersWithRecordsForGame(g1)
	require.NoError(t, err)
	assert.Equal(t, []int64{p1}, batters)
	assert.Equal(t, []int64{p2}, pitchers)
}

func TestSnapshots_FollowGameDateChanges(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	playerID := seedPlayer(t, db, "Kim")
	g1 := seedGame(t, db, "Opener", "2024-04-01")
	g2 := seedGame(t, db, "Week two", "2024-04-08")

	_, err := store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g1, AtBats: 10, Hits: 3})
	require.NoError(t, err)
	_, err = store.AddBattingRecord(stats.NewBattingRecord{PlayerID: playerID, GameID: &g2, AtBats: 10, Hits: 5})
	require.NoError(t, err)

	// Move the first game after the second; the caller is responsible for
	// triggering the recompute, as the game handlers do.
	_, err = db.Exec("UPDATE games SET date = '2024-04-15' WHERE id = ?", g1)
	require.NoError(t, err)
	require.NoError(t, store.RecomputeBattingSnapshots(playerID))

	history, err := store.BattingHistory(playerID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.InDelta(t, 0.500, history[0].SnapshotAvg, 1e-9)
	assert.InDelta(t, 0.400, history[1].SnapshotAvg, 1e-9)
}
