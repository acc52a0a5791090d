package stats

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

var (
	// ErrRecordNotFound is returned when a batting/pitching record id does not exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrPlayerNotFound is returned when a write references a nonexistent player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrGameNotFound is returned when a write references a nonexistent game.
	ErrGameNotFound = errors.New("game not found")
)

const leaderboardLimit = 50

// New creates a new StatsStore.
func New(db *sql.DB) StatsStore {
	return &store{
		db: db,
	}
}

const battingSelect = `
	SELECT b.id, b.player_id, b.game_id, g.name, g.date, b.ab, b.hits, b.hr, b.rbi, b.avg, b.created_at
	FROM batting b
	LEFT JOIN games g ON g.id = b.game_id`

const pitchingSelect = `
	SELECT p.id, p.player_id, p.game_id, g.name, g.date, p.innings, p.er, p.so, p.bb, p.era, p.created_at
	FROM pitching p
	LEFT JOIN games g ON g.id = p.game_id`

// AddBattingRecord inserts a record and recomputes the player's snapshots in
// the same transaction, so a committed insert is never visible with stale
// snapshots.
func (s *store) AddBattingRecord(rec NewBattingRecord) (*BattingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	if err := checkRefs(tx, rec.PlayerID, rec.GameID); err != nil {
		tx.Rollback()
		return nil, err
	}

	res, err := tx.Exec(
		"INSERT INTO batting (player_id, game_id, ab, hits, hr, rbi) VALUES (?, ?, ?, ?, ?, ?)",
		rec.PlayerID, rec.GameID, rec.AtBats, rec.Hits, rec.HomeRuns, rec.RunsBattedIn,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to insert batting record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := recomputeBattingTx(tx, rec.PlayerID); err != nil {
		tx.Rollback()
		return nil, err
	}

	out, err := fetchBattingRecord(tx, id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Info("Added batting record", "recordID", id, "playerID", rec.PlayerID)
	return out, nil
}

// UpdateBattingRecord rewrites a record and recomputes snapshots. When the
// record moves to a different player, both the old and the new player's
// histories are recomputed in the same transaction.
func (s *store) UpdateBattingRecord(id int64, rec NewBattingRecord) (*BattingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	var oldPlayerID int64
	err = tx.QueryRow("SELECT player_id FROM batting WHERE id = ?", id).Scan(&oldPlayerID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return nil, ErrRecordNotFound
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := checkRefs(tx, rec.PlayerID, rec.GameID); err != nil {
		tx.Rollback()
		return nil, err
	}

	_, err = tx.Exec(
		"UPDATE batting SET player_id = ?, game_id = ?, ab = ?, hits = ?, hr = ?, rbi = ? WHERE id = ?",
		rec.PlayerID, rec.GameID, rec.AtBats, rec.Hits, rec.HomeRuns, rec.RunsBattedIn, id,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update batting record: %w", err)
	}

	if err := recomputeBattingTx(tx, rec.PlayerID); err != nil {
		tx.Rollback()
		return nil, err
	}
	if oldPlayerID != rec.PlayerID {
		if err := recomputeBattingTx(tx, oldPlayerID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	out, err := fetchBattingRecord(tx, id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteBattingRecord removes a record and recomputes the owning player's
// remaining snapshots.
func (s *store) DeleteBattingRecord(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var playerID int64
	err = tx.QueryRow("SELECT player_id FROM batting WHERE id = ?", id).Scan(&playerID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return ErrRecordNotFound
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("DELETE FROM batting WHERE id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete batting record: %w", err)
	}
	if err := recomputeBattingTx(tx, playerID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// AddPitchingRecord inserts a record and recomputes ERA snapshots in the
// same transaction.
func (s *store) AddPitchingRecord(rec NewPitchingRecord) (*PitchingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	if err := checkRefs(tx, rec.PlayerID, rec.GameID); err != nil {
		tx.Rollback()
		return nil, err
	}

	res, err := tx.Exec(
		"INSERT INTO pitching (player_id, game_id, innings, er, so, bb) VALUES (?, ?, ?, ?, ?, ?)",
		rec.PlayerID, rec.GameID, rec.Innings, rec.EarnedRuns, rec.Strikeouts, rec.Walks,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to insert pitching record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := recomputePitchingTx(tx, rec.PlayerID); err != nil {
		tx.Rollback()
		return nil, err
	}

	out, err := fetchPitchingRecord(tx, id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	log.Info("Added pitching record", "recordID", id, "playerID", rec.PlayerID)
	return out, nil
}

func (s *store) UpdatePitchingRecord(id int64, rec NewPitchingRecord) (*PitchingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}

	var oldPlayerID int64
	err = tx.QueryRow("SELECT player_id FROM pitching WHERE id = ?", id).Scan(&oldPlayerID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return nil, ErrRecordNotFound
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := checkRefs(tx, rec.PlayerID, rec.GameID); err != nil {
		tx.Rollback()
		return nil, err
	}

	_, err = tx.Exec(
		"UPDATE pitching SET player_id = ?, game_id = ?, innings = ?, er = ?, so = ?, bb = ? WHERE id = ?",
		rec.PlayerID, rec.GameID, rec.Innings, rec.EarnedRuns, rec.Strikeouts, rec.Walks, id,
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update pitching record: %w", err)
	}

	if err := recomputePitchingTx(tx, rec.PlayerID); err != nil {
		tx.Rollback()
		return nil, err
	}
	if oldPlayerID != rec.PlayerID {
		if err := recomputePitchingTx(tx, oldPlayerID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	out, err := fetchPitchingRecord(tx, id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *store) DeletePitchingRecord(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var playerID int64
	err = tx.QueryRow("SELECT player_id FROM pitching WHERE id = ?", id).Scan(&playerID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return ErrRecordNotFound
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("DELETE FROM pitching WHERE id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete pitching record: %w", err)
	}
	if err := recomputePitchingTx(tx, playerID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// RecomputeBattingSnapshots rewrites every batting snapshot for the player
// from its full ordered history, inside one transaction. Re-running it with
// no data changes produces identical snapshots.
func (s *store) RecomputeBattingSnapshots(playerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := recomputeBattingTx(tx, playerID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// RecomputePitchingSnapshots is the ERA counterpart of
// RecomputeBattingSnapshots.
func (s *store) RecomputePitchingSnapshots(playerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := recomputePitchingTx(tx, playerID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func recomputeBattingTx(tx *sql.Tx, playerID int64) error {
	rows, err := tx.Query(`
		SELECT b.id, g.date, b.created_at, b.ab, b.hits
		FROM batting b
		LEFT JOIN games g ON g.id = b.game_id
		WHERE b.player_id = ?`, playerID)
	if err != nil {
		return fmt.Errorf("failed to load batting history: %w", err)
	}

	var events []BattingEvent
	for rows.Next() {
		var ev BattingEvent
		var gameDate sql.NullString
		var createdAt string
		if err := rows.Scan(&ev.ID, &gameDate, &createdAt, &ev.AtBats, &ev.Hits); err != nil {
			rows.Close()
			return err
		}
		ev.EffectiveDate = EffectiveDate(nullableString(gameDate), createdAt)
		events = append(events, ev)
	}
	if err := rows.Close(); err != nil {
		return err
	}

	SortBattingEvents(events)
	snapshots := BattingSnapshots(events)

	stmt, err := tx.Prepare("UPDATE batting SET avg = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, ev := range events {
		if _, err := stmt.Exec(snapshots[i], ev.ID); err != nil {
			return fmt.Errorf("failed to write batting snapshot: %w", err)
		}
	}
	return nil
}

func recomputePitchingTx(tx *sql.Tx, playerID int64) error {
	rows, err := tx.Query(`
		SELECT p.id, g.date, p.created_at, p.innings, p.er
		FROM pitching p
		LEFT JOIN games g ON g.id = p.game_id
		WHERE p.player_id = ?`, playerID)
	if err != nil {
		return fmt.Errorf("failed to load pitching history: %w", err)
	}

	var events []PitchingEvent
	for rows.Next() {
		var ev PitchingEvent
		var gameDate sql.NullString
		var createdAt string
		if err := rows.Scan(&ev.ID, &gameDate, &createdAt, &ev.Innings, &ev.EarnedRuns); err != nil {
			rows.Close()
			return err
		}
		ev.EffectiveDate = EffectiveDate(nullableString(gameDate), createdAt)
		events = append(events, ev)
	}
	if err := rows.Close(); err != nil {
		return err
	}

	SortPitchingEvents(events)
	snapshots := PitchingSnapshots(events)

	stmt, err := tx.Prepare("UPDATE pitching SET era = ? WHERE id = ?")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, ev := range events {
		if _, err := stmt.Exec(snapshots[i], ev.ID); err != nil {
			return fmt.Errorf("failed to write pitching snapshot: %w", err)
		}
	}
	return nil
}

// AggregateAverage returns the player's career batting average. An unknown
// player has an empty history and yields 0.0, not an error.
func (s *store) AggregateAverage(playerID int64) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ab, hits int
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(ab),0), COALESCE(SUM(hits),0) FROM batting WHERE player_id = ?",
		playerID,
	).Scan(&ab, &hits)
	if err != nil {
		return 0, err
	}
	return Average(hits, ab), nil
}

// AggregateERA returns the player's career ERA, 0.0 for an empty history.
func (s *store) AggregateERA(playerID int64) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var innings float64
	var er int
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(innings),0.0), COALESCE(SUM(er),0) FROM pitching WHERE player_id = ?",
		playerID,
	).Scan(&innings, &er)
	if err != nil {
		return 0, err
	}
	return ERA(er, innings), nil
}

// BattingHistory returns the player's batting records in chronological
// (effective date, record id) order.
func (s *store) BattingHistory(playerID int64) ([]BattingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(battingSelect+" WHERE b.player_id = ?", playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []BattingRecord
	for rows.Next() {
		rec, err := scanBattingRecord(rows)
		if err != nil {
			log.Error("Failed to scan batting record", "error", err)
			continue
		}
		records = append(records, *rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		di := EffectiveDate(records[i].GameDate, records[i].CreatedAt)
		dj := EffectiveDate(records[j].GameDate, records[j].CreatedAt)
		if di != dj {
			return di < dj
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// PitchingHistory returns the player's pitching records in chronological
// (effective date, record id) order.
func (s *store) PitchingHistory(playerID int64) ([]PitchingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(pitchingSelect+" WHERE p.player_id = ?", playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PitchingRecord
	for rows.Next() {
		rec, err := scanPitchingRecord(rows)
		if err != nil {
			log.Error("Failed to scan pitching record", "error", err)
			continue
		}
		records = append(records, *rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		di := EffectiveDate(records[i].GameDate, records[i].CreatedAt)
		dj := EffectiveDate(records[j].GameDate, records[j].CreatedAt)
		if di != dj {
			return di < dj
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

func (s *store) BattingTotals(playerID int64) (BattingTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t BattingTotals
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(ab),0), COALESCE(SUM(hits),0), COALESCE(SUM(hr),0), COALESCE(SUM(rbi),0)
		FROM batting WHERE player_id = ?`, playerID,
	).Scan(&t.AtBats, &t.Hits, &t.HomeRuns, &t.RunsBattedIn)
	if err != nil {
		return BattingTotals{}, err
	}
	t.Average = Average(t.Hits, t.AtBats)
	return t, nil
}

func (s *store) PitchingTotals(playerID int64) (PitchingTotals, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t PitchingTotals
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(innings),0.0), COALESCE(SUM(er),0), COALESCE(SUM(so),0), COALESCE(SUM(bb),0)
		FROM pitching WHERE player_id = ?`, playerID,
	).Scan(&t.Innings, &t.EarnedRuns, &t.Strikeouts, &t.Walks)
	if err != nil {
		return PitchingTotals{}, err
	}
	t.ERA = ERA(t.EarnedRuns, t.Innings)
	return t, nil
}

// BattingLeaderboard aggregates every player with at least one at-bat,
// ordered by average, hits, home runs, then RBIs descending.
func (s *store) BattingLeaderboard() ([]BattingLeaderboardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id, p.name, p.team,
			COALESCE(SUM(b.ab),0), COALESCE(SUM(b.hits),0), COALESCE(SUM(b.hr),0), COALESCE(SUM(b.rbi),0)
		FROM players p
		LEFT JOIN batting b ON b.player_id = p.id
		GROUP BY p.id
		HAVING COALESCE(SUM(b.ab),0) > 0`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var board []BattingLeaderboardRow
	for rows.Next() {
		var row BattingLeaderboardRow
		var team sql.NullString
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &team, &row.AtBats, &row.Hits, &row.HomeRuns, &row.RunsBattedIn); err != nil {
			log.Error("Failed to scan batting leaderboard row", "error", err)
			continue
		}
		row.Team = nullableString(team)
		row.Average = Average(row.Hits, row.AtBats)
		board = append(board, row)
	}
	sortBattingBoard(board)
	if len(board) > leaderboardLimit {
		board = board[:leaderboardLimit]
	}
	return board, nil
}

// PitchingLeaderboard aggregates every player with at least one inning,
// ordered by ERA ascending then strikeouts descending.
func (s *store) PitchingLeaderboard() ([]PitchingLeaderboardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id, p.name, p.team,
			COALESCE(SUM(pg.innings),0.0), COALESCE(SUM(pg.er),0), COALESCE(SUM(pg.so),0), COALESCE(SUM(pg.bb),0)
		FROM players p
		LEFT JOIN pitching pg ON pg.player_id = p.id
		GROUP BY p.id
		HAVING COALESCE(SUM(pg.innings),0) > 0`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var board []PitchingLeaderboardRow
	for rows.Next() {
		var row PitchingLeaderboardRow
		var team sql.NullString
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &team, &row.Innings, &row.EarnedRuns, &row.Strikeouts, &row.Walks); err != nil {
			log.Error("Failed to scan pitching leaderboard row", "error", err)
			continue
		}
		row.Team = nullableString(team)
		row.ERA = ERA(row.EarnedRuns, row.Innings)
		board = append(board, row)
	}
	sortPitchingBoard(board)
	if len(board) > leaderboardLimit {
		board = board[:leaderboardLimit]
	}
	return board, nil
}

// GameBattingLines returns the per-record batting lines for one game. The
// average here is each record's own ratio, not the running snapshot.
func (s *store) GameBattingLines(gameID int64) ([]BattingLeaderboardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id, p.name, p.team, b.ab, b.hits, b.hr, b.rbi
		FROM batting b
		JOIN players p ON p.id = b.player_id
		WHERE b.game_id = ?`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []BattingLeaderboardRow
	for rows.Next() {
		var row BattingLeaderboardRow
		var team sql.NullString
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &team, &row.AtBats, &row.Hits, &row.HomeRuns, &row.RunsBattedIn); err != nil {
			log.Error("Failed to scan game batting line", "error", err)
			continue
		}
		row.Team = nullableString(team)
		row.Average = Average(row.Hits, row.AtBats)
		lines = append(lines, row)
	}
	sortBattingBoard(lines)
	return lines, nil
}

// GamePitchingLines returns the per-record pitching lines for one game.
func (s *store) GamePitchingLines(gameID int64) ([]PitchingLeaderboardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT p.id, p.name, p.team, pg.innings, pg.er, pg.so, pg.bb
		FROM pitching pg
		JOIN players p ON p.id = pg.player_id
		WHERE pg.game_id = ?`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []PitchingLeaderboardRow
	for rows.Next() {
		var row PitchingLeaderboardRow
		var team sql.NullString
		if err := rows.Scan(&row.PlayerID, &row.PlayerName, &team, &row.Innings, &row.EarnedRuns, &row.Strikeouts, &row.Walks); err != nil {
			log.Error("Failed to scan game pitching line", "error", err)
			continue
		}
		row.Team = nullableString(team)
		row.ERA = ERA(row.EarnedRuns, row.Innings)
		lines = append(lines, row)
	}
	sortPitchingBoard(lines)
	return lines, nil
}

// PlayersWithRecordsForGame returns the distinct players holding batting and
// pitching records in the game. Callers recompute these players when the
// game's date changes or the game is deleted, since both shift the records'
// effective dates.
func (s *store) PlayersWithRecordsForGame(gameID int64) ([]int64, []int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batters, err := distinctPlayers(s.db, "SELECT DISTINCT player_id FROM batting WHERE game_id = ?", gameID)
	if err != nil {
		return nil, nil, err
	}
	pitchers, err := distinctPlayers(s.db, "SELECT DISTINCT player_id FROM pitching WHERE game_id = ?", gameID)
	if err != nil {
		return nil, nil, err
	}
	return batters, pitchers, nil
}

func distinctPlayers(db *sql.DB, query string, gameID int64) ([]int64, error) {
	rows, err := db.Query(query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type querier interface {
	QueryRow(query string, args ...any) *sql.Row
}

func checkRefs(tx *sql.Tx, playerID int64, gameID *int64) error {
	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE id = ?)", playerID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrPlayerNotFound
	}
	if gameID != nil {
		if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM games WHERE id = ?)", *gameID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrGameNotFound
		}
	}
	return nil
}

func fetchBattingRecord(q querier, id int64) (*BattingRecord, error) {
	rec, err := scanBattingRecord(q.QueryRow(battingSelect+" WHERE b.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	return rec, err
}

func fetchPitchingRecord(q querier, id int64) (*PitchingRecord, error) {
	rec, err := scanPitchingRecord(q.QueryRow(pitchingSelect+" WHERE p.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	return rec, err
}

func scanBattingRecord(scanner interface{ Scan(...any) error }) (*BattingRecord, error) {
	var rec BattingRecord
	var gameID sql.NullInt64
	var gameName, gameDate sql.NullString

	err := scanner.Scan(
		&rec.ID, &rec.PlayerID, &gameID, &gameName, &gameDate,
		&rec.AtBats, &rec.Hits, &rec.HomeRuns, &rec.RunsBattedIn,
		&rec.SnapshotAvg, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if gameID.Valid {
		rec.GameID = &gameID.Int64
	}
	rec.GameName = nullableString(gameName)
	rec.GameDate = nullableString(gameDate)
	return &rec, nil
}

func scanPitchingRecord(scanner interface{ Scan(...any) error }) (*PitchingRecord, error) {
	var rec PitchingRecord
	var gameID sql.NullInt64
	var gameName, gameDate sql.NullString

	err := scanner.Scan(
		&rec.ID, &rec.PlayerID, &gameID, &gameName, &gameDate,
		&rec.Innings, &rec.EarnedRuns, &rec.Strikeouts, &rec.Walks,
		&rec.SnapshotERA, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if gameID.Valid {
		rec.GameID = &gameID.Int64
	}
	rec.GameName = nullableString(gameName)
	rec.GameDate = nullableString(gameDate)
	return &rec, nil
}

func sortBattingBoard(board []BattingLeaderboardRow) {
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].Average != board[j].Average {
			return board[i].Average > board[j].Average
		}
		if board[i].Hits != board[j].Hits {
			return board[i].Hits > board[j].Hits
		}
		if board[i].HomeRuns != board[j].HomeRuns {
			return board[i].HomeRuns > board[j].HomeRuns
		}
		return board[i].RunsBattedIn > board[j].RunsBattedIn
	})
}

func sortPitchingBoard(board []PitchingLeaderboardRow) {
	sort.SliceStable(board, func(i, j int) bool {
		if board[i].ERA != board[j].ERA {
			return board[i].ERA < board[j].ERA
		}
		return board[i].Strikeouts > board[j].Strikeouts
	})
}

func nullableString(s sql.NullString) *string {
	if s.Valid {
		return &s.String
	}
	return nil
}
