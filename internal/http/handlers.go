package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/scorebook/internal/auth"
	"github.com/mauv0809/scorebook/internal/roster"
	"github.com/mauv0809/scorebook/internal/schedule"
	"github.com/mauv0809/scorebook/internal/stats"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	type request struct {
		Code string `json:"code"`
	}
	type response struct {
		Token string `json:"token"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		token, err := s.Auth.Login(req.Code)
		if errors.Is(err, auth.ErrInvalidCode) {
			log.Warn("Rejected login attempt")
			respondError(w, http.StatusUnauthorized, "invalid admin code")
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, "login failed")
			return
		}
		if s.Counters != nil {
			s.Counters.Increment("logins")
		}
		respondJSON(w, http.StatusOK, response{Token: token})
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("q"); q != "" {
			players, err := s.Players.SearchPlayers(q, 20)
			if err != nil {
				respondStoreError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, players)
			return
		}
		players, err := s.Players.ListPlayers()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req roster.NewPlayer
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}
		req.Position = normalize(req.Position)
		req.Team = normalize(req.Team)

		player, err := s.Players.AddPlayer(req)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, player)
	}
}

// playerDetail bundles everything the player page needs in one response.
type playerDetail struct {
	Player         roster.Player          `json:"player"`
	Batting        []stats.BattingRecord  `json:"batting"`
	Pitching       []stats.PitchingRecord `json:"pitching"`
	BattingTotals  stats.BattingTotals    `json:"batting_totals"`
	PitchingTotals stats.PitchingTotals   `json:"pitching_totals"`
	Charts         chartSeries            `json:"charts"`
}

// chartSeries holds the per-record series the frontend plots, aligned with
// the batting and pitching histories.
type chartSeries struct {
	GameAverages      []float64 `json:"game_averages"`
	CumulativeHR      []int     `json:"cumulative_hr"`
	CumulativeRBI     []int     `json:"cumulative_rbi"`
	GameERAs          []float64 `json:"game_eras"`
	CumulativeSO      []int     `json:"cumulative_so"`
	CumulativeInnings []float64 `json:"cumulative_innings"`
}

func buildChartSeries(batting []stats.BattingRecord, pitching []stats.PitchingRecord) chartSeries {
	series := chartSeries{
		GameAverages:      make([]float64, 0, len(batting)),
		CumulativeHR:      make([]int, 0, len(batting)),
		CumulativeRBI:     make([]int, 0, len(batting)),
		GameERAs:          make([]float64, 0, len(pitching)),
		CumulativeSO:      make([]int, 0, len(pitching)),
		CumulativeInnings: make([]float64, 0, len(pitching)),
	}
	var hr, rbi int
	for _, rec := range batting {
		hr += rec.HomeRuns
		rbi += rec.RunsBattedIn
		series.GameAverages = append(series.GameAverages, stats.Average(rec.Hits, rec.AtBats))
		series.CumulativeHR = append(series.CumulativeHR, hr)
		series.CumulativeRBI = append(series.CumulativeRBI, rbi)
	}
	var so int
	var innings float64
	for _, rec := range pitching {
		so += rec.Strikeouts
		innings += rec.Innings
		series.GameERAs = append(series.GameERAs, stats.ERA(rec.EarnedRuns, rec.Innings))
		series.CumulativeSO = append(series.CumulativeSO, so)
		series.CumulativeInnings = append(series.CumulativeInnings, math.Round(innings*10)/10)
	}
	return series
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid player id")
			return
		}
		player, err := s.Players.GetPlayer(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		batting, err := s.Stats.BattingHistory(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		pitching, err := s.Stats.PitchingHistory(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		battingTotals, err := s.Stats.BattingTotals(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		pitchingTotals, err := s.Stats.PitchingTotals(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, playerDetail{
			Player:         *player,
			Batting:        batting,
			Pitching:       pitching,
			BattingTotals:  battingTotals,
			PitchingTotals: pitchingTotals,
			Charts:         buildChartSeries(batting, pitching),
		})
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid player id")
			return
		}
		var req roster.NewPlayer
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}
		req.Position = normalize(req.Position)
		req.Team = normalize(req.Team)

		player, err := s.Players.UpdatePlayer(id, req)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid player id")
			return
		}
		if err := s.Players.DeletePlayer(id); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ListGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := s.Games.ListGames()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, games)
	}
}

func (s *Server) AddGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req schedule.NewGame
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}
		req.Date = normalize(req.Date)
		req.Location = normalize(req.Location)

		game, err := s.Games.AddGame(req)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if s.Notifier != nil {
			if err := s.Notifier.GameCreated(game); err != nil {
				log.Warn("Failed to announce new game", "gameID", game.ID, "error", err)
			}
		}
		respondJSON(w, http.StatusCreated, game)
	}
}

// gameDetail bundles a game with the lines recorded against it.
type gameDetail struct {
	Game     schedule.Game                 `json:"game"`
	Batting  []stats.BattingLeaderboardRow `json:"batting"`
	Pitching []stats.PitchingLeaderboardRow `json:"pitching"`
}

func (s *Server) GetGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid game id")
			return
		}
		game, err := s.Games.GetGame(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		batting, err := s.Stats.GameBattingLines(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		pitching, err := s.Stats.GamePitchingLines(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, gameDetail{Game: *game, Batting: batting, Pitching: pitching})
	}
}

func (s *Server) UpdateGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid game id")
			return
		}
		var req schedule.NewGame
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}
		req.Date = normalize(req.Date)
		req.Location = normalize(req.Location)

		game, err := s.Games.UpdateGame(id, req)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		// A date change shifts every record tied to this game in the
		// chronological order, so affected players need fresh snapshots.
		if err := s.recomputeForGame(id); err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, game)
	}
}

func (s *Server) DeleteGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid game id")
			return
		}
		// Affected players must be captured before the delete severs the
		// record-to-game links.
		batters, pitchers, err := s.Stats.PlayersWithRecordsForGame(id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if err := s.Games.DeleteGame(id); err != nil {
			respondStoreError(w, err)
			return
		}
		if err := s.recomputePlayers(batters, pitchers); err != nil {
			respondStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) recomputeForGame(gameID int64) error {
	batters, pitchers, err := s.Stats.PlayersWithRecordsForGame(gameID)
	if err != nil {
		return err
	}
	return s.recomputePlayers(batters, pitchers)
}

func (s *Server) recomputePlayers(batters, pitchers []int64) error {
	for _, playerID := range batters {
		if err := s.Stats.RecomputeBattingSnapshots(playerID); err != nil {
			return err
		}
		s.Metrics.IncSnapshotRecomputes()
	}
	for _, playerID := range pitchers {
		if err := s.Stats.RecomputePitchingSnapshots(playerID); err != nil {
			return err
		}
		s.Metrics.IncSnapshotRecomputes()
	}
	return nil
}

func (s *Server) AddBattingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stats.NewBattingRecord
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := validateBatting(req); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		start := time.Now()
		rec, err := s.Stats.AddBattingRecord(req)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		s.recordWrite(start)
		s.notifyBatting(rec)
		respondJSON(w, http.StatusCreated, rec)
	}
}

func (s *Server) UpdateBattingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid record id")
			return
		}
		var req stats.NewBattingRecord
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := validateBatting(req); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		start := time.Now()
		rec, err := s.Stats.UpdateBattingRecord(id, req)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		s.recordWrite(start)
		respondJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) DeleteBattingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid record id")
			return
		}
		start := time.Now()
		if err := s.Stats.DeleteBattingRecord(id); err != nil {
			respondStoreError(w, err)
			return
		}
		s.recordWrite(start)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) AddPitchingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req stats.NewPitchingRecord
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := validatePitching(req); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		start := time.Now()
		rec, err := s.Stats.AddPitchingRecord(req)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		s.recordWrite(start)
		s.notifyPitching(rec)
		respondJSON(w, http.StatusCreated, rec)
	}
}

func (s *Server) UpdatePitchingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid record id")
			return
		}
		var req stats.NewPitchingRecord
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := validatePitching(req); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		start := time.Now()
		rec, err := s.Stats.UpdatePitchingRecord(id, req)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		s.recordWrite(start)
		respondJSON(w, http.StatusOK, rec)
	}
}

func (s *Server) DeletePitchingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid record id")
			return
		}
		start := time.Now()
		if err := s.Stats.DeletePitchingRecord(id); err != nil {
			respondStoreError(w, err)
			return
		}
		s.recordWrite(start)
		w.WriteHeader(http.StatusNoContent)
	}
}

// leaderboards is the combined response for the leaderboard page.
type leaderboards struct {
	Batting  []stats.BattingLeaderboardRow  `json:"batting"`
	Pitching []stats.PitchingLeaderboardRow `json:"pitching"`
}

func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if raw := r.URL.Query().Get("game_id"); raw != "" {
			gameID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid game id")
				return
			}
			batting, err := s.Stats.GameBattingLines(gameID)
			if err != nil {
				respondStoreError(w, err)
				return
			}
			pitching, err := s.Stats.GamePitchingLines(gameID)
			if err != nil {
				respondStoreError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, leaderboards{Batting: batting, Pitching: pitching})
			return
		}
		batting, err := s.Stats.BattingLeaderboard()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		pitching, err := s.Stats.PitchingLeaderboard()
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, leaderboards{Batting: batting, Pitching: pitching})
	}
}

func (s *Server) recordWrite(start time.Time) {
	s.Metrics.IncRecordWrites()
	s.Metrics.IncSnapshotRecomputes()
	s.Metrics.ObserveWriteDuration(time.Since(start).Seconds())
	if s.Counters != nil {
		s.Counters.Increment("record_writes")
	}
}

func (s *Server) notifyBatting(rec *stats.BattingRecord) {
	if s.Notifier == nil {
		return
	}
	player, err := s.Players.GetPlayer(rec.PlayerID)
	if err != nil {
		log.Warn("Failed to load player for notification", "playerID", rec.PlayerID, "error", err)
		return
	}
	if err := s.Notifier.BattingRecorded(player.Name, rec); err != nil {
		log.Warn("Failed to announce batting line", "playerID", rec.PlayerID, "error", err)
	}
}

func (s *Server) notifyPitching(rec *stats.PitchingRecord) {
	if s.Notifier == nil {
		return
	}
	player, err := s.Players.GetPlayer(rec.PlayerID)
	if err != nil {
		log.Warn("Failed to load player for notification", "playerID", rec.PlayerID, "error", err)
		return
	}
	if err := s.Notifier.PitchingRecorded(player.Name, rec); err != nil {
		log.Warn("Failed to announce pitching line", "playerID", rec.PlayerID, "error", err)
	}
}

func validateBatting(req stats.NewBattingRecord) string {
	if req.PlayerID <= 0 {
		return "player_id is required"
	}
	if req.AtBats < 0 || req.Hits < 0 || req.HomeRuns < 0 || req.RunsBattedIn < 0 {
		return "counting stats cannot be negative"
	}
	if req.Hits > req.AtBats {
		return "hits cannot exceed at-bats"
	}
	return ""
}

func validatePitching(req stats.NewPitchingRecord) string {
	if req.PlayerID <= 0 {
		return "player_id is required"
	}
	if req.Innings < 0 {
		return "innings cannot be negative"
	}
	if req.EarnedRuns < 0 || req.Strikeouts < 0 || req.Walks < 0 {
		return "counting stats cannot be negative"
	}
	return ""
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// normalize trims a free-form field and collapses blank input to nil so the
// database stores NULL rather than an empty string.
func normalize(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roster.ErrNotFound),
		errors.Is(err, schedule.ErrNotFound),
		errors.Is(err, stats.ErrRecordNotFound),
		errors.Is(err, stats.ErrPlayerNotFound),
		errors.Is(err, stats.ErrGameNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, roster.ErrDuplicateName):
		respondError(w, http.StatusConflict, err.Error())
	default:
		log.Error("Unhandled store error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
