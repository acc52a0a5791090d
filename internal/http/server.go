package http

import (
	"net/http"

	"github.com/mauv0809/scorebook/internal/auth"
	"github.com/mauv0809/scorebook/internal/config"
	"github.com/mauv0809/scorebook/internal/metrics"
	"github.com/mauv0809/scorebook/internal/roster"
	"github.com/mauv0809/scorebook/internal/schedule"
	"github.com/mauv0809/scorebook/internal/slack"
	"github.com/mauv0809/scorebook/internal/stats"
)

func NewServer(players roster.PlayerStore, games schedule.GameStore, statsStore stats.StatsStore, metricsSvc metrics.Metrics, counters metrics.CounterStore, metricsHandler http.Handler, cfg config.Config, verifier *auth.Verifier, notifier slack.Notifier) *Server {
	server := &Server{
		Players:        players,
		Games:          games,
		Stats:          statsStore,
		Metrics:        metricsSvc,
		Counters:       counters,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Auth:           verifier,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Read endpoints are public; mutating endpoints additionally require an
	// admin token via s.requireAdmin.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("POST /login", Chain(s.LoginHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.AddPlayerHandler(), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("GET /players/{id}", Chain(s.GetPlayerHandler(), paramsMiddleware))
	s.Router.Handle("PUT /players/{id}", Chain(s.UpdatePlayerHandler(), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("DELETE /players/{id}", Chain(s.DeletePlayerHandler(), paramsMiddleware, s.requireAdmin))

	s.Router.Handle("GET /games", Chain(s.ListGamesHandler(), paramsMiddleware))
	s.Router.Handle("POST /games", Chain(s.AddGameHandler(), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("GET /games/{id}", Chain(s.GetGameHandler(), paramsMiddleware))
	s.Router.Handle("PUT /games/{id}", Chain(s.UpdateGameHandler(), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("DELETE /games/{id}", Chain(s.DeleteGameHandler(), paramsMiddleware, s.requireAdmin))

	s.Router.Handle("POST /batting", Chain(s.AddBattingHandler(), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("PUT /batting/{id}", Chain(s.UpdateBattingHandler(), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("DELETE /batting/{id}", Chain(s.DeleteBattingHandler(), paramsMiddleware, s.requireAdmin))

	s.Router.Handle("POST /pitching", Chain(s.AddPitchingHandler(), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("PUT /pitching/{id}", Chain(s.UpdatePitchingHandler(), paramsMiddleware, s.requireAdmin))
	s.Router.Handle("DELETE /pitching/{id}", Chain(s.DeletePitchingHandler(), paramsMiddleware, s.requireAdmin))

	s.Router.Handle("GET /leaderboard", Chain(s.LeaderboardHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
