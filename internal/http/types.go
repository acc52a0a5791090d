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

type Server struct {
	Players        roster.PlayerStore
	Games          schedule.GameStore
	Stats          stats.StatsStore
	Metrics        metrics.Metrics
	Counters       metrics.CounterStore
	MetricsHandler http.Handler
	Cfg            config.Config
	Auth           *auth.Verifier
	Notifier       slack.Notifier
	Router         *http.ServeMux
}
