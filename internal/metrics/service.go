package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Metrics = (*Service)(nil)

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlaysRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "playdata_plays_recorded_total",
			Help: "The total number of plays successfully recorded.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "playdata_validation_failures_total",
			Help: "The total number of operations rejected by validation.",
		}),
		MatchesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "playdata_matches_started_total",
			Help: "The total number of match sessions started.",
		}),
		StoreWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "playdata_store_write_failures_total",
			Help: "The total number of failed write-throughs to the persistent store.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "playdata_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlaysRecorded,
		s.ValidationFailures,
		s.MatchesStarted,
		s.StoreWriteFailures,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncPlaysRecorded() {
	s.PlaysRecorded.Inc()
}

func (s *Service) IncValidationFailures() {
	s.ValidationFailures.Inc()
}

func (s *Service) IncMatchesStarted() {
	s.MatchesStarted.Inc()
}

func (s *Service) IncStoreWriteFailures() {
	s.StoreWriteFailures.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
