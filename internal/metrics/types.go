package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	PlaysRecorded      prometheus.Counter
	ValidationFailures prometheus.Counter
	MatchesStarted     prometheus.Counter
	StoreWriteFailures prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
