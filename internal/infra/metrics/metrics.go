package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var waitDurationSeconds = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "kbs_deployer_wait_duration_seconds",
		Help:    "Time spent in a readiness wait, by stage and outcome.",
		Buckets: []float64{1, 5, 10, 20, 30, 60, 120, 240, 360},
	},
	[]string{"stage", "outcome"},
)

var deploymentsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kbs_deployer_deployments_total",
		Help: "Total number of KBS deployment attempts, by final state.",
	},
	[]string{"state"},
)

var janitorDeletionsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kbs_deployer_janitor_deletions_total",
		Help: "Total number of expired clusters removed by the janitor, by scope (group or resource) and result.",
	},
	[]string{"scope", "result"},
)

// RecordWait observes the duration of one readiness wait.
func RecordWait(stage string, ok bool, d time.Duration) {
	outcome := "timeout"
	if ok {
		outcome = "ready"
	}

	waitDurationSeconds.WithLabelValues(stage, outcome).Observe(d.Seconds())
}

// RecordDeployment counts a finished deployment attempt by its final state.
func RecordDeployment(state string) {
	deploymentsTotal.WithLabelValues(state).Inc()
}

// RecordJanitorDeletion counts one janitor deletion attempt.
func RecordJanitorDeletion(scope string, err error) {
	result := "deleted"
	if err != nil {
		result = "failed"
	}

	janitorDeletionsTotal.WithLabelValues(scope, result).Inc()
}

// WriteTextfile dumps the default registry in the node-exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
