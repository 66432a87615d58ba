package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	})
	unregistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
	lastSignupGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "last_signup_timestamp_seconds",
		Help:      "Unix timestamp of the most recent signup.",
	})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, participantsGauge, lastSignupGauge)
}

// RecordSignup increments the signup counter and moves the watermark gauge.
func RecordSignup(ts time.Time) {
	signupsTotal.Inc()
	if ts.IsZero() {
		return
	}
	lastSignupGauge.Set(float64(ts.Unix()))
}

// RecordUnregistration increments the unregistration counter.
func RecordUnregistration() {
	unregistrationsTotal.Inc()
}

// SetParticipants updates the roster-size gauge for one activity.
func SetParticipants(activity string, count int) {
	participantsGauge.WithLabelValues(activity).Set(float64(count))
}
