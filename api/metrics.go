package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess         = "success"
	resultNotFound        = "activity_not_found"
	resultAlreadyEnrolled = "already_enrolled"
	resultNotEnrolled     = "not_enrolled"
	resultError           = "error"
)

// unknownActivity labels results where the requested name is not known to be a real
// activity, so request paths cannot mint new series.
const unknownActivity = "unknown"

type Metrics struct {
	Signups         *prometheus.CounterVec
	Unregistrations *prometheus.CounterVec
}

// NewMetrics registers the API counters on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Signups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_signups_total",
				Help: "Total number of signup attempts by activity and result",
			},
			[]string{"activity", "result"},
		),
		Unregistrations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "activity_unregistrations_total",
				Help: "Total number of unregister attempts by activity and result",
			},
			[]string{"activity", "result"},
		),
	}
}
