package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EffectsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "qualitygate_effects_dispatched_total",
	Help: "The total number of dispatched side effects",
}, []string{"channel"})

var EffectsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "qualitygate_effects_failed_total",
	Help: "The total number of side effects which failed",
}, []string{"channel"})
