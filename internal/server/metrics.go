package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paletto",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests, by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "paletto",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds, by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})

	harmoniesGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paletto",
		Subsystem: "colour",
		Name:      "harmonies_generated_total",
		Help:      "Total harmony sets generated, by scheme.",
	}, []string{"scheme"})

	storedColours = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "paletto",
		Subsystem: "store",
		Name:      "saved_colours",
		Help:      "Number of saved colours in the store.",
	})

	storedPalettes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "paletto",
		Subsystem: "store",
		Name:      "palettes",
		Help:      "Number of palettes in the store.",
	})
)

func observeRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDurationSeconds.WithLabelValues(route).Observe(elapsed.Seconds())
}
