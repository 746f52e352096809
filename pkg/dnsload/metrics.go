package dnsload

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dnsRequestsDurationMetrics = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dnsblast",
		Name:      "dns_requests_duration_seconds",
		Help:      "DNS request duration in seconds",
	}, []string{"type"})

	dnsResponseTotalMetrics = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dnsblast",
		Name:      "dns_response_total",
		Help:      "The total number DNS responses",
	}, []string{"type"})

	errorsTotalMetrics = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dnsblast",
		Name:      "errors_total",
		Help:      "The total number errors",
	}, []string{})
)
