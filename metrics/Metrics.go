package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var TotalRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "euscan_http_requests_total",
		Help: "Number of http requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "euscan_http_request_duration_seconds_histogram",
		Buckets: []float64{
			0.05, // 50 ms
			0.1,
			0.25,
			0.5,
			1,
			2.5,
			5,
		},
	},
	[]string{"path", "code", "method"},
)

var TrackedPackages = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "euscan_tracked_packages",
		Help: "Packages known at the last counters snapshot",
	},
	[]string{},
)

var OutdatedPackages = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "euscan_outdated_packages",
		Help: "Packages with upstream versions missing from gentoo and overlays",
	},
	[]string{},
)

var CountersJobDuration = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "euscan_counters_job_duration_seconds",
		Help: "Duration of the last counters snapshot job",
	},
	[]string{},
)

var WorldScans = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "euscan_world_scans_total",
		Help: "Number of world scans by result format",
	},
	[]string{"format"},
)

var FavoriteChanges = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "euscan_favorite_changes_total",
		Help: "Number of watch and unwatch actions",
	},
	[]string{"kind", "action"},
)

func RegisterAllPrometheusApplicationMetrics() {
	prometheus.Register(TotalRequests)
	prometheus.Register(HttpDuration)
	prometheus.Register(TrackedPackages)
	prometheus.Register(OutdatedPackages)
	prometheus.Register(CountersJobDuration)
	prometheus.Register(WorldScans)
	prometheus.Register(FavoriteChanges)
}
