package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DepositsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revshare_deposits_total",
			Help: "Total number of confirmed revenue deposits",
		},
		[]string{"source"},
	)

	DepositedAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revshare_deposited_amount_total",
			Help: "Total revenue deposited into the vault",
		},
		[]string{"source"},
	)

	DistributionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revshare_distributions_total",
			Help: "Total number of distribution attempts by outcome",
		},
		[]string{"status"},
	)

	DistributedAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "revshare_distributed_amount_total",
			Help: "Total amount moved from the vault into distribution rounds",
		},
	)

	DistributionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "revshare_distribution_duration_seconds",
			Help:    "Duration of distribution round creation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~41s
		},
	)

	EligibleWallets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "revshare_eligible_wallets",
			Help: "Number of eligible wallets in the latest distribution round",
		},
	)

	ClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revshare_claims_total",
			Help: "Total number of reward claims by outcome",
		},
		[]string{"status"},
	)

	ClaimedAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "revshare_claimed_amount_total",
			Help: "Total amount of rewards claimed",
		},
	)

	ExpiredDistributionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revshare_expired_distributions_total",
			Help: "Total number of distribution rounds expired by policy",
		},
		[]string{"policy"},
	)

	ReclaimedAmount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "revshare_reclaimed_amount_total",
			Help: "Total unclaimed amount returned to the vault on expiry",
		},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revshare_events_published_total",
			Help: "Total number of published events",
		},
		[]string{"event_type", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revshare_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "revshare_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "revshare_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Outcome labels shared by the counters above
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusError   = "error"
)

// Middleware records request metrics using the matched route as the path label
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
