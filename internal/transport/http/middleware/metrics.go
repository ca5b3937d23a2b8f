package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "loyalty",
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status",
		},
		[]string{"route", "method", "status"},
	)
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "loyalty",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"route", "method"},
	)
	reqInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "loyalty",
		Name:      "http_requests_in_flight",
		Help:      "Requests currently being served",
	})
)

func init() { prometheus.MustRegister(reqTotal, reqDuration, reqInFlight) }

// Metrics records per-route counters and latency. Unmatched paths fall back
// to the raw URL so 404 traffic stays visible.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInFlight.Inc()
		c.Next()
		reqInFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		m := c.Request.Method
		reqTotal.WithLabelValues(route, m, strconv.Itoa(c.Writer.Status())).Inc()
		reqDuration.WithLabelValues(route, m).Observe(time.Since(start).Seconds())
	}
}
