package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// RecomputeCounter 技能派生字段重算次数，result 取 changed / unchanged / error
	RecomputeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_recompute_total",
			Help: "Total number of skill derived-state recomputations",
		},
		[]string{"result"},
	)

	StatusTransitionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_status_transitions_total",
			Help: "Skill status changes caused by recomputation",
		},
		[]string{"from", "to"},
	)

	ConsistencyFaultCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "skill_consistency_faults_total",
			Help: "Skills whose stored hours diverged from their activity log",
		},
	)

	StatsCacheCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_stats_cache_total",
			Help: "Stats cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

// Init 注册指标，重复调用是安全的
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(RecomputeCounter)
		prometheus.MustRegister(StatusTransitionCounter)
		prometheus.MustRegister(ConsistencyFaultCounter)
		prometheus.MustRegister(StatsCacheCounter)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
