package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP request metrics
var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dineboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dineboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Dashboard KPI gauges, refreshed on every KPI computation
var (
	ActiveOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dineboard_active_orders",
		Help: "Orders currently in a non-terminal status",
	})

	TodayRevenue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dineboard_today_revenue",
		Help: "Sum of paid order totals created today",
	})

	OccupancyRatio = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dineboard_occupancy_ratio",
		Help: "Seated guests divided by total table capacity",
	})

	LowStockItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dineboard_low_stock_items",
		Help: "Inventory items at or below their minimum stock level",
	})
)
