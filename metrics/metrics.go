package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the service's Prometheus instruments. Everything is
// registered on the registerer passed to New, so tests can use an isolated
// registry instead of the process-global one.
type Metrics struct {
	CheckinsTotal   prometheus.Counter
	CheckoutsTotal  prometheus.Counter
	RejectionsTotal *prometheus.CounterVec
	RoomsTotal      prometheus.Gauge
	RoomsOccupied   prometheus.Gauge
	RequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CheckinsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "hotel_checkins_total",
			Help: "Total number of completed guest check-ins",
		}),

		CheckoutsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "hotel_checkouts_total",
			Help: "Total number of completed guest check-outs",
		}),

		RejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hotel_registry_rejections_total",
			Help: "Registry operations rejected by validation or state rules",
		}, []string{"operation"}),

		RoomsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hotel_rooms_total",
			Help: "Number of rooms in the registry",
		}),

		RoomsOccupied: factory.NewGauge(prometheus.GaugeOpts{
			Name: "hotel_rooms_occupied",
			Help: "Number of rooms with an active stay",
		}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hotel_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// SetOccupancy pushes a registry snapshot into the room gauges.
func (m *Metrics) SetOccupancy(total, occupied int) {
	m.RoomsTotal.Set(float64(total))
	m.RoomsOccupied.Set(float64(occupied))
}
