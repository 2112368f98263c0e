package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel_simulation/internal/domain"
)

var (
	ComponentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelsim", Name: "components_created_total", Help: "Components built by factories."},
		[]string{"kind"},
	)
	ComponentsCloned = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelsim", Name: "components_cloned_total", Help: "Components copied from a prototype."},
		[]string{"kind"},
	)
	Interactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelsim", Name: "interactions_total", Help: "Component interactions."},
		[]string{"kind", "phase"}, // phase: opening|original|clone|payment|delivery
	)
	Payments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelsim", Name: "payments_total", Help: "Visitor payments."},
		[]string{"method"},
	)
	PaymentAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelsim", Name: "payment_amount_total", Help: "Sum of simulated payment amounts."},
		[]string{"method"},
	)
	DaysSimulated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "hotelsim", Name: "days_simulated_total", Help: "Simulated days completed."},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelsim", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelsim", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(ComponentsCreated, ComponentsCloned, Interactions, Payments, PaymentAmount,
		DaysSimulated, HTTPRequests, HTTPLatency)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// Recorder feeds simulation events into the package counters.
type Recorder struct{}

func NewRecorder() Recorder { return Recorder{} }

func (Recorder) ComponentCreated(k domain.Kind) { ComponentsCreated.WithLabelValues(k.String()).Inc() }
func (Recorder) ComponentCloned(k domain.Kind)  { ComponentsCloned.WithLabelValues(k.String()).Inc() }

func (Recorder) Interaction(k domain.Kind, phase string) {
	Interactions.WithLabelValues(k.String(), phase).Inc()
}

func (Recorder) Payment(m domain.PaymentMethod, amount float64) {
	Payments.WithLabelValues(string(m)).Inc()
	PaymentAmount.WithLabelValues(string(m)).Add(amount)
}

func (Recorder) DaySimulated() { DaysSimulated.Inc() }
