package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// CartMetrics tracks the shared cart.
type CartMetrics struct {
	lines     prometheus.Gauge
	mutations *prometheus.CounterVec
}

// NewCartMetrics registers the cart collectors on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	lines := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cart_lines",
		Help: "Number of distinct products currently in the cart.",
	})
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation and result.",
	}, []string{"op", "result"})
	reg.MustRegister(lines, mutations)
	return &CartMetrics{
		lines:     lines,
		mutations: mutations,
	}
}

// SetLines records the current number of cart lines.
func (c *CartMetrics) SetLines(n int) {
	if c == nil || c.lines == nil {
		return
	}
	c.lines.Set(float64(n))
}

// IncMutation counts one cart mutation.
func (c *CartMetrics) IncMutation(op, result string) {
	if c == nil || c.mutations == nil {
		return
	}
	c.mutations.WithLabelValues(normalizeLabel(op), normalizeLabel(result)).Inc()
}
