package metrics

import "github.com/prometheus/client_golang/prometheus"

// CatalogMetrics counts upstream catalog fetches.
type CatalogMetrics struct {
	fetches *prometheus.CounterVec
}

func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_fetch_total",
		Help: "Upstream catalog fetches by result.",
	}, []string{"result"})
	reg.MustRegister(fetches)
	return &CatalogMetrics{fetches: fetches}
}

// IncFetch counts one upstream catalog fetch.
func (c *CatalogMetrics) IncFetch(result string) {
	if c == nil || c.fetches == nil {
		return
	}
	c.fetches.WithLabelValues(normalizeLabel(result)).Inc()
}
