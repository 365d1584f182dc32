package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.Observe("GET", "/cart", 200, 250*time.Millisecond)
	m.Observe("GET", "/cart", 200, 50*time.Millisecond)
	m.Observe("POST", "", 500, time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "http_requests_total", map[string]string{"method": "GET", "route": "/cart", "status": "200"}); err != nil {
		t.Fatalf("fetch requests: %v", err)
	} else if got != 2 {
		t.Fatalf("expected 2 requests, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "http_requests_total", map[string]string{"route": "unknown", "status": "500"}); err != nil {
		t.Fatalf("fetch unknown route: %v", err)
	} else if got != 1 {
		t.Fatalf("expected 1 unknown-route request, got %f", got)
	}

	mf := findMetricFamily(mfs, "http_request_duration_seconds")
	if mf == nil {
		t.Fatalf("duration histogram missing")
	}
	var sum float64
	for _, metric := range mf.GetMetric() {
		sum += metric.GetHistogram().GetSampleSum()
	}
	if sum <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", sum)
	}
}

func TestCartMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCartMetrics(reg)
	m.SetLines(3)
	m.IncMutation("add", ResultOK)
	m.IncMutation("edit", ResultNotFound)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	lines := findMetricFamily(mfs, "cart_lines")
	if lines == nil || lines.GetMetric()[0].GetGauge().GetValue() != 3 {
		t.Fatalf("expected cart_lines=3")
	}
	if got, err := fetchCounterValue(mfs, "cart_mutations_total", map[string]string{"op": "edit", "result": ResultNotFound}); err != nil || got != 1 {
		t.Fatalf("expected one not_found edit, got %f err=%v", got, err)
	}
	if findMetricFamily(mfs, "catalog_fetch_total") != nil {
		t.Fatalf("catalog counter belongs to CatalogMetrics")
	}
}

func TestCatalogMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCatalogMetrics(reg)
	m.IncFetch(ResultOK)
	m.IncFetch(ResultError)
	m.IncFetch(ResultError)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchCounterValue(mfs, "catalog_fetch_total", map[string]string{"result": ResultError}); err != nil || got != 2 {
		t.Fatalf("expected two failed catalog fetches, got %f err=%v", got, err)
	}
	if got, err := fetchCounterValue(mfs, "catalog_fetch_total", map[string]string{"result": ResultOK}); err != nil || got != 1 {
		t.Fatalf("expected one catalog fetch, got %f err=%v", got, err)
	}
}

func TestCartAndCatalogMetricsShareRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCartMetrics(reg)
	NewCatalogMetrics(reg)
	NewHTTPMetrics(reg)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if findMetricFamily(mfs, "cart_lines") == nil {
		t.Fatalf("expected cart_lines to be registered")
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	NewHTTPMetrics(nil).Observe("GET", "/", 200, time.Second)
	cart := NewCartMetrics(nil)
	cart.SetLines(1)
	cart.IncMutation("add", ResultOK)
	NewCatalogMetrics(nil).IncFetch(ResultOK)

	var nilCart *CartMetrics
	nilCart.SetLines(2)
	var nilCatalog *CatalogMetrics
	nilCatalog.IncFetch(ResultError)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	for name, value := range want {
		found := false
		for _, pair := range pairs {
			if pair.GetName() == name && pair.GetValue() == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
