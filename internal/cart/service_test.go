package cart

import (
	"bytes"
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/angelmondragon/shopcart-backend/pkg/errors"
	"github.com/angelmondragon/shopcart-backend/pkg/logger"
	"github.com/angelmondragon/shopcart-backend/pkg/metrics"
	"github.com/angelmondragon/shopcart-backend/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	*Store
	err error
}

func (f failingRepo) Edit(int, int) error { return f.err }

func newTestService(t *testing.T, repo CartRepository) (Service, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	svc, err := NewService(repo, logger.Nop(), metrics.NewCartMetrics(reg))
	require.NoError(t, err)
	return svc, reg
}

func TestNewServiceRequiresRepo(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil, logger.Nop(), nil)
	require.Error(t, err)
}

func TestServiceMutationsAndSummary(t *testing.T) {
	t.Parallel()

	svc, reg := newTestService(t, NewStore())
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, product(1, "10")))
	require.NoError(t, svc.Add(ctx, product(1, "10")))
	require.NoError(t, svc.Add(ctx, product(2, "5")))
	require.NoError(t, svc.Add(ctx, product(3, "1")))
	require.NoError(t, svc.Edit(ctx, 3, 4))
	require.NoError(t, svc.Delete(ctx, 3))

	lines, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(lines))

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "25", summary.Total.String())

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, float64(2), gaugeValue(mfs, "cart_lines"))
	assert.Equal(t, float64(4), counterValue(mfs, "cart_mutations_total", "add", metrics.ResultOK))
	assert.Equal(t, float64(1), counterValue(mfs, "cart_mutations_total", "delete", metrics.ResultOK))
}

func TestServiceNotFoundIsSoft(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	reg := prometheus.NewRegistry()
	svc, err := NewService(NewStore(), logger.New(logger.Options{ServiceName: "test", Output: buf}), metrics.NewCartMetrics(reg))
	require.NoError(t, err)

	err = svc.Edit(context.Background(), 9, 1)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, NotFoundMessage, pkgerrors.As(err).Message())

	err = svc.Delete(context.Background(), 9)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	assert.NotContains(t, buf.String(), `"level":"error"`)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, float64(1), counterValue(mfs, "cart_mutations_total", "edit", metrics.ResultNotFound))
	assert.Equal(t, float64(1), counterValue(mfs, "cart_mutations_total", "delete", metrics.ResultNotFound))
}

func TestServiceUnexpectedRepoErrorIsLogged(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	repo := failingRepo{Store: NewStore(), err: errors.New("boom")}
	svc, err := NewService(repo, logger.New(logger.Options{ServiceName: "test", Output: buf}), nil)
	require.NoError(t, err)

	err = svc.Edit(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "cart.mutation_failed")
	assert.Contains(t, buf.String(), `"product_id":1`)
}

func TestServiceAddAcceptsAnyProduct(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, NewStore())
	require.NoError(t, svc.Add(context.Background(), types.Product{ID: 0}))

	lines, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 0, lines[0].Product.ID)
}

func gaugeValue(mfs []*dto.MetricFamily, name string) float64 {
	for _, mf := range mfs {
		if mf.GetName() == name && len(mf.GetMetric()) > 0 {
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	return -1
}

func counterValue(mfs []*dto.MetricFamily, name, op, result string) float64 {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			if labels["op"] == op && labels["result"] == result {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}
