package catalog

import (
	"context"
	"fmt"

	pkgerrors "github.com/angelmondragon/shopcart-backend/pkg/errors"
	"github.com/angelmondragon/shopcart-backend/pkg/logger"
	"github.com/angelmondragon/shopcart-backend/pkg/metrics"
	"github.com/angelmondragon/shopcart-backend/pkg/types"
)

// productLister is the upstream catalog collaborator.
type productLister interface {
	ListProducts(ctx context.Context) ([]types.Product, error)
}

// Service relays the upstream product catalog.
type Service interface {
	ListProducts(ctx context.Context) ([]types.Product, error)
}

type service struct {
	upstream productLister
	logg     *logger.Logger
	metrics  *metrics.CatalogMetrics
}

// NewService builds a catalog service over the upstream client.
func NewService(upstream productLister, logg *logger.Logger, m *metrics.CatalogMetrics) (Service, error) {
	if upstream == nil {
		return nil, fmt.Errorf("catalog upstream required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		upstream: upstream,
		logg:     logg,
		metrics:  m,
	}, nil
}

// ListProducts fetches the product list once per call; there is no caching and no retry.
func (s *service) ListProducts(ctx context.Context) ([]types.Product, error) {
	products, err := s.upstream.ListProducts(ctx)
	if err != nil {
		s.metrics.IncFetch(metrics.ResultError)
		if pkgerrors.As(err) == nil {
			err = pkgerrors.Wrap(pkgerrors.CodeUpstreamUnavailable, err, "failed to fetch products")
		}
		return nil, err
	}
	s.metrics.IncFetch(metrics.ResultOK)

	if products == nil {
		products = []types.Product{}
	}
	s.logg.Debug(s.logg.WithField(ctx, "count", len(products)), "catalog.fetched")
	return products, nil
}
