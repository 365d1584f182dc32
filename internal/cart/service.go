package cart

import (
	"context"
	"fmt"

	pkgerrors "github.com/angelmondragon/shopcart-backend/pkg/errors"
	"github.com/angelmondragon/shopcart-backend/pkg/logger"
	"github.com/angelmondragon/shopcart-backend/pkg/metrics"
	"github.com/angelmondragon/shopcart-backend/pkg/types"
)

const (
	opAdd    = "add"
	opEdit   = "edit"
	opDelete = "delete"
)

// Service exposes the shared cart operations.
type Service interface {
	List(ctx context.Context) ([]Line, error)
	Add(ctx context.Context, product types.Product) error
	Edit(ctx context.Context, productID, quantity int) error
	Delete(ctx context.Context, productID int) error
	Summary(ctx context.Context) (Summary, error)
}

type service struct {
	repo    CartRepository
	logg    *logger.Logger
	metrics *metrics.CartMetrics
}

// NewService builds a cart service backed by the provided repository.
func NewService(repo CartRepository, logg *logger.Logger, m *metrics.CartMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		repo:    repo,
		logg:    logg,
		metrics: m,
	}, nil
}

func (s *service) List(ctx context.Context) ([]Line, error) {
	return s.repo.List(), nil
}

func (s *service) Add(ctx context.Context, product types.Product) error {
	lines := s.repo.Add(product)
	s.metrics.SetLines(lines)
	s.metrics.IncMutation(opAdd, metrics.ResultOK)
	s.logg.Debug(s.logg.WithProductID(ctx, product.ID), "cart.added")
	return nil
}

func (s *service) Edit(ctx context.Context, productID, quantity int) error {
	ctx = s.logg.WithProductID(ctx, productID)
	if err := s.repo.Edit(productID, quantity); err != nil {
		s.recordFailure(ctx, opEdit, err)
		return err
	}
	s.metrics.IncMutation(opEdit, metrics.ResultOK)
	s.logg.Debug(s.logg.WithField(ctx, "quantity", quantity), "cart.quantity_updated")
	return nil
}

func (s *service) Delete(ctx context.Context, productID int) error {
	ctx = s.logg.WithProductID(ctx, productID)
	lines, err := s.repo.Delete(productID)
	if err != nil {
		s.recordFailure(ctx, opDelete, err)
		return err
	}
	s.metrics.SetLines(lines)
	s.metrics.IncMutation(opDelete, metrics.ResultOK)
	s.logg.Debug(ctx, "cart.deleted")
	return nil
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	return Summarize(s.repo.List()), nil
}

func (s *service) recordFailure(ctx context.Context, op string, err error) {
	if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		s.metrics.IncMutation(op, metrics.ResultNotFound)
		return
	}
	s.metrics.IncMutation(op, metrics.ResultError)
	s.logg.Error(s.logg.WithField(ctx, "op", op), "cart.mutation_failed", err)
}
