package cart

import (
	"context"

	"allergysafe-be/internal/catalog"
	"allergysafe-be/internal/logger"
	"allergysafe-be/internal/metrics"
	"allergysafe-be/internal/money"

	"go.uber.org/zap"
)

// Summary is the cart state exposed to the transport layer.
type Summary struct {
	Items      []LineItem   `json:"items"`
	TotalItems int          `json:"total_items"`
	TotalPrice money.Amount `json:"total_price"`
}

// Service defines the business logic for the cart.
type Service interface {
	Add(ctx context.Context, productID string) (*Summary, error)
	Remove(ctx context.Context, productID string) (*Summary, error)
	Clear(ctx context.Context) (*Summary, error)
	Get(ctx context.Context) (*Summary, error)
}

type service struct {
	store       *Store
	catalogRepo catalog.Repository
	adds        metrics.Counter
}

// NewService creates a cart service over the given store. Products are
// resolved through the catalog before they enter the cart.
func NewService(store *Store, catalogRepo catalog.Repository) Service {
	return &service{store: store, catalogRepo: catalogRepo}
}

func (s *service) Add(ctx context.Context, productID string) (*Summary, error) {
	log := logger.FromCtx(ctx)

	if productID == "" {
		return nil, ErrInvalidProductID
	}

	p, err := s.catalogRepo.GetByID(ctx, productID)
	if err != nil {
		log.Error("failed to resolve product", zap.String("product_id", productID), zap.Error(err))
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	s.store.AddItem(*p)
	s.adds.Inc()

	log.Info("cart item added",
		zap.String("product_id", productID),
		zap.Int("total_items", s.store.TotalItems()),
	)
	return s.summary(), nil
}

func (s *service) Remove(ctx context.Context, productID string) (*Summary, error) {
	if productID == "" {
		return nil, ErrInvalidProductID
	}

	s.store.RemoveItem(productID)
	return s.summary(), nil
}

func (s *service) Clear(ctx context.Context) (*Summary, error) {
	s.store.Clear()
	return s.summary(), nil
}

func (s *service) Get(ctx context.Context) (*Summary, error) {
	return s.summary(), nil
}

func (s *service) summary() *Summary {
	return &Summary{
		Items:      s.store.Items(),
		TotalItems: s.store.TotalItems(),
		TotalPrice: s.store.TotalPrice(),
	}
}
