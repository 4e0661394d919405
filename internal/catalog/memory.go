package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryRepository serves the static mock dataset. Reads return copies so
// callers can never mutate the backing slice.
type memoryRepository struct {
	mu       sync.RWMutex
	products []Product
}

// NewMemoryRepository returns a repository seeded with the storefront dataset.
func NewMemoryRepository() Repository {
	seeded := make([]Product, len(seedProducts))
	copy(seeded, seedProducts)
	return &memoryRepository{products: seeded}
}

// NewEmptyMemoryRepository returns an unseeded repository for tests.
func NewEmptyMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) GetAll(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) Create(ctx context.Context, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.products = append(r.products, p)
	return p, nil
}

func (r *memoryRepository) Update(ctx context.Context, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}
