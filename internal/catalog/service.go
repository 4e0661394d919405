package catalog

import (
	"context"
	"time"

	"allergysafe-be/internal/logger"

	"go.uber.org/zap"
)

// ProductsPerPage matches the storefront grid size.
const ProductsPerPage = 8

type Service interface {
	List(ctx context.Context, opts ListOptions) (*ListResult, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, input NewProduct) (Product, error)
	Update(ctx context.Context, input UpdateProduct) (Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List filters the catalog by category and allergy tag, then slices the
// result into fixed-size pages.
func (s *service) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)
	start := time.Now()

	if opts.Page <= 0 {
		opts.Page = 1
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to load catalog", zap.Error(err))
		return nil, err
	}

	filtered := make([]Product, 0, len(all))
	for _, p := range all {
		if !matchCategory(p, opts.Category) {
			continue
		}
		if !matchAllergy(p, opts.Allergy) {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	totalPages := (total + ProductsPerPage - 1) / ProductsPerPage

	startIdx := (opts.Page - 1) * ProductsPerPage
	endIdx := startIdx + ProductsPerPage
	if startIdx > total {
		startIdx = total
	}
	if endIdx > total {
		endIdx = total
	}

	log.Debug("catalog listed",
		zap.String("category", opts.Category),
		zap.String("allergy", opts.Allergy),
		zap.Int("page", opts.Page),
		zap.Int("matched", total),
		zap.Duration("took", time.Since(start)),
	)

	return &ListResult{
		Items:      filtered[startIdx:endIdx],
		Page:       opts.Page,
		PerPage:    ProductsPerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, input NewProduct) (Product, error) {
	log := logger.FromCtx(ctx)

	if input.Name == "" {
		return Product{}, ErrInvalidName
	}
	if input.Price <= 0 {
		return Product{}, ErrInvalidPrice
	}
	if input.Category == "" || input.Category == CategoryAll {
		input.Category = "Maison"
	}

	created, err := s.repo.Create(ctx, Product{
		Name:        input.Name,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
		Description: input.Description,
		Materials:   input.Materials,
		Features:    input.Features,
		AllergyTags: input.AllergyTags,
		InStock:     input.InStock,
	})
	if err != nil {
		log.Error("failed to create product", zap.String("name", input.Name), zap.Error(err))
		return Product{}, err
	}

	log.Info("product created", zap.String("product_id", created.ID))
	return created, nil
}

func (s *service) Update(ctx context.Context, input UpdateProduct) (Product, error) {
	existing, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return Product{}, err
	}
	if existing == nil {
		return Product{}, ErrProductNotFound
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return Product{}, ErrInvalidPrice
		}
		existing.Price = *input.Price
	}
	if input.Category != nil {
		existing.Category = *input.Category
	}
	if input.Image != nil {
		existing.Image = *input.Image
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Materials != nil {
		existing.Materials = input.Materials
	}
	if input.Features != nil {
		existing.Features = input.Features
	}
	if input.AllergyTags != nil {
		existing.AllergyTags = input.AllergyTags
	}
	if input.InStock != nil {
		existing.InStock = *input.InStock
	}

	return s.repo.Update(ctx, *existing)
}

func matchCategory(p Product, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return p.Category == category
}

func matchAllergy(p Product, allergy string) bool {
	if allergy == "" {
		return true
	}
	for _, tag := range p.AllergyTags {
		if tag == allergy {
			return true
		}
	}
	return false
}
