package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// Service is the admin-side product catalog. Every mutation persists
// the full product list in one overwrite.
type Service struct {
	repo   interfaces.ProductRepository
	logger logger.Logger
	now    func() time.Time
}

func NewService(repo interfaces.ProductRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, logger: lgr, now: time.Now}
}

var _ interfaces.CatalogService = (*Service)(nil)

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Products(ctx)
}

// Create assigns a time-derived identifier and appends the product.
// When no image is supplied a placeholder reference seeded by the
// product name is substituted.
func (s *Service) Create(ctx context.Context, cmd interfaces.CreateProductCommand) (*domain.Product, error) {
	product := domain.Product{
		ID:          domain.NewID(s.now()),
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Image:       cmd.Image,
		Category:    cmd.Category,
		Available:   cmd.Available,
	}
	if product.Image == "" {
		product.Image = domain.PlaceholderImage(product.Name)
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	products, err := s.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	products = append(products, product)

	if err := s.repo.SaveProducts(ctx, products); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}

	s.logger.Info("product_created", "Product created", "", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return &product, nil
}

// Update replaces the record matching the product's identifier.
func (s *Service) Update(ctx context.Context, product domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	products, err := s.repo.Products(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			found = true
			break
		}
	}
	if !found {
		return domain.ErrProductNotFound
	}

	return s.repo.SaveProducts(ctx, products)
}

func (s *Service) Delete(ctx context.Context, productID string) error {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return domain.ErrProductNotFound
	}

	if err := s.repo.SaveProducts(ctx, kept); err != nil {
		return err
	}

	s.logger.Info("product_deleted", "Product deleted", "", map[string]interface{}{
		"product_id": productID,
	})
	return nil
}

// ToggleAvailability flips the availability flag in place.
func (s *Service) ToggleAvailability(ctx context.Context, productID string) error {
	products, err := s.repo.Products(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range products {
		if products[i].ID == productID {
			products[i].Available = !products[i].Available
			found = true
			break
		}
	}
	if !found {
		return domain.ErrProductNotFound
	}

	return s.repo.SaveProducts(ctx, products)
}
