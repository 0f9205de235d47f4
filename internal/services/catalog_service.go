// internal/services/catalog_service.go
package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/parisollie/tienda-backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService owns the compiled-in product catalog. The six entries are
// constructed once and returned in the same order for the process lifetime;
// there are no mutation operations and catalog access cannot fail.
type CatalogService struct {
	products []models.Product
	byID     map[uuid.UUID]models.Product
}

func NewCatalogService() *CatalogService {
	products := []models.Product{
		models.NewProduct(
			"Designer Handbag",
			decimal.NewFromFloat(149.99),
			"https://picsum.photos/seed/handbag/400/400",
			"Hand-stitched leather handbag with a gold-tone clasp.",
			4.8,
		),
		models.NewProduct(
			"Sports Shoes",
			decimal.NewFromFloat(89.99),
			"https://picsum.photos/seed/sneakers/400/400",
			"Lightweight running trainers with a durable rubber sole.",
			4.5,
		),
		models.NewProduct(
			"Wireless Headphones",
			decimal.NewFromFloat(129.99),
			"https://picsum.photos/seed/audio/400/400",
			"Over-the-head audio with active noise cancelling and 30-hour battery.",
			4.6,
		),
		models.NewProduct(
			"Smart Watch",
			decimal.NewFromFloat(199.99),
			"https://picsum.photos/seed/watch/400/400",
			"Fitness tracking watch with pulse monitor and built-in GPS.",
			4.3,
		),
		models.NewProduct(
			"Classic Sunglasses",
			decimal.NewFromFloat(59.99),
			"https://picsum.photos/seed/shades/400/400",
			"Polarized sunglasses with a matte black frame.",
			4.1,
		),
		models.NewProduct(
			"Ceramic Mug",
			decimal.NewFromFloat(14.99),
			"https://picsum.photos/seed/mug/400/400",
			"Stoneware mug, 350 ml, dishwasher safe.",
			4.9,
		),
	}

	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &CatalogService{
		products: products,
		byID:     byID,
	}
}

// List returns the full catalog in its fixed order.
func (s *CatalogService) List() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogService) Get(id uuid.UUID) (models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Search filters the catalog by the given query.
func (s *CatalogService) Search(query string) []models.Product {
	return FilterProducts(s.products, query)
}

// FilterProducts returns, in original relative order, the products whose
// name or description contains the query as a case-insensitive substring.
// Matching uses Unicode case folding rather than ASCII lowering, so "MAÑANA"
// matches "mañana". A trimmed-empty query returns the input unchanged. Pure
// function; cheap enough to run on every keystroke.
func FilterProducts(products []models.Product, query string) []models.Product {
	q := strings.TrimSpace(query)
	if q == "" {
		return products
	}

	// A Caser is stateful, so build one per call.
	fold := cases.Fold()
	needle := fold.String(q)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}
