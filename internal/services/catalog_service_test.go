// internal/services/catalog_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"

	"github.com/parisollie/tienda-backend/internal/models"
)

func TestCatalogHasSixFixedEntries(t *testing.T) {
	svc := NewCatalogService()

	first := svc.List()
	require.Len(t, first, 6)

	// Same members, same order, on every read.
	second := svc.List()
	assert.Equal(t, first, second)
}

func TestCatalogGet(t *testing.T) {
	svc := NewCatalogService()

	for _, p := range svc.List() {
		got, err := svc.Get(p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogProductsAreWellFormed(t *testing.T) {
	svc := NewCatalogService()

	for _, p := range svc.List() {
		assert.NotEmpty(t, p.Name)
		assert.False(t, p.Price.IsNegative(), "%s has a negative price", p.Name)
		assert.NotEmpty(t, p.ImageURL)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}
}

func TestFilterEmptyQueryReturnsCatalogUnchanged(t *testing.T) {
	svc := NewCatalogService()
	catalog := svc.List()

	assert.Equal(t, catalog, FilterProducts(catalog, ""))
	assert.Equal(t, catalog, FilterProducts(catalog, "   "))
	assert.Equal(t, catalog, FilterProducts(catalog, "\t\n"))
}

func TestFilterPreservesRelativeOrder(t *testing.T) {
	svc := NewCatalogService()
	catalog := svc.List()

	for _, query := range []string{"", "a", "e", "s", "with", "xyz"} {
		filtered := FilterProducts(catalog, query)

		// Every result is a catalog member, in original relative order.
		pos := -1
		for _, p := range filtered {
			found := -1
			for i, cp := range catalog {
				if cp.ID == p.ID {
					found = i
					break
				}
			}
			require.GreaterOrEqual(t, found, 0, "query %q returned a non-catalog product", query)
			assert.Greater(t, found, pos, "query %q broke relative order", query)
			pos = found
		}
	}
}

func TestFilterEveryResultMatches(t *testing.T) {
	svc := NewCatalogService()
	catalog := svc.List()
	fold := cases.Fold()

	for _, query := range []string{"a", "S", "WATCH", "ml", "with"} {
		needle := fold.String(query)
		for _, p := range FilterProducts(catalog, query) {
			matches := strings.Contains(fold.String(p.Name), needle) ||
				strings.Contains(fold.String(p.Description), needle)
			assert.True(t, matches, "query %q returned %q which matches neither field", query, p.Name)
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	svc := NewCatalogService()
	catalog := svc.List()

	for _, query := range []string{"", "leather", "s", "xyz"} {
		once := FilterProducts(catalog, query)
		twice := FilterProducts(once, query)
		assert.Equal(t, once, twice, "query %q", query)
	}
}

func TestFilterScenarios(t *testing.T) {
	svc := NewCatalogService()
	catalog := svc.List()

	leather := FilterProducts(catalog, "leather")
	require.Len(t, leather, 1)
	assert.Equal(t, "Designer Handbag", leather[0].Name)

	// Case-insensitive
	shoes := FilterProducts(catalog, "SHOES")
	require.Len(t, shoes, 1)
	assert.Equal(t, "Sports Shoes", shoes[0].Name)

	durable := FilterProducts(catalog, "durable")
	require.Len(t, durable, 1)
	assert.Equal(t, "Sports Shoes", durable[0].Name)

	assert.Empty(t, FilterProducts(catalog, "xyz"))
}

func TestFilterSingleCharacterQuery(t *testing.T) {
	svc := NewCatalogService()

	// No minimum length; one character is a valid query.
	assert.NotEmpty(t, FilterProducts(svc.List(), "s"))
}

func TestFilterUsesUnicodeCaseFolding(t *testing.T) {
	products := []models.Product{
		models.NewProduct("Gorro Mañanero", decimal.NewFromFloat(19.99), "https://example.com/g.jpg", "Para las mañanas frías.", 4.0),
		models.NewProduct("Plain Cap", decimal.NewFromFloat(9.99), "https://example.com/c.jpg", "", 3.5),
	}

	// Byte-wise ASCII lowering would miss the folded Ñ.
	got := FilterProducts(products, "MAÑANA")
	require.Len(t, got, 1)
	assert.Equal(t, "Gorro Mañanero", got[0].Name)
}

func TestFilterHasNoSideEffects(t *testing.T) {
	svc := NewCatalogService()
	before := svc.List()

	FilterProducts(before, "leather")
	FilterProducts(before, "xyz")

	assert.Equal(t, before, svc.List())
}

func TestSearchDelegatesToFilter(t *testing.T) {
	svc := NewCatalogService()

	assert.Equal(t, svc.List(), svc.Search(""))
	assert.Equal(t, FilterProducts(svc.List(), "mug"), svc.Search("mug"))
}
