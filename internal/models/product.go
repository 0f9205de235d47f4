// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Instances are built once at startup and never
// mutated; equality is by ID.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
}

func NewProduct(name string, price decimal.Decimal, imageURL, description string, rating float64) Product {
	return Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		ImageURL:    imageURL,
		Description: description,
		Rating:      rating,
	}
}

// ImageState is the lifecycle of a product card's image fetch. The three
// states are mutually exclusive per URL.
type ImageState string

const (
	ImageStatePending ImageState = "pending"
	ImageStateLoaded  ImageState = "loaded"
	ImageStateFailed  ImageState = "failed"
)
