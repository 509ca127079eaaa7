package app

import (
	"context"
	"errors"

	"bluegold-store/internal/core"
)

var (
	// ErrCartNotFound means the cart id is unknown or the cart has expired.
	ErrCartNotFound = errors.New("cart not found")
	// ErrProductNotFound means the product id does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")
)

// StoreService is the single interface presentation adapters call. It decouples
// the HTTP layer from the domain; implementations contain no rendering logic.
type StoreService interface {
	// ListProducts returns the full catalog in stable order.
	ListProducts() []core.Product

	// GetProduct returns one product by id.
	GetProduct(id int) (core.Product, error)

	// Translations returns every static UI string resolved to the locale.
	Translations(locale core.Locale) map[string]string

	// CreateCart opens a new empty session cart.
	CreateCart() *CartResult

	// GetCart returns a snapshot of an existing cart.
	GetCart(cartID string) (*CartResult, error)

	// AddToCart merges one unit of the product into the cart: a new line at
	// quantity 1, or an increment of the existing line.
	AddToCart(cartID string, productID int) (*CartResult, error)

	// AdjustCartLine applies a quantity delta to a cart line, clamped at a
	// minimum of 1. Absent product ids leave the cart unchanged.
	AdjustCartLine(cartID string, productID, delta int) (*CartResult, error)

	// RemoveFromCart deletes a cart line. Absent product ids leave the cart
	// unchanged.
	RemoveFromCart(cartID string, productID int) (*CartResult, error)

	// Recommend runs one inventory-grounded model exchange and resolves the
	// returned ids against the catalog. It never returns an error: failures
	// surface as an empty product list with a localized explanation.
	Recommend(ctx context.Context, req RecommendRequest) *RecommendResult
}
