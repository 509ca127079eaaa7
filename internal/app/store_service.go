package app

import (
	"context"

	"bluegold-store/internal/ai"
	"bluegold-store/internal/core"

	"github.com/shopspring/decimal"
)

type storeService struct {
	catalog     core.CatalogService
	carts       core.CartService
	recommender ai.RecommenderService
}

// NewStoreService constructs a storeService that satisfies StoreService.
func NewStoreService(catalog core.CatalogService, carts core.CartService, recommender ai.RecommenderService) StoreService {
	return &storeService{catalog: catalog, carts: carts, recommender: recommender}
}

func (s *storeService) ListProducts() []core.Product {
	return s.catalog.ListAll()
}

func (s *storeService) GetProduct(id int) (core.Product, error) {
	p, ok := s.catalog.FindByID(id)
	if !ok {
		return core.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *storeService) Translations(locale core.Locale) map[string]string {
	return core.Translations(locale)
}

func (s *storeService) CreateCart() *CartResult {
	cart := s.carts.Create()
	return cartResult(cart)
}

func (s *storeService) GetCart(cartID string) (*CartResult, error) {
	cart, ok := s.carts.Get(cartID)
	if !ok {
		return nil, ErrCartNotFound
	}
	return cartResult(cart), nil
}

func (s *storeService) AddToCart(cartID string, productID int) (*CartResult, error) {
	p, ok := s.catalog.FindByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	cart, ok := s.carts.AddItem(cartID, p)
	if !ok {
		return nil, ErrCartNotFound
	}
	return cartResult(cart), nil
}

func (s *storeService) AdjustCartLine(cartID string, productID, delta int) (*CartResult, error) {
	cart, ok := s.carts.AdjustItem(cartID, productID, delta)
	if !ok {
		return nil, ErrCartNotFound
	}
	return cartResult(cart), nil
}

func (s *storeService) RemoveFromCart(cartID string, productID int) (*CartResult, error) {
	cart, ok := s.carts.RemoveItem(cartID, productID)
	if !ok {
		return nil, ErrCartNotFound
	}
	return cartResult(cart), nil
}

// Recommend sends the query to the model grounded on the full catalog, then
// drops ids the catalog does not know. Duplicate ids collapse to their first
// occurrence; the model's ordering is otherwise preserved.
func (s *storeService) Recommend(ctx context.Context, req RecommendRequest) *RecommendResult {
	rec := s.recommender.Recommend(ctx, req.Query, s.catalog.ListAll(), req.Locale)

	products := make([]core.Product, 0, len(rec.ProductIDs))
	seen := make(map[int]bool, len(rec.ProductIDs))
	for _, id := range rec.ProductIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := s.catalog.FindByID(id); ok {
			products = append(products, p)
		}
	}

	return &RecommendResult{
		Products:  products,
		Reasoning: rec.Reasoning,
		Token:     req.Token,
	}
}

func cartResult(cart core.Cart) *CartResult {
	lines := make([]CartLineResult, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, CartLineResult{
			Product:   l.Product,
			Quantity:  l.Quantity,
			LineTotal: l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return &CartResult{
		CartID: cart.ID,
		Lines:  lines,
		Total:  cart.Total(),
		Count:  cart.Count(),
	}
}
