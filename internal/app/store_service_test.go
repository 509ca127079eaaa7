package app_test

import (
	"context"
	"testing"

	"bluegold-store/internal/app"
	"bluegold-store/internal/core"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRecommender returns a canned model result and records what it was asked.
type fixedRecommender struct {
	result    core.Recommendation
	lastQuery string
	inventory []core.Product
}

func (f *fixedRecommender) Recommend(_ context.Context, query string, inventory []core.Product, _ core.Locale) core.Recommendation {
	f.lastQuery = query
	f.inventory = inventory
	return f.result
}

func newTestService(rec *fixedRecommender) app.StoreService {
	catalog := core.NewCatalogService(core.SeedProducts())
	return app.NewStoreService(catalog, core.NewCartService(), rec)
}

func TestRecommend_FiltersUnknownIDs(t *testing.T) {
	rec := &fixedRecommender{result: core.Recommendation{
		ProductIDs: []int{1, 999},
		Reasoning:  "These are vegan snacks.",
	}}
	svc := newTestService(rec)

	result := svc.Recommend(context.Background(), app.RecommendRequest{
		Query:  "vegan snack for a friend",
		Locale: core.LocaleEnglish,
	})

	require.Len(t, result.Products, 1)
	assert.Equal(t, 1, result.Products[0].ID)
	assert.Equal(t, "These are vegan snacks.", result.Reasoning)
}

func TestRecommend_ResolvesIDsInModelOrder(t *testing.T) {
	rec := &fixedRecommender{result: core.Recommendation{
		ProductIDs: []int{9, 1, 9}, // duplicate collapses to first occurrence
		Reasoning:  "These are vegan snacks.",
	}}
	svc := newTestService(rec)

	result := svc.Recommend(context.Background(), app.RecommendRequest{
		Query:  "vegan snack for a friend",
		Locale: core.LocaleEnglish,
	})

	require.Len(t, result.Products, 2)
	assert.Equal(t, 9, result.Products[0].ID)
	assert.Equal(t, 1, result.Products[1].ID)
	assert.Equal(t, "These are vegan snacks.", result.Reasoning)
}

func TestRecommend_GroundsOnFullCatalogAndEchoesToken(t *testing.T) {
	rec := &fixedRecommender{result: core.Recommendation{ProductIDs: []int{}, Reasoning: "ok"}}
	svc := newTestService(rec)

	result := svc.Recommend(context.Background(), app.RecommendRequest{
		Query:  "coffee",
		Locale: core.LocaleHebrew,
		Token:  "q-42",
	})

	assert.Equal(t, "coffee", rec.lastQuery)
	assert.Len(t, rec.inventory, 10, "the full catalog is the grounding inventory")
	assert.Empty(t, result.Products)
	assert.Equal(t, "q-42", result.Token)
}

func TestGetProduct(t *testing.T) {
	svc := newTestService(&fixedRecommender{})

	p, err := svc.GetProduct(2)
	require.NoError(t, err)
	assert.Equal(t, "Elite Turkish Coffee", p.NameEn)

	_, err = svc.GetProduct(999)
	assert.ErrorIs(t, err, app.ErrProductNotFound)
}

func TestCartFlow(t *testing.T) {
	svc := newTestService(&fixedRecommender{})

	cart := svc.CreateCart()
	require.NotEmpty(t, cart.CartID)
	assert.Equal(t, 0, cart.Count)
	assert.True(t, cart.Total.IsZero())

	// add(3) twice, then a large negative delta: quantity clamps at 1.
	_, err := svc.AddToCart(cart.CartID, 3)
	require.NoError(t, err)
	result, err := svc.AddToCart(cart.CartID, 3)
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, 2, result.Lines[0].Quantity)

	result, err = svc.AdjustCartLine(cart.CartID, 3, -5)
	require.NoError(t, err)
	require.Len(t, result.Lines, 1, "clamped line is not removed")
	assert.Equal(t, 1, result.Lines[0].Quantity)

	result, err = svc.AddToCart(cart.CartID, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	// 1 * 6.99 + 1 * 24.99
	want := decimal.RequireFromString("31.98")
	assert.True(t, want.Equal(result.Total), "got %s", result.Total)
	assert.True(t, decimal.RequireFromString("6.99").Equal(result.Lines[0].LineTotal))

	result, err = svc.RemoveFromCart(cart.CartID, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestCartFlow_Errors(t *testing.T) {
	svc := newTestService(&fixedRecommender{})

	_, err := svc.GetCart("missing")
	assert.ErrorIs(t, err, app.ErrCartNotFound)

	cart := svc.CreateCart()
	_, err = svc.AddToCart(cart.CartID, 999)
	assert.ErrorIs(t, err, app.ErrProductNotFound)

	_, err = svc.AddToCart("missing", 1)
	assert.ErrorIs(t, err, app.ErrCartNotFound)
}
