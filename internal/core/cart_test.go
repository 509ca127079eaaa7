package core_test

import (
	"testing"

	"bluegold-store/internal/core"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id int, price string) core.Product {
	return core.Product{
		ID:     id,
		NameEn: gofakeit.ProductName(),
		NameHe: gofakeit.ProductName(),
		Price:  decimal.RequireFromString(price),
	}
}

func TestCart_AddMergesByID(t *testing.T) {
	cart := &core.Cart{}
	p := testProduct(3, "9.99")

	cart.Add(p)
	cart.Add(p)
	cart.Add(p)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.Lines[0].Product.ID)
}

func TestCart_AddSequence_OneLinePerDistinctID(t *testing.T) {
	faker := gofakeit.New(7)

	products := make([]core.Product, 5)
	for i := range products {
		products[i] = core.Product{
			ID:     i + 1,
			NameEn: faker.ProductName(),
			Price:  decimal.NewFromFloat(faker.Price(1, 50)).Round(2),
		}
	}

	cart := &core.Cart{}
	addsPerID := make(map[int]int)
	for i := 0; i < 200; i++ {
		p := products[faker.IntRange(0, len(products)-1)]
		cart.Add(p)
		addsPerID[p.ID]++
	}

	require.Len(t, cart.Lines, len(addsPerID))
	seen := make(map[int]bool)
	for _, line := range cart.Lines {
		assert.False(t, seen[line.Product.ID], "duplicate line for product %d", line.Product.ID)
		seen[line.Product.ID] = true
		assert.Equal(t, addsPerID[line.Product.ID], line.Quantity)
	}
}

func TestCart_AdjustQuantityClampsAtOne(t *testing.T) {
	cart := &core.Cart{}
	p := testProduct(3, "6.99")

	cart.Add(p)
	cart.Add(p)
	cart.AdjustQuantity(3, -5)

	require.Len(t, cart.Lines, 1, "clamping must not remove the line")
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart.AdjustQuantity(3, -1000000)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart.AdjustQuantity(3, 4)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestCart_AdjustQuantityUnknownIDIsNoop(t *testing.T) {
	cart := &core.Cart{}
	cart.Add(testProduct(1, "5.00"))

	cart.AdjustQuantity(99, 3)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	cart := &core.Cart{}
	cart.Add(testProduct(1, "5.00"))
	cart.Add(testProduct(2, "7.50"))

	cart.Remove(1)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Product.ID)

	// Removing an absent id is a no-op.
	cart.Remove(1)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Total(t *testing.T) {
	cart := &core.Cart{}
	assert.True(t, cart.Total().IsZero(), "empty cart total must be 0")

	cart.Add(testProduct(1, "12.99"))
	cart.Add(testProduct(1, "12.99"))
	cart.Add(testProduct(2, "8.50"))

	want := decimal.RequireFromString("34.48") // 2*12.99 + 8.50
	assert.True(t, want.Equal(cart.Total()), "got %s", cart.Total())
}

func TestCart_CountIsDistinctLines(t *testing.T) {
	cart := &core.Cart{}
	cart.Add(testProduct(1, "1.00"))
	cart.Add(testProduct(1, "1.00"))
	cart.Add(testProduct(2, "1.00"))

	assert.Equal(t, 2, cart.Count())
}
