package calc

import (
	"testing"

	"printco-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func testProduct() models.Product {
	return models.Product{
		ID:               "imp_a4_obra80_simple_color",
		Name:             "Impresión A4 Obra 80gr Simple Faz Color",
		Category:         models.ProductCategoryPrinting,
		Price:            150,
		Cost:             45,
		RequiredSupplies: map[string]float64{"papel_obra_80_a4": 1},
	}
}

func TestNewCartItem(t *testing.T) {
	item := NewCartItem(testProduct(), 3)

	assert.Equal(t, 450.0, item.Subtotal)
	assert.Equal(t, 315.0, item.Profit)
}

func TestCalculateCartTotals(t *testing.T) {
	other := testProduct()
	other.ID = "otro"
	other.Price = 100
	other.Cost = 30

	items := []CartItem{
		NewCartItem(testProduct(), 3),
		NewCartItem(other, 2),
	}

	totals := CalculateCartTotals(items)
	assert.Equal(t, 650.0, totals.Total)
	assert.Equal(t, 455.0, totals.TotalProfit)
	assert.Equal(t, 5.0, totals.ItemCount)
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	product := testProduct()

	items := AddToCart(nil, product, 2)
	items = AddToCart(items, product, 3)

	assert.Len(t, items, 1)
	assert.Equal(t, 5.0, items[0].Quantity)
	assert.Equal(t, 750.0, items[0].Subtotal)
}

func TestSetCartQuantity(t *testing.T) {
	product := testProduct()
	items := AddToCart(nil, product, 2)

	items = SetCartQuantity(items, product.ID, 4)
	assert.Len(t, items, 1)
	assert.Equal(t, 4.0, items[0].Quantity)

	// cero o menos elimina la línea
	items = SetCartQuantity(items, product.ID, 0)
	assert.Empty(t, items)
}

func TestProfitMargin(t *testing.T) {
	assert.Equal(t, 70.0, ProfitMargin(150, 45))
	assert.Equal(t, 0.0, ProfitMargin(0, 45))
}
