// Package calc contiene los cálculos puros del dominio: carrito, stock,
// alertas y reportes. Ninguna función hace I/O ni muta sus argumentos.
package calc

import "printco-backend/internal/models"

type CartItem struct {
	Product  models.Product `json:"product"`
	Quantity float64        `json:"quantity"`
	Subtotal float64        `json:"subtotal"`
	Profit   float64        `json:"profit"`
}

type CartTotals struct {
	Total       float64 `json:"total"`
	TotalProfit float64 `json:"totalProfit"`
	ItemCount   float64 `json:"itemCount"`
}

func NewCartItem(product models.Product, quantity float64) CartItem {
	return CartItem{
		Product:  product,
		Quantity: quantity,
		Subtotal: product.Price * quantity,
		Profit:   (product.Price - product.Cost) * quantity,
	}
}

func CalculateCartTotals(items []CartItem) CartTotals {
	var totals CartTotals
	for _, item := range items {
		totals.Total += item.Subtotal
		totals.TotalProfit += item.Profit
		totals.ItemCount += item.Quantity
	}
	return totals
}

// AddToCart: si el producto ya está en el carrito suma cantidades en vez de
// duplicar la línea.
func AddToCart(items []CartItem, product models.Product, quantity float64) []CartItem {
	for i, item := range items {
		if item.Product.ID == product.ID {
			out := append([]CartItem(nil), items...)
			out[i] = NewCartItem(product, item.Quantity+quantity)
			return out
		}
	}
	return append(append([]CartItem(nil), items...), NewCartItem(product, quantity))
}

// SetCartQuantity: cantidad <= 0 elimina la línea.
func SetCartQuantity(items []CartItem, productID string, quantity float64) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
			continue
		}
		if quantity > 0 {
			out = append(out, NewCartItem(item.Product, quantity))
		}
	}
	return out
}

// ProfitMargin: margen porcentual sobre el precio de venta.
func ProfitMargin(price, cost float64) float64 {
	if price == 0 {
		return 0
	}
	return (price - cost) / price * 100
}
