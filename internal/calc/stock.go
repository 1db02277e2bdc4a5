package calc

import (
	"fmt"
	"sort"
	"strconv"

	"printco-backend/internal/models"
)

// StockRequirements: agregador compartido entre la verificación de stock y el
// descuento. Suma receta × cantidad por cada línea del carrito. Ambas operaciones
// tienen que salir del mismo cálculo para no divergir.
// El slice devuelto conserva el orden de primera aparición, para mensajes estables.
func StockRequirements(items []CartItem) (map[string]float64, []string) {
	required := make(map[string]float64)
	var order []string
	for _, item := range items {
		for supplyID, perUnit := range item.Product.RequiredSupplies {
			if _, seen := required[supplyID]; !seen {
				order = append(order, supplyID)
			}
			required[supplyID] += perUnit * item.Quantity
		}
	}
	// el orden de iteración de RequiredSupplies no es estable entre corridas
	sort.Strings(order)
	return required, order
}

type StockCheck struct {
	CanProcess   bool     `json:"canProcess"`
	MissingItems []string `json:"missingItems"`
}

func formatQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CanProcessSale: verifica que cada insumo requerido alcance para todo el
// carrito. Los mensajes son para mostrar al usuario, no errores tipados.
func CanProcessSale(items []CartItem, supplies []models.Supply) StockCheck {
	required, order := StockRequirements(items)

	byID := make(map[string]models.Supply, len(supplies))
	for _, s := range supplies {
		byID[s.ID] = s
	}

	var missing []string
	for _, supplyID := range order {
		supply, ok := byID[supplyID]
		if !ok {
			missing = append(missing, "Insumo no encontrado: "+supplyID)
			continue
		}
		if supply.CurrentStock < required[supplyID] {
			missing = append(missing, fmt.Sprintf("Stock insuficiente: %s (necesario: %s, disponible: %s)",
				supply.Name, formatQty(required[supplyID]), formatQty(supply.CurrentStock)))
		}
	}

	return StockCheck{CanProcess: len(missing) == 0, MissingItems: missing}
}

// StockDeductions: cantidades a descontar por insumo para el carrito dado.
func StockDeductions(items []CartItem) map[string]float64 {
	required, _ := StockRequirements(items)
	return required
}

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityCritical AlertSeverity = "critical"
)

type StockAlert struct {
	SupplyID     string        `json:"supplyId"`
	SupplyName   string        `json:"supplyName"`
	CurrentStock float64       `json:"currentStock"`
	MinStock     float64       `json:"minStock"`
	Severity     AlertSeverity `json:"severity"`
}

// StockAlerts: insumos en o bajo su mínimo. Crítico cuando el stock está en la
// mitad del mínimo o menos. Orden: críticos primero, después por menor stock.
// El orden es contractual, los listados de "top N alertas" dependen de él.
func StockAlerts(supplies []models.Supply) []StockAlert {
	var alerts []StockAlert
	for _, s := range supplies {
		if s.CurrentStock > s.MinStock {
			continue
		}
		severity := SeverityLow
		if s.CurrentStock <= s.MinStock*0.5 {
			severity = SeverityCritical
		}
		alerts = append(alerts, StockAlert{
			SupplyID:     s.ID,
			SupplyName:   s.Name,
			CurrentStock: s.CurrentStock,
			MinStock:     s.MinStock,
			Severity:     severity,
		})
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Severity != alerts[j].Severity {
			return alerts[i].Severity == SeverityCritical
		}
		return alerts[i].CurrentStock < alerts[j].CurrentStock
	})
	return alerts
}
