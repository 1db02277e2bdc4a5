package models

import "strings"

type ProductCategory string

const (
	ProductCategoryPrinting ProductCategory = "impresion"
	ProductCategoryBinding  ProductCategory = "encuadernacion"
	ProductCategoryPhoto    ProductCategory = "fotografico"
	ProductCategoryAdhesive ProductCategory = "autoadhesivo"
)

type SupplyCategory string

const (
	SupplyCategoryPaper  SupplyCategory = "papel"
	SupplyCategorySpiral SupplyCategory = "espiral"
	SupplyCategoryCover  SupplyCategory = "tapa"
	SupplyCategoryInk    SupplyCategory = "tinta"
)

type SupplyUnit string

const (
	SupplyUnitSheet SupplyUnit = "hoja"
	SupplyUnitPiece SupplyUnit = "unidad"
	SupplyUnitGram  SupplyUnit = "gramo"
	SupplyUnitML    SupplyUnit = "ml"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentCard     PaymentMethod = "tarjeta"
)

type ExpenseCategory string

const (
	ExpenseCategorySupplies ExpenseCategory = "insumos"
	ExpenseCategoryServices ExpenseCategory = "servicios"
	ExpenseCategoryRent     ExpenseCategory = "alquiler"
	ExpenseCategoryTaxes    ExpenseCategory = "impuestos"
	ExpenseCategoryOther    ExpenseCategory = "otros"
)

var productCategoryNames = map[ProductCategory]string{
	ProductCategoryPrinting: "Impresión",
	ProductCategoryBinding:  "Encuadernación",
	ProductCategoryPhoto:    "Fotográfico",
	ProductCategoryAdhesive: "Autoadhesivo",
}

var supplyCategoryNames = map[SupplyCategory]string{
	SupplyCategoryPaper:  "Papel",
	SupplyCategorySpiral: "Espiral",
	SupplyCategoryCover:  "Tapa",
	SupplyCategoryInk:    "Tinta",
}

var expenseCategoryNames = map[ExpenseCategory]string{
	ExpenseCategorySupplies: "Insumos",
	ExpenseCategoryServices: "Servicios",
	ExpenseCategoryRent:     "Alquiler",
	ExpenseCategoryTaxes:    "Impuestos",
	ExpenseCategoryOther:    "Otros",
}

var paymentMethodNames = map[PaymentMethod]string{
	PaymentCash:     "Efectivo",
	PaymentTransfer: "Transferencia",
	PaymentCard:     "Tarjeta",
}

// capitalize: fallback para valores desconocidos (se muestran tal cual, capitalizados)
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c ProductCategory) DisplayName() string {
	if name, ok := productCategoryNames[c]; ok {
		return name
	}
	return capitalize(string(c))
}

func (c SupplyCategory) DisplayName() string {
	if name, ok := supplyCategoryNames[c]; ok {
		return name
	}
	return capitalize(string(c))
}

func (c ExpenseCategory) DisplayName() string {
	if name, ok := expenseCategoryNames[c]; ok {
		return name
	}
	return capitalize(string(c))
}

func (m PaymentMethod) DisplayName() string {
	if name, ok := paymentMethodNames[m]; ok {
		return name
	}
	return capitalize(string(m))
}

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category ProductCategory `json:"category"`
	Price    float64         `json:"price"` // precio de venta
	Cost     float64         `json:"cost"`  // costo de producción
	// RequiredSupplies: insumos consumidos por unidad vendida (id de insumo -> cantidad)
	RequiredSupplies map[string]float64 `json:"requiredSupplies"`
	Description      string             `json:"description,omitempty"`
}

type Supply struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     SupplyCategory `json:"category"`
	CurrentStock float64        `json:"currentStock"`
	MinStock     float64        `json:"minStock"`
	Unit         SupplyUnit     `json:"unit"`
	Cost         float64        `json:"cost"` // costo por unidad
}

type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
	UnitCost    float64 `json:"unitCost"`
	Profit      float64 `json:"profit"`
}

// Sale: inmutable una vez creada. Los items guardan precio/costo del momento de la
// venta, así las ediciones posteriores del producto no cambian cifras históricas.
type Sale struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"` // YYYY-MM-DDTHH:MM:SS local
	Items         []SaleItem    `json:"items"`
	Total         float64       `json:"total"`
	Profit        float64       `json:"profit"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type Expense struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // YYYY-MM-DDTHH:MM:SS local
	Concept     string          `json:"concept"`
	Amount      float64         `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description,omitempty"`
}

// CashRegister: un registro por fecha calendario. Una vez closed=true queda de solo lectura.
type CashRegister struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"` // YYYY-MM-DD, clave única
	OpeningAmount float64 `json:"openingAmount"`
	CashSales     float64 `json:"cashSales"` // solo ventas en efectivo
	TotalExpenses float64 `json:"totalExpenses"`
	FinalBalance  float64 `json:"finalBalance"`
	Closed        bool    `json:"closed"`
}

type AppSettings struct {
	BusinessName      string  `json:"businessName"`
	Currency          string  `json:"currency"`
	TaxRate           float64 `json:"taxRate"`
	LowStockThreshold float64 `json:"lowStockThreshold"`
}

// AppState: raíz del agregado. El snapshot completo es la unidad de persistencia.
type AppState struct {
	Products      []Product      `json:"products"`
	Supplies      []Supply       `json:"supplies"`
	Sales         []Sale         `json:"sales"`
	Expenses      []Expense      `json:"expenses"`
	CashRegisters []CashRegister `json:"cashRegisters"`
	Settings      AppSettings    `json:"settings"`
}

// Clone: copia las slices para que las lecturas concurrentes no vean mutaciones.
// Los elementos se copian por valor; solo RequiredSupplies e Items necesitan copia profunda.
func (s AppState) Clone() AppState {
	out := s
	out.Products = make([]Product, len(s.Products))
	for i, p := range s.Products {
		rs := make(map[string]float64, len(p.RequiredSupplies))
		for k, v := range p.RequiredSupplies {
			rs[k] = v
		}
		p.RequiredSupplies = rs
		out.Products[i] = p
	}
	out.Supplies = append([]Supply(nil), s.Supplies...)
	out.Sales = make([]Sale, len(s.Sales))
	for i, sale := range s.Sales {
		sale.Items = append([]SaleItem(nil), sale.Items...)
		out.Sales[i] = sale
	}
	out.Expenses = append([]Expense(nil), s.Expenses...)
	out.CashRegisters = append([]CashRegister(nil), s.CashRegisters...)
	return out
}

func (s AppState) FindProduct(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s AppState) FindSupply(id string) (Supply, bool) {
	for _, sp := range s.Supplies {
		if sp.ID == id {
			return sp, true
		}
	}
	return Supply{}, false
}

func (s AppState) FindCashRegister(date string) (CashRegister, bool) {
	for _, cr := range s.CashRegisters {
		if cr.Date == date {
			return cr, true
		}
	}
	return CashRegister{}, false
}
