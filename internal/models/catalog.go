package models

// Catálogo inicial. Se usa cuando no hay snapshot guardado o cuando un campo
// del snapshot importado/cargado no tiene la estructura esperada.

func DefaultSettings() AppSettings {
	return AppSettings{
		BusinessName:      "Print & Co",
		Currency:          "$",
		TaxRate:           21, // IVA 21%
		LowStockThreshold: 10,
	}
}

func InitialSupplies() []Supply {
	return []Supply{
		// Papeles obra
		{ID: "papel_obra_80_a4", Name: "Papel Obra 80gr A4", Category: SupplyCategoryPaper, CurrentStock: 500, MinStock: 50, Unit: SupplyUnitSheet, Cost: 15},
		{ID: "papel_obra_80_oficio", Name: "Papel Obra 80gr Oficio", Category: SupplyCategoryPaper, CurrentStock: 200, MinStock: 30, Unit: SupplyUnitSheet, Cost: 18},
		{ID: "papel_obra_80_a3", Name: "Papel Obra 80gr A3", Category: SupplyCategoryPaper, CurrentStock: 150, MinStock: 25, Unit: SupplyUnitSheet, Cost: 30},
		{ID: "papel_obra_120_a4", Name: "Papel Obra 120gr A4", Category: SupplyCategoryPaper, CurrentStock: 300, MinStock: 40, Unit: SupplyUnitSheet, Cost: 22},
		{ID: "papel_obra_180_a4", Name: "Papel Obra 180gr A4", Category: SupplyCategoryPaper, CurrentStock: 200, MinStock: 30, Unit: SupplyUnitSheet, Cost: 35},
		{ID: "papel_obra_240_a4", Name: "Papel Obra 240gr A4", Category: SupplyCategoryPaper, CurrentStock: 100, MinStock: 20, Unit: SupplyUnitSheet, Cost: 45},

		// Papeles ilustración
		{ID: "papel_ilustracion_150_a4", Name: "Papel Ilustración 150gr A4", Category: SupplyCategoryPaper, CurrentStock: 250, MinStock: 35, Unit: SupplyUnitSheet, Cost: 28},
		{ID: "papel_ilustracion_200_a4", Name: "Papel Ilustración 200gr A4", Category: SupplyCategoryPaper, CurrentStock: 200, MinStock: 30, Unit: SupplyUnitSheet, Cost: 38},
		{ID: "papel_ilustracion_250_a4", Name: "Papel Ilustración 250gr A4", Category: SupplyCategoryPaper, CurrentStock: 150, MinStock: 25, Unit: SupplyUnitSheet, Cost: 48},
		{ID: "papel_ilustracion_150_a3", Name: "Papel Ilustración 150gr A3", Category: SupplyCategoryPaper, CurrentStock: 100, MinStock: 20, Unit: SupplyUnitSheet, Cost: 55},
		{ID: "papel_ilustracion_200_a3", Name: "Papel Ilustración 200gr A3", Category: SupplyCategoryPaper, CurrentStock: 80, MinStock: 15, Unit: SupplyUnitSheet, Cost: 75},
		{ID: "papel_ilustracion_250_a3", Name: "Papel Ilustración 250gr A3", Category: SupplyCategoryPaper, CurrentStock: 60, MinStock: 12, Unit: SupplyUnitSheet, Cost: 95},

		// Papeles fotográficos
		{ID: "papel_foto_115", Name: "Papel Fotográfico 115gr", Category: SupplyCategoryPaper, CurrentStock: 100, MinStock: 20, Unit: SupplyUnitSheet, Cost: 65},
		{ID: "papel_foto_135", Name: "Papel Fotográfico 135gr", Category: SupplyCategoryPaper, CurrentStock: 80, MinStock: 15, Unit: SupplyUnitSheet, Cost: 75},
		{ID: "papel_foto_190", Name: "Papel Fotográfico 190gr", Category: SupplyCategoryPaper, CurrentStock: 60, MinStock: 12, Unit: SupplyUnitSheet, Cost: 95},
		{ID: "papel_foto_230", Name: "Papel Fotográfico 230gr", Category: SupplyCategoryPaper, CurrentStock: 50, MinStock: 10, Unit: SupplyUnitSheet, Cost: 115},
		{ID: "papel_foto_220_doble", Name: "Papel Fotográfico 220gr Doble Faz", Category: SupplyCategoryPaper, CurrentStock: 40, MinStock: 8, Unit: SupplyUnitSheet, Cost: 135},

		// Autoadhesivos
		{ID: "autoadhesivo_a4", Name: "Papel Autoadhesivo A4", Category: SupplyCategoryPaper, CurrentStock: 120, MinStock: 20, Unit: SupplyUnitSheet, Cost: 85},
		{ID: "autoadhesivo_a3", Name: "Papel Autoadhesivo A3", Category: SupplyCategoryPaper, CurrentStock: 60, MinStock: 12, Unit: SupplyUnitSheet, Cost: 165},

		// Espirales
		{ID: "espiral_9mm", Name: "Espiral 9mm", Category: SupplyCategorySpiral, CurrentStock: 100, MinStock: 20, Unit: SupplyUnitPiece, Cost: 45},
		{ID: "espiral_14mm", Name: "Espiral 14mm", Category: SupplyCategorySpiral, CurrentStock: 80, MinStock: 15, Unit: SupplyUnitPiece, Cost: 55},
		{ID: "espiral_17mm", Name: "Espiral 17mm", Category: SupplyCategorySpiral, CurrentStock: 70, MinStock: 15, Unit: SupplyUnitPiece, Cost: 65},
		{ID: "espiral_20mm", Name: "Espiral 20mm", Category: SupplyCategorySpiral, CurrentStock: 60, MinStock: 12, Unit: SupplyUnitPiece, Cost: 75},
		{ID: "espiral_25mm", Name: "Espiral 25mm", Category: SupplyCategorySpiral, CurrentStock: 50, MinStock: 10, Unit: SupplyUnitPiece, Cost: 85},
		{ID: "espiral_33mm", Name: "Espiral 33mm", Category: SupplyCategorySpiral, CurrentStock: 40, MinStock: 8, Unit: SupplyUnitPiece, Cost: 105},
		{ID: "espiral_40mm", Name: "Espiral 40mm", Category: SupplyCategorySpiral, CurrentStock: 30, MinStock: 6, Unit: SupplyUnitPiece, Cost: 125},
		{ID: "espiral_50mm", Name: "Espiral 50mm", Category: SupplyCategorySpiral, CurrentStock: 20, MinStock: 5, Unit: SupplyUnitPiece, Cost: 155},

		// Tapas de encuadernación
		{ID: "tapa_transparente", Name: "Tapa Transparente", Category: SupplyCategoryCover, CurrentStock: 200, MinStock: 30, Unit: SupplyUnitPiece, Cost: 25},
		{ID: "tapa_color", Name: "Tapa Color", Category: SupplyCategoryCover, CurrentStock: 150, MinStock: 25, Unit: SupplyUnitPiece, Cost: 35},
	}
}

func InitialProducts() []Product {
	return []Product{
		// Impresiones A4 obra 80gr
		{ID: "imp_a4_obra80_simple_color", Name: "Impresión A4 Obra 80gr Simple Faz Color", Category: ProductCategoryPrinting, Price: 150, Cost: 45,
			RequiredSupplies: map[string]float64{"papel_obra_80_a4": 1}, Description: "Impresión color en papel obra 80gr A4"},
		{ID: "imp_a4_obra80_simple_bn", Name: "Impresión A4 Obra 80gr Simple Faz B&N", Category: ProductCategoryPrinting, Price: 80, Cost: 25,
			RequiredSupplies: map[string]float64{"papel_obra_80_a4": 1}, Description: "Impresión blanco y negro en papel obra 80gr A4"},
		{ID: "imp_a4_obra80_doble_color", Name: "Impresión A4 Obra 80gr Doble Faz Color", Category: ProductCategoryPrinting, Price: 250, Cost: 75,
			RequiredSupplies: map[string]float64{"papel_obra_80_a4": 1}, Description: "Impresión color doble faz en papel obra 80gr A4"},
		{ID: "imp_a4_obra80_doble_bn", Name: "Impresión A4 Obra 80gr Doble Faz B&N", Category: ProductCategoryPrinting, Price: 130, Cost: 40,
			RequiredSupplies: map[string]float64{"papel_obra_80_a4": 1}, Description: "Impresión blanco y negro doble faz en papel obra 80gr A4"},

		// Impresiones A3 obra 80gr
		{ID: "imp_a3_obra80_simple_color", Name: "Impresión A3 Obra 80gr Simple Faz Color", Category: ProductCategoryPrinting, Price: 300, Cost: 85,
			RequiredSupplies: map[string]float64{"papel_obra_80_a3": 1}, Description: "Impresión color en papel obra 80gr A3"},
		{ID: "imp_a3_obra80_simple_bn", Name: "Impresión A3 Obra 80gr Simple Faz B&N", Category: ProductCategoryPrinting, Price: 150, Cost: 50,
			RequiredSupplies: map[string]float64{"papel_obra_80_a3": 1}, Description: "Impresión blanco y negro en papel obra 80gr A3"},

		// Impresiones ilustración
		{ID: "imp_a4_ilus150_color", Name: "Impresión A4 Ilustración 150gr Color", Category: ProductCategoryPrinting, Price: 220, Cost: 68,
			RequiredSupplies: map[string]float64{"papel_ilustracion_150_a4": 1}, Description: "Impresión color en papel ilustración 150gr A4"},
		{ID: "imp_a4_ilus200_color", Name: "Impresión A4 Ilustración 200gr Color", Category: ProductCategoryPrinting, Price: 280, Cost: 88,
			RequiredSupplies: map[string]float64{"papel_ilustracion_200_a4": 1}, Description: "Impresión color en papel ilustración 200gr A4"},
		{ID: "imp_a4_ilus250_color", Name: "Impresión A4 Ilustración 250gr Color", Category: ProductCategoryPrinting, Price: 350, Cost: 108,
			RequiredSupplies: map[string]float64{"papel_ilustracion_250_a4": 1}, Description: "Impresión color en papel ilustración 250gr A4"},

		// Impresiones fotográficas
		{ID: "imp_foto_115", Name: "Impresión Fotográfica 115gr", Category: ProductCategoryPhoto, Price: 450, Cost: 145,
			RequiredSupplies: map[string]float64{"papel_foto_115": 1}, Description: "Impresión en papel fotográfico 115gr"},
		{ID: "imp_foto_190", Name: "Impresión Fotográfica 190gr", Category: ProductCategoryPhoto, Price: 650, Cost: 215,
			RequiredSupplies: map[string]float64{"papel_foto_190": 1}, Description: "Impresión en papel fotográfico 190gr"},
		{ID: "imp_foto_230", Name: "Impresión Fotográfica 230gr", Category: ProductCategoryPhoto, Price: 850, Cost: 275,
			RequiredSupplies: map[string]float64{"papel_foto_230": 1}, Description: "Impresión en papel fotográfico 230gr"},

		// Autoadhesivos
		{ID: "imp_autoadh_a4", Name: "Impresión Autoadhesivo A4", Category: ProductCategoryAdhesive, Price: 580, Cost: 185,
			RequiredSupplies: map[string]float64{"autoadhesivo_a4": 1}, Description: "Impresión en papel autoadhesivo A4"},
		{ID: "imp_autoadh_a3", Name: "Impresión Autoadhesivo A3", Category: ProductCategoryAdhesive, Price: 980, Cost: 305,
			RequiredSupplies: map[string]float64{"autoadhesivo_a3": 1}, Description: "Impresión en papel autoadhesivo A3"},

		// Encuadernación
		{ID: "enc_9mm", Name: "Encuadernado Espiral 9mm", Category: ProductCategoryBinding, Price: 450, Cost: 115,
			RequiredSupplies: map[string]float64{"espiral_9mm": 1, "tapa_transparente": 2}, Description: "Encuadernación con espiral 9mm + 2 tapas"},
		{ID: "enc_14mm", Name: "Encuadernado Espiral 14mm", Category: ProductCategoryBinding, Price: 550, Cost: 145,
			RequiredSupplies: map[string]float64{"espiral_14mm": 1, "tapa_transparente": 2}, Description: "Encuadernación con espiral 14mm + 2 tapas"},
		{ID: "enc_17mm", Name: "Encuadernado Espiral 17mm", Category: ProductCategoryBinding, Price: 650, Cost: 175,
			RequiredSupplies: map[string]float64{"espiral_17mm": 1, "tapa_transparente": 2}, Description: "Encuadernación con espiral 17mm + 2 tapas"},
		{ID: "enc_20mm", Name: "Encuadernado Espiral 20mm", Category: ProductCategoryBinding, Price: 750, Cost: 205,
			RequiredSupplies: map[string]float64{"espiral_20mm": 1, "tapa_transparente": 2}, Description: "Encuadernación con espiral 20mm + 2 tapas"},
		{ID: "enc_25mm", Name: "Encuadernado Espiral 25mm", Category: ProductCategoryBinding, Price: 850, Cost: 235,
			RequiredSupplies: map[string]float64{"espiral_25mm": 1, "tapa_transparente": 2}, Description: "Encuadernación con espiral 25mm + 2 tapas"},
		{ID: "enc_33mm", Name: "Encuadernado Espiral 33mm", Category: ProductCategoryBinding, Price: 980, Cost: 275,
			RequiredSupplies: map[string]float64{"espiral_33mm": 1, "tapa_transparente": 2}, Description: "Encuadernación con espiral 33mm + 2 tapas"},
		{ID: "enc_40mm", Name: "Encuadernado Espiral 40mm", Category: ProductCategoryBinding, Price: 1150, Cost: 315,
			RequiredSupplies: map[string]float64{"espiral_40mm": 1, "tapa_transparente": 2}, Description: "Encuadernación con espiral 40mm + 2 tapas"},
		{ID: "enc_50mm", Name: "Encuadernado Espiral 50mm", Category: ProductCategoryBinding, Price: 1350, Cost: 365,
			RequiredSupplies: map[string]float64{"espiral_50mm": 1, "tapa_transparente": 2}, Description: "Encuadernación con espiral 50mm + 2 tapas"},
	}
}

// InitialState: snapshot por defecto para primer arranque o datos corruptos.
func InitialState() AppState {
	return AppState{
		Products:      InitialProducts(),
		Supplies:      InitialSupplies(),
		Sales:         []Sale{},
		Expenses:      []Expense{},
		CashRegisters: []CashRegister{},
		Settings:      DefaultSettings(),
	}
}
