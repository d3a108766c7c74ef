package document

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals resultado del cálculo de un documento.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// LineTotal calcula el total de una línea: cantidad × precio unitario.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// ComputeTotals suma los totales de línea en el orden de entrada y aplica la
// tasa de impuesto (porcentaje) de settings:
//
//	subtotal   = Σ quantity×unit_price
//	tax_amount = subtotal × tax_rate/100
//	total      = subtotal + tax_amount
//
// La aritmética es decimal exacta; una tasa negativa se acepta tal cual
// (settings no valida rangos).
func ComputeTotals(items []entity.DocumentItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.TotalPrice)
	}
	tax := subtotal.Mul(taxRate).Div(hundred)
	return Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax),
	}
}
