package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings representa el perfil del negocio (registro único por despliegue).
// Se crea de forma perezosa con valores por defecto en la primera lectura.
type Settings struct {
	ID             int // siempre 1: la tabla admite una sola fila
	BusinessName   string
	Address        string
	Phone          string
	Email          string
	Website        string
	LogoURL        string
	SignatureURL   string
	TaxRate        decimal.Decimal // porcentaje, sin validación de rango
	CurrencyCode   string
	CurrencySymbol string
	InvoicePrefix  string
	QuotePrefix    string
	ReceiptPrefix  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DefaultSettings devuelve el registro con los valores por defecto documentados.
func DefaultSettings(now time.Time) *Settings {
	return &Settings{
		ID:             1,
		BusinessName:   "Your Business Name",
		TaxRate:        decimal.Zero,
		CurrencyCode:   "USD",
		CurrencySymbol: "$",
		InvoicePrefix:  "INV-",
		QuotePrefix:    "QUO-",
		ReceiptPrefix:  "REC-",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
