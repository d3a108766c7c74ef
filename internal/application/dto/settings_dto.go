package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest body para POST /api/business-settings.
// Allow-list explícito: solo estos campos son actualizables; las claves JSON
// desconocidas se ignoran. Campos nil quedan sin tocar.
type UpdateSettingsRequest struct {
	BusinessName   *string          `json:"business_name"`
	Address        *string          `json:"address"`
	Phone          *string          `json:"phone"`
	Email          *string          `json:"email"`
	Website        *string          `json:"website"`
	LogoURL        *string          `json:"logo_url"`
	SignatureURL   *string          `json:"signature_url"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	CurrencyCode   *string          `json:"currency_code"`
	CurrencySymbol *string          `json:"currency_symbol"`
	InvoicePrefix  *string          `json:"invoice_prefix"`
	QuotePrefix    *string          `json:"quote_prefix"`
	ReceiptPrefix  *string          `json:"receipt_prefix"`
}

// SettingsResponse configuración del negocio en respuestas y exportación.
// Sin timestamps: el export/import JSON reproduce exactamente estos campos y
// el orden de declaración define el orden de filas del CSV exportado.
type SettingsResponse struct {
	BusinessName   string          `json:"business_name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Website        string          `json:"website"`
	LogoURL        string          `json:"logo_url"`
	SignatureURL   string          `json:"signature_url"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	CurrencyCode   string          `json:"currency_code"`
	CurrencySymbol string          `json:"currency_symbol"`
	InvoicePrefix  string          `json:"invoice_prefix"`
	QuotePrefix    string          `json:"quote_prefix"`
	ReceiptPrefix  string          `json:"receipt_prefix"`
}
