package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento soportados (conjunto cerrado, validado en el borde).
const (
	DocTypeInvoice = "invoice"
	DocTypeQuote   = "quote"
	DocTypeReceipt = "receipt"
)

// Estados de un documento. No hay reglas de transición: el estado es informativo.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// ValidDocType informa si t pertenece al conjunto cerrado de tipos.
func ValidDocType(t string) bool {
	return t == DocTypeInvoice || t == DocTypeQuote || t == DocTypeReceipt
}

// ValidStatus informa si s es un estado reconocido.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusSent || s == StatusPaid || s == StatusCancelled
}

// Document representa la cabecera de una factura, cotización o recibo.
// Los totales siempre se recalculan a partir de las líneas al crear;
// nunca los aporta el caller.
type Document struct {
	ID          string
	Type        string // invoice, quote, receipt
	Number      string // identificador legible, único global
	ClientID    string
	IssueDate   time.Time
	DueDate     *time.Time // opcional
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	Notes       string
	Status      string // draft, sent, paid, cancelled
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DocumentItem representa una línea del documento. Pertenece a exactamente un
// documento y vive y muere con él (cascade en la FK).
type DocumentItem struct {
	ID          string
	DocumentID  string
	Description string
	Quantity    decimal.Decimal // puede ser fraccionaria
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal // quantity × unit_price, fijado al crear
	OrderIndex  int             // orden de despliegue
}
