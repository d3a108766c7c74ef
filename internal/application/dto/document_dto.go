package dto

import "github.com/shopspring/decimal"

// CreateDocumentRequest body para POST /api/documents.
// Los totales nunca vienen del caller: se calculan siempre desde las líneas.
type CreateDocumentRequest struct {
	DocumentType string                `json:"document_type"`
	ClientID     string                `json:"client_id"`
	IssueDate    string                `json:"issue_date"` // YYYY-MM-DD
	DueDate      string                `json:"due_date,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	Status       string                `json:"status,omitempty"` // default: draft
	Items        []DocumentItemRequest `json:"items"`
}

// DocumentItemRequest línea del documento (descripción, cantidad, precio unitario).
type DocumentItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	OrderIndex  int             `json:"order_index"`
}

// DocumentResponse documento con totales calculados y número generado.
type DocumentResponse struct {
	ID             string                 `json:"id"`
	DocumentType   string                 `json:"document_type"`
	DocumentNumber string                 `json:"document_number"`
	ClientID       string                 `json:"client_id"`
	ClientName     string                 `json:"client_name,omitempty"`
	IssueDate      string                 `json:"issue_date"`
	DueDate        string                 `json:"due_date,omitempty"`
	Subtotal       decimal.Decimal        `json:"subtotal"`
	TaxAmount      decimal.Decimal        `json:"tax_amount"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	Notes          string                 `json:"notes,omitempty"`
	Status         string                 `json:"status"`
	Items          []DocumentItemResponse `json:"items"`
}

// DocumentItemResponse línea en la respuesta, en orden de despliegue.
type DocumentItemResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	OrderIndex  int             `json:"order_index"`
}

// NumberPreviewResponse respuesta de GET /api/next-document-number/:type.
// El número mostrado no queda reservado.
type NumberPreviewResponse struct {
	DocumentNumber string `json:"document_number"`
}

// PDFResponse respuesta de POST /api/documents/:number/pdf.
type PDFResponse struct {
	Filename string `json:"filename"`
}
