package billing

import (
	"context"

	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

// DocumentTxRunner ejecuta una función dentro de una transacción con un repo
// de documentos atado a ella. Cualquier error revierte cabecera y líneas.
type DocumentTxRunner interface {
	RunDocument(ctx context.Context, fn func(docRepo repository.DocumentRepository) error) error
}

// DocumentPayload datos ya ensamblados para el render del PDF. Se construye
// siempre en el servidor: los totales del caller nunca llegan al documento.
type DocumentPayload struct {
	Settings *entity.Settings
	Client   *entity.Client
	Document *entity.Document
	Items    []*entity.DocumentItem
}

// DocumentPDFGenerator proyecta un documento ensamblado a bytes de PDF.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, payload *DocumentPayload) ([]byte, error)
}

// PDFStore persiste y recupera PDFs por nombre de archivo ({numero}.pdf).
type PDFStore interface {
	Save(filename string, data []byte) error
	// Read devuelve domain.ErrNotFound si el archivo no existe.
	Read(filename string) ([]byte, error)
}
