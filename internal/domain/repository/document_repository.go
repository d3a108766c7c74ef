package repository

import "github.com/jhoicas/facturador-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para Document y sus líneas.
type DocumentRepository interface {
	// Create persiste la cabecera. Devuelve domain.ErrDuplicate si el número
	// ya existe (constraint único, respaldo del generador).
	Create(doc *entity.Document) error
	// CreateItem persiste una línea del documento.
	CreateItem(item *entity.DocumentItem) error
	// GetByNumber obtiene la cabecera por número de documento, o nil si no existe.
	GetByNumber(number string) (*entity.Document, error)
	// ItemsByDocumentID devuelve las líneas ordenadas por order_index.
	ItemsByDocumentID(documentID string) ([]*entity.DocumentItem, error)
}
