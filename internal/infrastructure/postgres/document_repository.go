package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste la cabecera del documento. El constraint único sobre number
// es el respaldo del generador: una colisión devuelve domain.ErrDuplicate
// para que el caso de uso reintente con sufijo.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	query := `
		INSERT INTO documents (id, document_type, number, client_id, issue_date, due_date,
			subtotal, tax_amount, total_amount, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Type, doc.Number, doc.ClientID, doc.IssueDate, doc.DueDate,
		doc.Subtotal, doc.TaxAmount, doc.TotalAmount, doc.Notes, doc.Status,
		doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// CreateItem persiste una línea del documento.
func (r *DocumentRepo) CreateItem(item *entity.DocumentItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	query := `
		INSERT INTO document_items (id, document_id, description, quantity, unit_price, total_price, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.DocumentID, item.Description, item.Quantity, item.UnitPrice,
		item.TotalPrice, item.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("insert document item: %w", err)
	}
	return nil
}

// GetByNumber obtiene la cabecera por número de documento, o nil si no existe.
func (r *DocumentRepo) GetByNumber(number string) (*entity.Document, error) {
	query := `
		SELECT id, document_type, number, client_id, issue_date, due_date,
		       subtotal, tax_amount, total_amount, notes, status, created_at, updated_at
		FROM documents WHERE number = $1`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, number).Scan(
		&d.ID, &d.Type, &d.Number, &d.ClientID, &d.IssueDate, &d.DueDate,
		&d.Subtotal, &d.TaxAmount, &d.TotalAmount, &d.Notes, &d.Status,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ItemsByDocumentID devuelve las líneas del documento ordenadas por order_index.
func (r *DocumentRepo) ItemsByDocumentID(documentID string) ([]*entity.DocumentItem, error) {
	query := `
		SELECT id, document_id, description, quantity, unit_price, total_price, order_index
		FROM document_items WHERE document_id = $1 ORDER BY order_index`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentItem
	for rows.Next() {
		var it entity.DocumentItem
		if err := rows.Scan(&it.ID, &it.DocumentID, &it.Description, &it.Quantity, &it.UnitPrice, &it.TotalPrice, &it.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan document item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
