package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/document"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

// issueDateLayout formato de fecha calendario de la API (YYYY-MM-DD).
const issueDateLayout = "2006-01-02"

// maxNumberAttempts intentos de inserción ante colisión de número. El primer
// intento usa el número base; los siguientes agregan sufijo -2, -3, ...
const maxNumberAttempts = 5

// CreateDocumentUseCase ensambla y persiste documentos (factura, cotización,
// recibo): calcula totales por línea y de cabecera, asigna número generado y
// escribe todo en una sola transacción.
type CreateDocumentUseCase struct {
	txRunner     DocumentTxRunner
	docRepo      repository.DocumentRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
	numbers      *document.NumberGenerator
}

// NewCreateDocumentUseCase construye el caso de uso. docRepo va atado al pool
// (lecturas); las escrituras pasan por txRunner.
func NewCreateDocumentUseCase(
	txRunner DocumentTxRunner,
	docRepo repository.DocumentRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
	numbers *document.NumberGenerator,
) *CreateDocumentUseCase {
	return &CreateDocumentUseCase{
		txRunner:     txRunner,
		docRepo:      docRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		numbers:      numbers,
	}
}

// Create valida la entrada, calcula totales y persiste cabecera y líneas en
// una transacción (todo-o-nada). Ante colisión de número reintenta con sufijo
// de secuencia hasta maxNumberAttempts.
func (uc *CreateDocumentUseCase) Create(ctx context.Context, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if !entity.ValidDocType(in.DocumentType) {
		return nil, fmt.Errorf("%w: document_type %q", domain.ErrInvalidInput, in.DocumentType)
	}
	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}

	issueDate, err := time.Parse(issueDateLayout, in.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: issue_date %q", domain.ErrInvalidInput, in.IssueDate)
	}
	var dueDate *time.Time
	if in.DueDate != "" {
		d, err := time.Parse(issueDateLayout, in.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: due_date %q", domain.ErrInvalidInput, in.DueDate)
		}
		dueDate = &d
	}

	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	// settings puede ser nil (prefijos y tasa por defecto)
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc := &entity.Document{
		ID:        uuid.New().String(),
		Type:      in.DocumentType,
		ClientID:  client.ID,
		IssueDate: issueDate,
		DueDate:   dueDate,
		Notes:     in.Notes,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	items := make([]entity.DocumentItem, 0, len(in.Items))
	for i, it := range in.Items {
		orderIndex := it.OrderIndex
		if orderIndex == 0 {
			orderIndex = i
		}
		items = append(items, entity.DocumentItem{
			ID:          uuid.New().String(),
			DocumentID:  doc.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  document.LineTotal(it.Quantity, it.UnitPrice),
			OrderIndex:  orderIndex,
		})
	}

	taxRate := entity.DefaultSettings(now).TaxRate
	if settings != nil {
		taxRate = settings.TaxRate
	}
	totals := document.ComputeTotals(items, taxRate)
	doc.Subtotal = totals.Subtotal
	doc.TaxAmount = totals.TaxAmount
	doc.TotalAmount = totals.TotalAmount

	base := uc.numbers.Next(in.DocumentType, settings)
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		doc.Number = document.WithSuffix(base, attempt)
		err = uc.txRunner.RunDocument(ctx, func(docRepo repository.DocumentRepository) error {
			if err := docRepo.Create(doc); err != nil {
				return err
			}
			for i := range items {
				if err := docRepo.CreateItem(&items[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			return documentToResponse(doc, client, items), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: número de documento agotó los reintentos", domain.ErrDuplicate)
}

// NextNumber genera el número siguiente para el tipo dado sin reservarlo
// (vista previa). Un tipo desconocido recibe el prefijo de respaldo DOC-.
func (uc *CreateDocumentUseCase) NextNumber(docType string) (string, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return "", err
	}
	return uc.numbers.Next(docType, settings), nil
}

// GetByNumber obtiene un documento almacenado con sus líneas.
func (uc *CreateDocumentUseCase) GetByNumber(number string) (*dto.DocumentResponse, error) {
	doc, err := uc.docRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	storedItems, err := uc.docRepo.ItemsByDocumentID(doc.ID)
	if err != nil {
		return nil, err
	}
	items := make([]entity.DocumentItem, 0, len(storedItems))
	for _, it := range storedItems {
		items = append(items, *it)
	}
	client, err := uc.clientRepo.GetByID(doc.ClientID)
	if err != nil {
		return nil, err
	}
	return documentToResponse(doc, client, items), nil
}

func documentToResponse(doc *entity.Document, client *entity.Client, items []entity.DocumentItem) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{
		ID:             doc.ID,
		DocumentType:   doc.Type,
		DocumentNumber: doc.Number,
		ClientID:       doc.ClientID,
		IssueDate:      doc.IssueDate.Format(issueDateLayout),
		Subtotal:       doc.Subtotal,
		TaxAmount:      doc.TaxAmount,
		TotalAmount:    doc.TotalAmount,
		Notes:          doc.Notes,
		Status:         doc.Status,
		Items:          make([]dto.DocumentItemResponse, 0, len(items)),
	}
	if client != nil {
		resp.ClientName = client.Name
	}
	if doc.DueDate != nil {
		resp.DueDate = doc.DueDate.Format(issueDateLayout)
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.DocumentItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			OrderIndex:  it.OrderIndex,
		})
	}
	return resp
}
