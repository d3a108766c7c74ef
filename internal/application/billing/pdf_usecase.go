package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

// PDFUseCase genera la representación PDF de un documento y la persiste en el
// store ({numero}.pdf). El render es síncrono dentro del request; no hay cola
// ni reintentos.
type PDFUseCase struct {
	docRepo      repository.DocumentRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
	generator    DocumentPDFGenerator
	store        PDFStore
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	docRepo repository.DocumentRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
	generator DocumentPDFGenerator,
	store PDFStore,
) *PDFUseCase {
	return &PDFUseCase{
		docRepo:      docRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
		store:        store,
	}
}

// Generate arma el payload del documento desde la base (settings + cliente +
// líneas: los totales del caller nunca entran al PDF), lo proyecta y guarda el
// resultado. Devuelve el nombre del archivo persistido.
func (uc *PDFUseCase) Generate(ctx context.Context, number string) (string, error) {
	doc, err := uc.docRepo.GetByNumber(number)
	if err != nil {
		return "", fmt.Errorf("pdf: obtener documento: %w", err)
	}
	if doc == nil {
		return "", domain.ErrNotFound
	}

	client, err := uc.clientRepo.GetByID(doc.ClientID)
	if err != nil {
		return "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil {
		return "", domain.ErrNotFound
	}

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return "", fmt.Errorf("pdf: obtener settings: %w", err)
	}
	if settings == nil {
		settings = entity.DefaultSettings(time.Now())
	}

	items, err := uc.docRepo.ItemsByDocumentID(doc.ID)
	if err != nil {
		return "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	payload := &DocumentPayload{
		Settings: settings,
		Client:   client,
		Document: doc,
		Items:    items,
	}
	data, err := uc.generator.GenerateDocumentPDF(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename := doc.Number + ".pdf"
	if err := uc.store.Save(filename, data); err != nil {
		return "", fmt.Errorf("pdf: guardar archivo: %w", err)
	}
	return filename, nil
}

// Download recupera un PDF ya generado por nombre de archivo.
func (uc *PDFUseCase) Download(filename string) ([]byte, error) {
	if !validPDFFilename(filename) {
		return nil, domain.ErrInvalidInput
	}
	return uc.store.Read(filename)
}

// validPDFFilename rechaza separadores de ruta y exige la extensión .pdf:
// el nombre viene de la URL y no debe poder escapar del directorio del store.
func validPDFFilename(name string) bool {
	if name == "" || !strings.HasSuffix(name, ".pdf") {
		return false
	}
	return !strings.ContainsAny(name, "/\\") && !strings.Contains(name, "..")
}
