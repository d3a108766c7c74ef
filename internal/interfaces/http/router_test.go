package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-api/internal/application/billing"
	"github.com/jhoicas/facturador-api/internal/application/usecase"
	"github.com/jhoicas/facturador-api/internal/domain"
	"github.com/jhoicas/facturador-api/internal/domain/document"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
	apphttp "github.com/jhoicas/facturador-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar la app completa
// ──────────────────────────────────────────────────────────────────────────────

type memSettingsRepo struct{ stored *entity.Settings }

func (r *memSettingsRepo) Get() (*entity.Settings, error) {
	if r.stored == nil {
		return nil, nil
	}
	cp := *r.stored
	return &cp, nil
}
func (r *memSettingsRepo) Create(s *entity.Settings) error {
	if r.stored == nil {
		cp := *s
		r.stored = &cp
	}
	return nil
}
func (r *memSettingsRepo) Update(s *entity.Settings) error {
	cp := *s
	r.stored = &cp
	return nil
}

type memClientRepo struct{ clients []*entity.Client }

func (r *memClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients = append(r.clients, &cp)
	return nil
}
func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *memClientRepo) List() ([]*entity.Client, error) { return r.clients, nil }
func (r *memClientRepo) Update(c *entity.Client) error {
	for i, existing := range r.clients {
		if existing.ID == c.ID {
			cp := *c
			r.clients[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}
func (r *memClientRepo) Delete(id string) error {
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memDocumentRepo struct {
	docs  map[string]*entity.Document
	items map[string][]*entity.DocumentItem
}

func newMemDocumentRepo() *memDocumentRepo {
	return &memDocumentRepo{
		docs:  make(map[string]*entity.Document),
		items: make(map[string][]*entity.DocumentItem),
	}
}
func (r *memDocumentRepo) Create(doc *entity.Document) error {
	if _, ok := r.docs[doc.Number]; ok {
		return domain.ErrDuplicate
	}
	cp := *doc
	r.docs[doc.Number] = &cp
	return nil
}
func (r *memDocumentRepo) CreateItem(item *entity.DocumentItem) error {
	cp := *item
	r.items[item.DocumentID] = append(r.items[item.DocumentID], &cp)
	return nil
}
func (r *memDocumentRepo) GetByNumber(number string) (*entity.Document, error) {
	doc, ok := r.docs[number]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}
func (r *memDocumentRepo) ItemsByDocumentID(id string) ([]*entity.DocumentItem, error) {
	return r.items[id], nil
}

// passthroughTxRunner ejecuta fn directo contra el repo (sin transacción real).
type passthroughTxRunner struct{ repo *memDocumentRepo }

func (tx *passthroughTxRunner) RunDocument(_ context.Context, fn func(repository.DocumentRepository) error) error {
	return fn(tx.repo)
}

type nopPDFGenerator struct{}

func (nopPDFGenerator) GenerateDocumentPDF(context.Context, *billing.DocumentPayload) ([]byte, error) {
	return []byte("%PDF-test"), nil
}

type memPDFStore struct{ files map[string][]byte }

func (s *memPDFStore) Save(name string, data []byte) error {
	s.files[name] = data
	return nil
}
func (s *memPDFStore) Read(name string) ([]byte, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

// buildTestApp monta la app Fiber con repos en memoria.
func buildTestApp() (*fiber.App, *memClientRepo) {
	settingsRepo := &memSettingsRepo{}
	clientRepo := &memClientRepo{}
	docRepo := newMemDocumentRepo()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SettingsUC: usecase.NewSettingsUseCase(settingsRepo),
		ClientUC:   usecase.NewClientUseCase(clientRepo),
		CreateDocument: billing.NewCreateDocumentUseCase(
			&passthroughTxRunner{repo: docRepo}, docRepo, clientRepo, settingsRepo,
			document.NewNumberGenerator(),
		),
		PDFUC: billing.NewPDFUseCase(
			docRepo, clientRepo, settingsRepo,
			nopPDFGenerator{}, &memPDFStore{files: make(map[string][]byte)},
		),
	})
	return app, clientRepo
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: La primera lectura de settings devuelve los defaults (creación perezosa).
func TestHTTP_SettingsGetDevuelveDefaults(t *testing.T) {
	app, _ := buildTestApp()
	resp := doJSON(t, app, http.MethodGet, "/api/business-settings", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Your Business Name", body["business_name"])
	assert.Equal(t, "INV-", body["invoice_prefix"])
}

// Caso 2: Alta de cliente → 201; sin nombre → 400.
func TestHTTP_ClientCreate(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/clients/", `{"name":"Acme S.A.S."}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["id"])

	resp = doJSON(t, app, http.MethodPost, "/api/clients/", `{"email":"x@y.z"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// Caso 3: Update de cliente inexistente → 404 con cuerpo de error.
func TestHTTP_ClientUpdateInexistente(t *testing.T) {
	app, _ := buildTestApp()
	resp := doJSON(t, app, http.MethodPut, "/api/clients/no-existe", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

// Caso 4: Ciclo completo: cliente → documento → consulta → PDF → descarga.
func TestHTTP_FlujoDocumentoCompleto(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/clients/", `{"name":"Cliente Final"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	clientID := decodeBody(t, resp)["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/documents/", `{
		"document_type": "invoice",
		"client_id": "`+clientID+`",
		"issue_date": "2025-03-15",
		"items": [
			{"description": "Servicio", "quantity": "2", "unit_price": "10"}
		]
	}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	number := created["document_number"].(string)
	assert.True(t, strings.HasPrefix(number, "INV-"))
	assert.Equal(t, "20", created["subtotal"])

	resp = doJSON(t, app, http.MethodGet, "/api/documents/"+number, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/documents/"+number+"/pdf", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	filename := decodeBody(t, resp)["filename"].(string)
	assert.Equal(t, number+".pdf", filename)

	resp = doJSON(t, app, http.MethodGet, "/api/pdfs/"+filename, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()
}

// Caso 5: Tipo de documento desconocido → 400.
func TestHTTP_DocumentoTipoInvalido(t *testing.T) {
	app, _ := buildTestApp()
	resp := doJSON(t, app, http.MethodPost, "/api/documents/", `{
		"document_type": "memo", "client_id": "x", "issue_date": "2025-03-15"
	}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
}

// Caso 6: Vista previa de número para cada tipo; el tipo desconocido usa DOC-.
func TestHTTP_NextNumberPreview(t *testing.T) {
	app, _ := buildTestApp()

	for prefix, docType := range map[string]string{
		"INV-": "invoice", "QUO-": "quote", "REC-": "receipt", "DOC-": "otro",
	} {
		resp := doJSON(t, app, http.MethodGet, "/api/next-document-number/"+docType, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.True(t, strings.HasPrefix(body["document_number"].(string), prefix),
			"tipo %s debe usar prefijo %s", docType, prefix)
	}
}

// Caso 7: Export con formato desconocido → 400; csv y json → adjunto.
func TestHTTP_ExportSettings(t *testing.T) {
	app, _ := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/export-settings/xml", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/export-settings/csv", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "business_settings.csv")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/export-settings/json", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
	resp.Body.Close()
}
