package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador-api/internal/application/billing"
	"github.com/jhoicas/facturador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SettingsUC     *usecase.SettingsUseCase
	ClientUC       *usecase.ClientUseCase
	CreateDocument *billing.CreateDocumentUseCase
	PDFUC          *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Configuración del negocio (singleton) + exportación/importación
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/business-settings", settingsHandler.Get)
	api.Post("/business-settings", settingsHandler.Update)
	api.Get("/export-settings/:format", settingsHandler.Export)
	api.Post("/import-settings", settingsHandler.Import)

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Documentos (facturas, cotizaciones, recibos)
	documents := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.CreateDocument)
	documents.Post("/", documentHandler.Create)
	documents.Get("/:number", documentHandler.GetByNumber)
	api.Get("/next-document-number/:type", documentHandler.NextNumber)

	// PDFs
	pdfHandler := NewPDFHandler(deps.PDFUC)
	documents.Post("/:number/pdf", pdfHandler.Generate)
	api.Get("/pdfs/:filename", pdfHandler.Download)
}
