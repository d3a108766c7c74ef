package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador-api/internal/application/billing"
	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/domain"
)

// PDFHandler maneja la generación y descarga de PDFs de documentos.
type PDFHandler struct {
	uc *billing.PDFUseCase
}

func NewPDFHandler(uc *billing.PDFUseCase) *PDFHandler {
	return &PDFHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar (o regenerar) el PDF de un documento
// @Tags         pdfs
// @Produce      json
// @Param        number  path  string  true  "Número de documento"
// @Success      200  {object}  dto.PDFResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{number}/pdf [post]
func (h *PDFHandler) Generate(c *fiber.Ctx) error {
	filename, err := h.uc.Generate(c.Context(), c.Params("number"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PDFResponse{Filename: filename})
}

// Download godoc
// @Summary      Descargar un PDF generado
// @Tags         pdfs
// @Produce      application/pdf
// @Param        filename  path  string  true  "Nombre de archivo ({numero}.pdf)"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pdfs/{filename} [get]
func (h *PDFHandler) Download(c *fiber.Ctx) error {
	filename := c.Params("filename")
	data, err := h.uc.Download(filename)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre de archivo inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "PDF no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+filename)
	return c.Send(data)
}
