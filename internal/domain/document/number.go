// Package document contiene la lógica de dominio pura del generador de
// documentos: numeración y cálculo de totales. Sin dependencias de
// infraestructura; el reloj se inyecta para poder probar colisiones.
package document

import (
	"fmt"
	"time"

	"github.com/jhoicas/facturador-api/internal/domain/entity"
)

// timestampLayout formato legible del sufijo: Año-Mes-Día-Hora-Minuto-Segundo.
// Hace que los números crezcan en orden lexicográfico bajo reloj normal, pero
// dos documentos del mismo tipo en el mismo segundo comparten número base:
// la unicidad estructural la garantiza el reintento con sufijo (WithSuffix)
// contra el constraint único de la base de datos.
const timestampLayout = "2006-01-02-15-04-05"

// Prefijos por defecto cuando aún no existe el registro de settings.
const (
	defaultInvoicePrefix = "INV-"
	defaultQuotePrefix   = "QUO-"
	defaultReceiptPrefix = "REC-"
	fallbackPrefix       = "DOC-"
)

// NumberGenerator produce números de documento legibles: prefijo por tipo +
// timestamp del reloj inyectado.
type NumberGenerator struct {
	now func() time.Time
}

// NewNumberGenerator construye el generador con el reloj del sistema.
func NewNumberGenerator() *NumberGenerator {
	return &NumberGenerator{now: time.Now}
}

// NewNumberGeneratorWithClock construye el generador con un reloj propio (tests).
func NewNumberGeneratorWithClock(now func() time.Time) *NumberGenerator {
	return &NumberGenerator{now: now}
}

// Next genera el número base para el tipo dado. settings puede ser nil
// (se usan los prefijos por defecto). Un tipo fuera del conjunto cerrado
// recibe el prefijo de respaldo DOC- en lugar de fallar: el borde HTTP ya
// rechaza tipos desconocidos, esta rama protege datos legados.
func (g *NumberGenerator) Next(docType string, settings *entity.Settings) string {
	return g.PrefixFor(docType, settings) + g.now().Format(timestampLayout)
}

// PrefixFor resuelve el prefijo para el tipo, desde settings o los defaults.
func (g *NumberGenerator) PrefixFor(docType string, settings *entity.Settings) string {
	switch docType {
	case entity.DocTypeInvoice:
		if settings != nil && settings.InvoicePrefix != "" {
			return settings.InvoicePrefix
		}
		return defaultInvoicePrefix
	case entity.DocTypeQuote:
		if settings != nil && settings.QuotePrefix != "" {
			return settings.QuotePrefix
		}
		return defaultQuotePrefix
	case entity.DocTypeReceipt:
		if settings != nil && settings.ReceiptPrefix != "" {
			return settings.ReceiptPrefix
		}
		return defaultReceiptPrefix
	default:
		return fallbackPrefix
	}
}

// WithSuffix agrega el sufijo de secuencia para el reintento tras una
// colisión: attempt 1 devuelve el número base, attempt 2 "base-2", etc.
func WithSuffix(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, attempt)
}
