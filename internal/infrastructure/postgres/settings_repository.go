package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL.
// La tabla admite una sola fila (id = 1, CHECK en el schema).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

const settingsColumns = `id, business_name, address, phone, email, website,
	logo_url, signature_url, tax_rate, currency_code, currency_symbol,
	invoice_prefix, quote_prefix, receipt_prefix, created_at, updated_at`

// Get obtiene el registro de configuración, o nil si aún no existe.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM business_settings WHERE id = 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.BusinessName, &s.Address, &s.Phone, &s.Email, &s.Website,
		&s.LogoURL, &s.SignatureURL, &s.TaxRate, &s.CurrencyCode, &s.CurrencySymbol,
		&s.InvoicePrefix, &s.QuotePrefix, &s.ReceiptPrefix, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Create inserta el registro. ON CONFLICT DO NOTHING: si dos primeras
// lecturas corren en paralelo, solo una fila sobrevive.
func (r *SettingsRepo) Create(s *entity.Settings) error {
	query := `
		INSERT INTO business_settings (` + settingsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.BusinessName, s.Address, s.Phone, s.Email, s.Website,
		s.LogoURL, s.SignatureURL, s.TaxRate, s.CurrencyCode, s.CurrencySymbol,
		s.InvoicePrefix, s.QuotePrefix, s.ReceiptPrefix, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Update reemplaza todos los campos del registro (last-writer-wins).
func (r *SettingsRepo) Update(s *entity.Settings) error {
	query := `
		UPDATE business_settings
		SET business_name = $1, address = $2, phone = $3, email = $4,
		    website = $5, logo_url = $6, signature_url = $7, tax_rate = $8,
		    currency_code = $9, currency_symbol = $10, invoice_prefix = $11,
		    quote_prefix = $12, receipt_prefix = $13, updated_at = $14
		WHERE id = 1`
	_, err := r.q.Exec(context.Background(), query,
		s.BusinessName, s.Address, s.Phone, s.Email,
		s.Website, s.LogoURL, s.SignatureURL, s.TaxRate,
		s.CurrencyCode, s.CurrencySymbol, s.InvoicePrefix,
		s.QuotePrefix, s.ReceiptPrefix, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
