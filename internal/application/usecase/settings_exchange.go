package usecase

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/domain"
)

// Formatos de intercambio de la configuración.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// settingsFields orden fijo de campos para el CSV (Field,Value).
var settingsFields = []string{
	"business_name", "address", "phone", "email", "website",
	"logo_url", "signature_url", "tax_rate", "currency_code",
	"currency_symbol", "invoice_prefix", "quote_prefix", "receipt_prefix",
}

// Export serializa la configuración actual en el formato pedido.
// Devuelve los bytes y el nombre de archivo sugerido para el adjunto.
func (uc *SettingsUseCase) Export(format string) ([]byte, string, error) {
	resp, err := uc.Get()
	if err != nil {
		return nil, "", err
	}

	switch format {
	case FormatCSV:
		data, err := exportCSV(resp)
		return data, "business_settings.csv", err
	case FormatJSON:
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("export json: %w", err)
		}
		return data, "business_settings.json", nil
	default:
		return nil, "", domain.ErrUnsupportedFormat
	}
}

// Import aplica un archivo exportado sobre la configuración. El formato se
// decide por la extensión del nombre de archivo; cualquier otra extensión
// devuelve domain.ErrUnsupportedFormat.
//
// Asimetría documentada del CSV: solo tax_rate se coacciona a numérico, el
// resto de campos importan como texto. El JSON reproduce los valores exactos.
func (uc *SettingsUseCase) Import(filename string, content []byte) (*dto.SettingsResponse, error) {
	var (
		in  dto.UpdateSettingsRequest
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		in, err = parseCSV(content)
	case ".json":
		err = json.Unmarshal(content, &in) // claves desconocidas se ignoran
		if err != nil {
			err = fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	default:
		return nil, domain.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	return uc.Update(in)
}

func exportCSV(resp *dto.SettingsResponse) ([]byte, error) {
	values := settingsValues(resp)
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Field", "Value"}); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for _, field := range settingsFields {
		if err := w.Write([]string{field, values[field]}); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

func parseCSV(content []byte) (dto.UpdateSettingsRequest, error) {
	var in dto.UpdateSettingsRequest

	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1 // filas cortas se saltan, no abortan
	records, err := r.ReadAll()
	if err != nil {
		return in, fmt.Errorf("%w: csv malformado: %v", domain.ErrInvalidInput, err)
	}

	for i, row := range records {
		if i == 0 || len(row) < 2 {
			continue // cabecera Field,Value
		}
		key, value := row[0], row[1]
		if key == "tax_rate" {
			rate, err := decimal.NewFromString(value)
			if err != nil {
				return in, fmt.Errorf("%w: tax_rate no numérico: %q", domain.ErrInvalidInput, value)
			}
			in.TaxRate = &rate
			continue
		}
		assignSettingsField(&in, key, value)
	}
	return in, nil
}

// assignSettingsField asigna un valor de texto al campo del allow-list.
// Claves desconocidas se ignoran en silencio, igual que en el import JSON.
func assignSettingsField(in *dto.UpdateSettingsRequest, key, value string) {
	v := value
	switch key {
	case "business_name":
		in.BusinessName = &v
	case "address":
		in.Address = &v
	case "phone":
		in.Phone = &v
	case "email":
		in.Email = &v
	case "website":
		in.Website = &v
	case "logo_url":
		in.LogoURL = &v
	case "signature_url":
		in.SignatureURL = &v
	case "currency_code":
		in.CurrencyCode = &v
	case "currency_symbol":
		in.CurrencySymbol = &v
	case "invoice_prefix":
		in.InvoicePrefix = &v
	case "quote_prefix":
		in.QuotePrefix = &v
	case "receipt_prefix":
		in.ReceiptPrefix = &v
	}
}

func settingsValues(resp *dto.SettingsResponse) map[string]string {
	return map[string]string{
		"business_name":   resp.BusinessName,
		"address":         resp.Address,
		"phone":           resp.Phone,
		"email":           resp.Email,
		"website":         resp.Website,
		"logo_url":        resp.LogoURL,
		"signature_url":   resp.SignatureURL,
		"tax_rate":        resp.TaxRate.String(),
		"currency_code":   resp.CurrencyCode,
		"currency_symbol": resp.CurrencySymbol,
		"invoice_prefix":  resp.InvoicePrefix,
		"quote_prefix":    resp.QuotePrefix,
		"receipt_prefix":  resp.ReceiptPrefix,
	}
}
