package usecase_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/application/usecase"
	"github.com/jhoicas/facturador-api/internal/domain"
)

func seededUseCase(t *testing.T) *usecase.SettingsUseCase {
	t.Helper()
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})
	rate := decimal.RequireFromString("19")
	_, err := uc.Update(dto.UpdateSettingsRequest{
		BusinessName:   strPtr("Ferretería Central"),
		Address:        strPtr("Calle 10 #4-21"),
		Email:          strPtr("ventas@ferrecentral.co"),
		TaxRate:        &rate,
		CurrencyCode:   strPtr("COP"),
		CurrencySymbol: strPtr("$"),
		InvoicePrefix:  strPtr("FAC-"),
	})
	require.NoError(t, err)
	return uc
}

// Caso 1: Export JSON → Import JSON reproduce la configuración exacta.
func TestSettingsExchange_JSONRoundTrip(t *testing.T) {
	src := seededUseCase(t)
	data, filename, err := src.Export(usecase.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "business_settings.json", filename)

	dst := usecase.NewSettingsUseCase(&fakeSettingsRepo{})
	imported, err := dst.Import("business_settings.json", data)
	require.NoError(t, err)

	original, err := src.Get()
	require.NoError(t, err)
	assert.Equal(t, original, imported, "el round-trip JSON debe ser exacto")
}

// Caso 2: El CSV lleva cabecera Field,Value y una fila por campo en orden fijo.
func TestSettingsExchange_FormatoCSV(t *testing.T) {
	src := seededUseCase(t)
	data, filename, err := src.Export(usecase.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "business_settings.csv", filename)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Equal(t, 14, len(records), "cabecera + 13 campos")
	assert.Equal(t, []string{"Field", "Value"}, records[0])
	assert.Equal(t, []string{"business_name", "Ferretería Central"}, records[1])
	assert.Equal(t, []string{"tax_rate", "19"}, records[8])
}

// Caso 3: Export CSV → Import CSV conserva los valores, tax_rate numérico.
func TestSettingsExchange_CSVRoundTrip(t *testing.T) {
	src := seededUseCase(t)
	data, _, err := src.Export(usecase.FormatCSV)
	require.NoError(t, err)

	dst := usecase.NewSettingsUseCase(&fakeSettingsRepo{})
	imported, err := dst.Import("settings.csv", data)
	require.NoError(t, err)

	original, err := src.Get()
	require.NoError(t, err)
	assert.Equal(t, original.BusinessName, imported.BusinessName)
	assert.Equal(t, original.InvoicePrefix, imported.InvoicePrefix)
	assert.True(t, original.TaxRate.Equal(imported.TaxRate))
}

// Caso 4: Formatos y extensiones desconocidos.
func TestSettingsExchange_FormatoNoSoportado(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	_, _, err := uc.Export("xml")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	_, err = uc.Import("settings.xlsx", []byte("lo que sea"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

// Caso 5: tax_rate no numérico en el CSV es error de validación.
func TestSettingsExchange_CSVTaxRateNoNumerico(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})
	content := "Field,Value\ntax_rate,diecinueve\n"
	_, err := uc.Import("settings.csv", []byte(content))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 6: Claves desconocidas del CSV y del JSON se ignoran en silencio.
func TestSettingsExchange_ClavesDesconocidasSeIgnoran(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	csvContent := "Field,Value\nbusiness_name,Tienda Azul\nid,999\ncreated_at,2024-01-01\n"
	out, err := uc.Import("settings.csv", []byte(csvContent))
	require.NoError(t, err)
	assert.Equal(t, "Tienda Azul", out.BusinessName)

	raw, err := json.Marshal(map[string]any{"business_name": "Tienda Roja", "id": 999})
	require.NoError(t, err)
	out, err = uc.Import("settings.json", raw)
	require.NoError(t, err)
	assert.Equal(t, "Tienda Roja", out.BusinessName)
}
