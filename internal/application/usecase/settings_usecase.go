package usecase

import (
	"time"

	"github.com/jhoicas/facturador-api/internal/application/dto"
	"github.com/jhoicas/facturador-api/internal/domain/entity"
	"github.com/jhoicas/facturador-api/internal/domain/repository"
)

// SettingsUseCase casos de uso del perfil del negocio (registro único).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso con el puerto de persistencia.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración; si aún no existe la crea con los defaults.
// La primera lectura puede por tanto escribir. Idempotente: llamadas
// sucesivas devuelven los mismos valores y nunca crean una segunda fila.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.getOrCreate()
	if err != nil {
		return nil, err
	}
	return settingsToResponse(s), nil
}

// Update aplica solo los campos presentes (allow-list explícito) y refresca
// updated_at. No se validan valores: una tasa negativa se acepta tal cual.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.getOrCreate()
	if err != nil {
		return nil, err
	}

	applySettingsUpdate(s, in)
	s.UpdatedAt = time.Now()

	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return settingsToResponse(s), nil
}

// Settings devuelve la entidad (para generación de números y PDF),
// creándola si hace falta.
func (uc *SettingsUseCase) Settings() (*entity.Settings, error) {
	return uc.getOrCreate()
}

func (uc *SettingsUseCase) getOrCreate() (*entity.Settings, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	s = entity.DefaultSettings(time.Now())
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

func applySettingsUpdate(s *entity.Settings, in dto.UpdateSettingsRequest) {
	if in.BusinessName != nil {
		s.BusinessName = *in.BusinessName
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Website != nil {
		s.Website = *in.Website
	}
	if in.LogoURL != nil {
		s.LogoURL = *in.LogoURL
	}
	if in.SignatureURL != nil {
		s.SignatureURL = *in.SignatureURL
	}
	if in.TaxRate != nil {
		s.TaxRate = *in.TaxRate
	}
	if in.CurrencyCode != nil {
		s.CurrencyCode = *in.CurrencyCode
	}
	if in.CurrencySymbol != nil {
		s.CurrencySymbol = *in.CurrencySymbol
	}
	if in.InvoicePrefix != nil {
		s.InvoicePrefix = *in.InvoicePrefix
	}
	if in.QuotePrefix != nil {
		s.QuotePrefix = *in.QuotePrefix
	}
	if in.ReceiptPrefix != nil {
		s.ReceiptPrefix = *in.ReceiptPrefix
	}
}

func settingsToResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		BusinessName:   s.BusinessName,
		Address:        s.Address,
		Phone:          s.Phone,
		Email:          s.Email,
		Website:        s.Website,
		LogoURL:        s.LogoURL,
		SignatureURL:   s.SignatureURL,
		TaxRate:        s.TaxRate,
		CurrencyCode:   s.CurrencyCode,
		CurrencySymbol: s.CurrencySymbol,
		InvoicePrefix:  s.InvoicePrefix,
		QuotePrefix:    s.QuotePrefix,
		ReceiptPrefix:  s.ReceiptPrefix,
	}
}
