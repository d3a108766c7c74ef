package repository

import "github.com/jhoicas/facturador-api/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para el registro único
// de configuración del negocio.
type SettingsRepository interface {
	// Get devuelve el registro o nil si aún no existe.
	Get() (*entity.Settings, error)
	// Create inserta el registro (id fijo = 1).
	Create(settings *entity.Settings) error
	// Update reemplaza todos los campos del registro.
	Update(settings *entity.Settings) error
}
