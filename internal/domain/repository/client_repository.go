package repository

import "github.com/jhoicas/facturador-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// List devuelve todos los clientes en orden de almacenamiento.
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	// Delete elimina el cliente; la FK en cascada arrastra sus documentos.
	// Devuelve domain.ErrNotFound si el id no existe.
	Delete(id string) error
}
