package entity

import "time"

// Client representa un cliente del negocio (destinatario de los documentos).
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	Company   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
