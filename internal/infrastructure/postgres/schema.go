package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente de la aplicación. business_settings admite una sola
// fila (id fijo con CHECK); las FKs en cascada hacen que borrar un cliente
// arrastre sus documentos, y borrar un documento sus líneas.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS business_settings (
		id               INT PRIMARY KEY CHECK (id = 1),
		business_name    VARCHAR(200) NOT NULL DEFAULT 'Your Business Name',
		address          TEXT         NOT NULL DEFAULT '',
		phone            VARCHAR(50)  NOT NULL DEFAULT '',
		email            VARCHAR(120) NOT NULL DEFAULT '',
		website          VARCHAR(200) NOT NULL DEFAULT '',
		logo_url         VARCHAR(500) NOT NULL DEFAULT '',
		signature_url    VARCHAR(500) NOT NULL DEFAULT '',
		tax_rate         NUMERIC(10,4) NOT NULL DEFAULT 0,
		currency_code    VARCHAR(10)  NOT NULL DEFAULT 'USD',
		currency_symbol  VARCHAR(10)  NOT NULL DEFAULT '$',
		invoice_prefix   VARCHAR(20)  NOT NULL DEFAULT 'INV-',
		quote_prefix     VARCHAR(20)  NOT NULL DEFAULT 'QUO-',
		receipt_prefix   VARCHAR(20)  NOT NULL DEFAULT 'REC-',
		created_at       TIMESTAMPTZ  NOT NULL,
		updated_at       TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id         UUID PRIMARY KEY,
		name       VARCHAR(200) NOT NULL,
		email      VARCHAR(120) NOT NULL DEFAULT '',
		phone      VARCHAR(50)  NOT NULL DEFAULT '',
		address    TEXT         NOT NULL DEFAULT '',
		company    VARCHAR(200) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ  NOT NULL,
		updated_at TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id            UUID PRIMARY KEY,
		document_type VARCHAR(20)  NOT NULL,
		number        VARCHAR(50)  NOT NULL UNIQUE,
		client_id     UUID         NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		issue_date    DATE         NOT NULL,
		due_date      DATE,
		subtotal      NUMERIC(18,4) NOT NULL DEFAULT 0,
		tax_amount    NUMERIC(18,4) NOT NULL DEFAULT 0,
		total_amount  NUMERIC(18,4) NOT NULL DEFAULT 0,
		notes         TEXT         NOT NULL DEFAULT '',
		status        VARCHAR(20)  NOT NULL DEFAULT 'draft',
		created_at    TIMESTAMPTZ  NOT NULL,
		updated_at    TIMESTAMPTZ  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS document_items (
		id          UUID PRIMARY KEY,
		document_id UUID          NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
		description VARCHAR(500)  NOT NULL,
		quantity    NUMERIC(18,4) NOT NULL DEFAULT 1,
		unit_price  NUMERIC(18,4) NOT NULL DEFAULT 0,
		total_price NUMERIC(18,4) NOT NULL DEFAULT 0,
		order_index INT           NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_client_id ON documents(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_document_items_document_id ON document_items(document_id)`,
}

// EnsureSchema crea las tablas si no existen. Se ejecuta en el arranque;
// no hay tooling de migraciones (fuera de alcance).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
