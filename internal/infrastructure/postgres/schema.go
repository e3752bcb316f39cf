package postgres

import (
	"context"
	"fmt"
)

// schema tablas del backend de desarrollo. Stocks y auditoría viajan como JSONB, igual que en la API.
const schema = `
CREATE TABLE IF NOT EXISTS warehousemen (
	id           TEXT PRIMARY KEY,
	warehouse_id TEXT NOT NULL DEFAULT '',
	secret_key   TEXT NOT NULL,
	name         TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS warehousemen_secret_key_idx ON warehousemen (secret_key);

CREATE TABLE IF NOT EXISTS products (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL DEFAULT '',
	barcode    TEXT NOT NULL DEFAULT '',
	price      NUMERIC(14,2) NOT NULL DEFAULT 0,
	supplier   TEXT NOT NULL DEFAULT '',
	image      TEXT NOT NULL DEFAULT '',
	stocks     JSONB NOT NULL DEFAULT '[]',
	edited_by  JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS products_barcode_idx ON products (barcode);

CREATE TABLE IF NOT EXISTS stock_movements (
	id              BIGSERIAL PRIMARY KEY,
	product_id      TEXT NOT NULL REFERENCES products (id) ON DELETE CASCADE,
	stock_id        TEXT NOT NULL,
	delta           INTEGER NOT NULL,
	warehouseman_id TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL
);`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}
