package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
)

var _ repository.InventoryStore = (*InventoryStore)(nil)

const productColumns = `id, name, type, barcode, price, supplier, image, stocks, edited_by`

// InventoryStore implementación del puerto InventoryStore sobre PostgreSQL.
type InventoryStore struct {
	pool *pgxpool.Pool
}

// NewInventoryStore construye el adaptador de persistencia.
func NewInventoryStore(pool *pgxpool.Pool) *InventoryStore {
	return &InventoryStore{pool: pool}
}

// ListProducts en orden de alta.
func (s *InventoryStore) ListProducts(ctx context.Context) ([]entity.Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// GetProduct (nil, nil) si no existe.
func (s *InventoryStore) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (s *InventoryStore) FindProductsByBarcode(ctx context.Context, barcode string) ([]entity.Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE barcode = $1 ORDER BY created_at, id`, barcode)
	if err != nil {
		return nil, fmt.Errorf("find products by barcode: %w", err)
	}
	return collectProducts(rows)
}

// CreateProduct devuelve domain.ErrDuplicate si el id ya existe.
func (s *InventoryStore) CreateProduct(ctx context.Context, p *entity.Product) error {
	stocks, err := json.Marshal(p.Stocks)
	if err != nil {
		return fmt.Errorf("encode stocks: %w", err)
	}
	editedBy, err := json.Marshal(p.EditedBy)
	if err != nil {
		return fmt.Errorf("encode edited_by: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO products (id, name, type, barcode, price, supplier, image, stocks, edited_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9::jsonb)`,
		p.ID, p.Name, p.Type, p.Barcode, p.Price, p.Supplier, p.Image, string(stocks), string(editedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// ReplaceStocks bloquea la fila (FOR UPDATE), calcula las variaciones, actualiza stocks y
// añade el evento en una sola transacción.
func (s *InventoryStore) ReplaceStocks(ctx context.Context, productID string, stocks []entity.Stock, event entity.EditEvent) (*entity.Product, []entity.StockMovement, error) {
	stocksJSON, err := json.Marshal(stocks)
	if err != nil {
		return nil, nil, fmt.Errorf("encode stocks: %w", err)
	}
	eventJSON, err := json.Marshal([]entity.EditEvent{event})
	if err != nil {
		return nil, nil, fmt.Errorf("encode edit event: %w", err)
	}

	var (
		updated   *entity.Product
		movements []entity.StockMovement
	)
	err = inTx(ctx, s.pool, func(q Querier) error {
		var before []byte
		if err := q.QueryRow(ctx, `SELECT stocks FROM products WHERE id = $1 FOR UPDATE`, productID).Scan(&before); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("lock product: %w", err)
		}
		var current []entity.Stock
		if err := json.Unmarshal(before, &current); err != nil {
			return fmt.Errorf("decode stocks: %w", err)
		}
		movements = event.MovementsFor(productID, current, stocks)

		p, err := scanProduct(q.QueryRow(ctx, `
			UPDATE products SET stocks = $2::jsonb, edited_by = edited_by || $3::jsonb
			WHERE id = $1
			RETURNING `+productColumns,
			productID, string(stocksJSON), string(eventJSON),
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("update stocks: %w", err)
		}
		for _, m := range movements {
			if _, err := q.Exec(ctx, `
				INSERT INTO stock_movements (product_id, stock_id, delta, warehouseman_id, created_at)
				VALUES ($1, $2, $3, $4, $5)`,
				m.ProductID, m.StockID, m.Delta, m.WarehousemanID, m.CreatedAt,
			); err != nil {
				return fmt.Errorf("insert stock movement: %w", err)
			}
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return updated, movements, nil
}

func (s *InventoryStore) ListMovements(ctx context.Context) ([]entity.StockMovement, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT product_id, stock_id, delta, warehouseman_id, created_at
		FROM stock_movements ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ProductID, &m.StockID, &m.Delta, &m.WarehousemanID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (s *InventoryStore) FindWarehousemenBySecret(ctx context.Context, secretKey string) ([]entity.Warehouseman, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, warehouse_id, secret_key, name FROM warehousemen WHERE secret_key = $1 ORDER BY id`, secretKey)
	if err != nil {
		return nil, fmt.Errorf("find warehousemen: %w", err)
	}
	defer rows.Close()

	list := []entity.Warehouseman{}
	for rows.Next() {
		var w entity.Warehouseman
		if err := rows.Scan(&w.ID, &w.WarehouseID, &w.SecretKey, &w.Name); err != nil {
			return nil, fmt.Errorf("scan warehouseman: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// CreateWarehouseman devuelve domain.ErrDuplicate si el id ya existe.
func (s *InventoryStore) CreateWarehouseman(ctx context.Context, w *entity.Warehouseman) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO warehousemen (id, warehouse_id, secret_key, name) VALUES ($1, $2, $3, $4)`,
		w.ID, w.WarehouseID, w.SecretKey, w.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouseman: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p        entity.Product
		stocks   []byte
		editedBy []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Barcode, &p.Price, &p.Supplier, &p.Image, &stocks, &editedBy); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(stocks, &p.Stocks); err != nil {
		return nil, fmt.Errorf("decode stocks: %w", err)
	}
	if err := json.Unmarshal(editedBy, &p.EditedBy); err != nil {
		return nil, fmt.Errorf("decode edited_by: %w", err)
	}
	return &p, nil
}

func collectProducts(rows pgx.Rows) ([]entity.Product, error) {
	defer rows.Close()
	list := []entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, *p)
	}
	return list, rows.Err()
}
