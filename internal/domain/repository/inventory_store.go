package repository

import (
	"context"

	"github.com/jhoicas/invex/internal/domain/entity"
)

// InventoryStore puerto de persistencia del backend de desarrollo (memoria o PostgreSQL).
type InventoryStore interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	FindProductsByBarcode(ctx context.Context, barcode string) ([]entity.Product, error)
	CreateProduct(ctx context.Context, p *entity.Product) error
	// ReplaceStocks sustituye el array de stocks, añade el evento de edición y registra las variaciones
	// respecto al estado leído en la misma operación atómica. (nil, nil, nil) si el producto no existe.
	ReplaceStocks(ctx context.Context, productID string, stocks []entity.Stock, event entity.EditEvent) (*entity.Product, []entity.StockMovement, error)
	ListMovements(ctx context.Context) ([]entity.StockMovement, error)

	FindWarehousemenBySecret(ctx context.Context, secretKey string) ([]entity.Warehouseman, error)
	CreateWarehouseman(ctx context.Context, w *entity.Warehouseman) error
}
