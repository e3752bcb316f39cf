package repository

import (
	"context"

	"github.com/jhoicas/invex/internal/domain/entity"
)

// ProductRepository puerto del cliente hacia los productos remotos (DIP).
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	// FindByBarcode coincidencia exacta y sensible a mayúsculas; (nil, nil) si no existe.
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)
	// PatchStocks actualización parcial: envía el array completo de stocks más el autor.
	PatchStocks(ctx context.Context, productID string, stocks []entity.Stock, warehousemanID string) error
}
