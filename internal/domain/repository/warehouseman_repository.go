package repository

import (
	"context"

	"github.com/jhoicas/invex/internal/domain/entity"
)

// WarehousemanRepository puerto de consulta de operarios por código secreto.
type WarehousemanRepository interface {
	// FindBySecretKey devuelve domain.ErrWarehousemanNotFound si no hay coincidencia.
	FindBySecretKey(ctx context.Context, secretKey string) (*entity.Warehouseman, error)
}
