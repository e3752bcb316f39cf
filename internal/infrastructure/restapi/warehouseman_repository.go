package restapi

import (
	"context"
	"net/url"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
)

var _ repository.WarehousemanRepository = (*WarehousemanRepo)(nil)

// WarehousemanRepo implementación de WarehousemanRepository sobre /warehousemans.
type WarehousemanRepo struct {
	c *Client
}

// NewWarehousemanRepository construye el adaptador.
func NewWarehousemanRepository(c *Client) *WarehousemanRepo {
	return &WarehousemanRepo{c: c}
}

// FindBySecretKey GET /warehousemans?secretKey=. Como en FindByBarcode, el filtro se
// comprueba también en el cliente; gana el primer operario con el código exacto.
func (r *WarehousemanRepo) FindBySecretKey(ctx context.Context, secretKey string) (*entity.Warehouseman, error) {
	var out []entity.Warehouseman
	if err := r.c.get(ctx, "/warehousemans", url.Values{"secretKey": {secretKey}}, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].SecretKey == secretKey {
			return &out[i], nil
		}
	}
	return nil, domain.ErrWarehousemanNotFound
}
