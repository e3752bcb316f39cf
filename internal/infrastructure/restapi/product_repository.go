package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/invex/internal/application/dto"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre /products.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// List GET /products.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := r.c.get(ctx, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByBarcode GET /products?barcode=. El filtro se repite en el cliente porque
// no todos los backends lo aplican; gana la primera coincidencia exacta.
func (r *ProductRepo) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	var out []entity.Product
	if err := r.c.get(ctx, "/products", url.Values{"barcode": {barcode}}, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Barcode == barcode {
			return &out[i], nil
		}
	}
	return nil, nil
}

// Create POST /products; devuelve el producto creado (con id asignado por el servidor).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	var out entity.Product
	if err := r.c.do(ctx, http.MethodPost, "/products", dto.NewCreateProductRequest(product), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PatchStocks PATCH /products/:id con {stocks, warehousemanId}.
func (r *ProductRepo) PatchStocks(ctx context.Context, productID string, stocks []entity.Stock, warehousemanID string) error {
	body := dto.PatchStocksRequest{Stocks: stocks, WarehousemanID: warehousemanID}
	return r.c.do(ctx, http.MethodPatch, "/products/"+url.PathEscape(productID), body, nil)
}
