package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invex/internal/domain/entity"
)

// CreateProductForm entrada del formulario de alta (valores tal como los teclea el operario).
type CreateProductForm struct {
	Name      string
	Type      string
	Barcode   string // precargado desde el escaneo
	Price     string
	Supplier  string
	Image     string
	Warehouse *entity.Warehouse // elegido entre ListWarehouses
	Quantity  string
}

// CreateProductRequest cuerpo de POST /products. Sin id el servidor lo asigna.
type CreateProductRequest struct {
	ID       string             `json:"id,omitempty"`
	Name     string             `json:"name"`
	Type     string             `json:"type"`
	Barcode  string             `json:"barcode"`
	Price    decimal.Decimal    `json:"price"`
	Supplier string             `json:"supplier"`
	Image    string             `json:"image"`
	Stocks   []entity.Stock     `json:"stocks"`
	EditedBy []entity.EditEvent `json:"editedBy"`
}

// NewCreateProductRequest cuerpo de alta a partir del producto construido por el cliente.
func NewCreateProductRequest(p *entity.Product) CreateProductRequest {
	return CreateProductRequest{
		ID:       p.ID,
		Name:     p.Name,
		Type:     p.Type,
		Barcode:  p.Barcode,
		Price:    p.Price,
		Supplier: p.Supplier,
		Image:    p.Image,
		Stocks:   p.Stocks,
		EditedBy: p.EditedBy,
	}
}

// Product producto a crear en el almacén del backend.
func (r CreateProductRequest) Product() *entity.Product {
	return &entity.Product{
		ID:       r.ID,
		Name:     r.Name,
		Type:     r.Type,
		Barcode:  r.Barcode,
		Price:    r.Price,
		Supplier: r.Supplier,
		Image:    r.Image,
		Stocks:   r.Stocks,
		EditedBy: r.EditedBy,
	}
}

// PatchStocksRequest cuerpo de PATCH /products/:id.
type PatchStocksRequest struct {
	Stocks         []entity.Stock `json:"stocks"`
	WarehousemanID string         `json:"warehousemanId"`
}
