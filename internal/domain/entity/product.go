package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// La API intercambia precios como números JSON, no como cadenas.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product producto del inventario con su stock embebido (una entrada por almacén).
// Barcode se espera único pero el cliente no lo impone.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Barcode  string          `json:"barcode"`
	Price    decimal.Decimal `json:"price"`
	Supplier string          `json:"supplier"`
	Image    string          `json:"image,omitempty"`
	Stocks   []Stock         `json:"stocks"`
	EditedBy []EditEvent     `json:"editedBy"`
}

// TotalQuantity suma las cantidades de todos los stocks (0 sin stocks).
func (p *Product) TotalQuantity() int {
	total := 0
	for _, s := range p.Stocks {
		total += s.Quantity
	}
	return total
}

// StockValue precio × cantidad total.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.TotalQuantity())))
}

// FindStock devuelve el índice del stock con ese id, o -1.
func (p *Product) FindStock(stockID string) int {
	for i, s := range p.Stocks {
		if s.ID == stockID {
			return i
		}
	}
	return -1
}

// Clone copia profunda de los slices para no compartir estado con quien llama.
func (p Product) Clone() Product {
	p.Stocks = append([]Stock(nil), p.Stocks...)
	p.EditedBy = append([]EditEvent(nil), p.EditedBy...)
	return p
}

// EditEvent registro de auditoría: quién modificó el producto y cuándo.
type EditEvent struct {
	WarehousemanID string    `json:"warehousemanId"`
	At             time.Time `json:"at"`
}
