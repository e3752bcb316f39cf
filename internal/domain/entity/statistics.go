package entity

import "github.com/shopspring/decimal"

// Statistics agregados calculados por el servidor; solo lectura para el cliente.
type Statistics struct {
	TotalProducts       int             `json:"totalProducts"`
	OutOfStock          int             `json:"outOfStock"`
	TotalStockValue     decimal.Decimal `json:"totalStockValue"`
	MostAddedProducts   []string        `json:"mostAddedProducts"`
	MostRemovedProducts []string        `json:"mostRemovedProducts"`
}
