package entity

import "time"

// Tipos de movimiento derivados del signo de la variación.
const (
	MovementTypeIn  = "in"  // reaprovisionamiento
	MovementTypeOut = "out" // descarga
)

// StockMovement variación de cantidad registrada por el servidor al aplicar un PATCH de stocks.
// Alimenta los rankings de productos más añadidos y más retirados.
type StockMovement struct {
	ProductID      string
	StockID        string
	Delta          int // positivo = entrada, negativo = salida
	WarehousemanID string
	CreatedAt      time.Time
}

// Type devuelve in/out según el signo de Delta.
func (m StockMovement) Type() string {
	if m.Delta < 0 {
		return MovementTypeOut
	}
	return MovementTypeIn
}

// DiffStocks compara dos arrays de stocks (antes/después) y devuelve una variación por stock modificado.
// Los stocks nuevos cuentan desde 0; los eliminados hasta 0.
func DiffStocks(productID string, before, after []Stock) []StockMovement {
	prev := make(map[string]int, len(before))
	for _, s := range before {
		prev[s.ID] = s.Quantity
	}
	var out []StockMovement
	seen := make(map[string]bool, len(after))
	for _, s := range after {
		seen[s.ID] = true
		if d := s.Quantity - prev[s.ID]; d != 0 {
			out = append(out, StockMovement{ProductID: productID, StockID: s.ID, Delta: d})
		}
	}
	for _, s := range before {
		if !seen[s.ID] && s.Quantity != 0 {
			out = append(out, StockMovement{ProductID: productID, StockID: s.ID, Delta: -s.Quantity})
		}
	}
	return out
}

// MovementsFor variaciones de before a after atribuidas al autor y al instante del evento.
func (e EditEvent) MovementsFor(productID string, before, after []Stock) []StockMovement {
	out := DiffStocks(productID, before, after)
	for i := range out {
		out[i].WarehousemanID = e.WarehousemanID
		out[i].CreatedAt = e.At
	}
	return out
}
