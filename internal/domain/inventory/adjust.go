package inventory

import (
	"fmt"
	"math"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
)

// AdjustStocks aplica una variación con signo al stock stockID y devuelve un array nuevo.
// La cantidad resultante se recorta a 0; el resto de entradas no cambia.
// Rechaza amount 0, NaN, infinito o no entero sin tocar stocks.
func AdjustStocks(stocks []entity.Stock, stockID string, amount float64) ([]entity.Stock, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	idx := -1
	for i, s := range stocks {
		if s.ID == stockID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("stock %s: %w", stockID, domain.ErrStockNotFound)
	}
	out := make([]entity.Stock, len(stocks))
	copy(out, stocks)
	out[idx].Quantity = max(0, stocks[idx].Quantity+int(amount))
	return out, nil
}

// ValidateAmount una variación válida es un entero finito distinto de cero.
func ValidateAmount(amount float64) error {
	switch {
	case math.IsNaN(amount), math.IsInf(amount, 0):
		return fmt.Errorf("%v no es un número: %w", amount, domain.ErrInvalidQuantity)
	case amount == 0:
		return fmt.Errorf("la variación no puede ser 0: %w", domain.ErrInvalidQuantity)
	case amount != math.Trunc(amount):
		return fmt.Errorf("%v no es un entero: %w", amount, domain.ErrInvalidQuantity)
	case math.Abs(amount) > math.MaxInt32:
		return fmt.Errorf("%v fuera de rango: %w", amount, domain.ErrInvalidQuantity)
	}
	return nil
}
