package inventory

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invex/internal/domain/entity"
)

// TopMovedLimit número de productos en los rankings de movimientos.
const TopMovedLimit = 5

// Summarize calcula las estadísticas agregadas del inventario.
// Valor total = Σ precio × cantidad; agotado = cantidad total 0.
func Summarize(products []entity.Product, movements []entity.StockMovement) entity.Statistics {
	stats := entity.Statistics{
		TotalProducts:   len(products),
		TotalStockValue: decimal.Zero,
	}
	names := make(map[string]string, len(products))
	for i := range products {
		p := &products[i]
		names[p.ID] = p.Name
		if p.TotalQuantity() == 0 {
			stats.OutOfStock++
		}
		stats.TotalStockValue = stats.TotalStockValue.Add(p.StockValue())
	}

	added := make(map[string]int)
	removed := make(map[string]int)
	for _, m := range movements {
		if _, ok := names[m.ProductID]; !ok {
			continue
		}
		if m.Delta > 0 {
			added[m.ProductID] += m.Delta
		} else {
			removed[m.ProductID] -= m.Delta
		}
	}
	stats.MostAddedProducts = rank(added, names)
	stats.MostRemovedProducts = rank(removed, names)
	return stats
}

// rank nombres de los TopMovedLimit productos con mayor total; empates por nombre.
func rank(totals map[string]int, names map[string]string) []string {
	type entry struct {
		name  string
		total int
	}
	entries := make([]entry, 0, len(totals))
	for id, total := range totals {
		entries = append(entries, entry{name: names[id], total: total})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.total, a.total); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	out := make([]string, 0, min(len(entries), TopMovedLimit))
	for i := 0; i < len(entries) && i < TopMovedLimit; i++ {
		out = append(out, entries[i].name)
	}
	return out
}
