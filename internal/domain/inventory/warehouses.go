package inventory

import "github.com/jhoicas/invex/internal/domain/entity"

// DistinctWarehouses almacenes únicos presentes en los stocks de todos los productos,
// en orden de primera aparición. Dos stocks con mismo id, nombre y localización cuentan una vez.
func DistinctWarehouses(products []entity.Product) []entity.Warehouse {
	seen := make(map[entity.Warehouse]bool)
	var out []entity.Warehouse
	for _, p := range products {
		for _, s := range p.Stocks {
			w := entity.WarehouseOf(s)
			if seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
