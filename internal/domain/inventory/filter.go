package inventory

import (
	"strings"

	"github.com/jhoicas/invex/internal/domain/entity"
)

// FilterProducts devuelve los productos cuyo nombre, tipo, proveedor o precio (como texto)
// contienen la consulta, sin distinguir mayúsculas. Consulta vacía = lista original.
// Nunca modifica la lista recibida.
func FilterProducts(products []entity.Product, query string) []entity.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches evalúa un producto contra una consulta ya en minúsculas.
func Matches(p entity.Product, lowerQuery string) bool {
	for _, field := range []string{p.Name, p.Type, p.Supplier, p.Price.String()} {
		if field != "" && strings.Contains(strings.ToLower(field), lowerQuery) {
			return true
		}
	}
	return false
}
