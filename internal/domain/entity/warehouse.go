package entity

// Warehouse almacén seleccionable al crear un producto.
// No existe un recurso propio en la API: se deriva de los stocks de todos los productos.
type Warehouse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Localisation Localisation `json:"localisation"`
}

// WarehouseOf extrae la descripción del almacén de una entrada de stock.
func WarehouseOf(s Stock) Warehouse {
	return Warehouse{ID: s.ID, Name: s.Name, Localisation: s.Localisation}
}
