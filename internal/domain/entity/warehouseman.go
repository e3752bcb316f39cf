package entity

// Warehouseman operario autenticado por código secreto, asignado a un almacén.
type Warehouseman struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouseId"`
	SecretKey   string `json:"secretKey"`
	Name        string `json:"name,omitempty"`
}
