package entity

// Stock cantidad de un producto en un almacén. Quantity nunca es negativa.
type Stock struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Quantity     int          `json:"quantity"`
	Localisation Localisation `json:"localisation"`
}

// Localisation ubicación física del almacén.
type Localisation struct {
	City    string `json:"city"`
	Address string `json:"address,omitempty"`
	Country string `json:"country,omitempty"`
}

// StockLevel clasificación de una cantidad para la presentación.
type StockLevel int

const (
	StockEmpty StockLevel = iota
	StockLow
	StockOK
)

// LowStockThreshold por debajo de este valor el stock se considera bajo.
const LowStockThreshold = 10

// LevelOf clasifica una cantidad: 0 vacío, <10 bajo, resto correcto.
func LevelOf(quantity int) StockLevel {
	switch {
	case quantity <= 0:
		return StockEmpty
	case quantity < LowStockThreshold:
		return StockLow
	default:
		return StockOK
	}
}

func (l StockLevel) String() string {
	switch l {
	case StockEmpty:
		return "agotado"
	case StockLow:
		return "bajo"
	default:
		return "ok"
	}
}
