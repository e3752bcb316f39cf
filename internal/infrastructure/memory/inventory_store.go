package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/repository"
)

var _ repository.InventoryStore = (*InventoryStore)(nil)

// InventoryStore almacén en memoria del backend de desarrollo. Conserva el orden de inserción.
// Todas las lecturas devuelven copias.
type InventoryStore struct {
	mu           sync.RWMutex
	products     []entity.Product
	index        map[string]int
	warehousemen []entity.Warehouseman
	movements    []entity.StockMovement
}

// NewInventoryStore construye un almacén vacío.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{index: make(map[string]int)}
}

func (s *InventoryStore) ListProducts(_ context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	for i := range s.products {
		out[i] = s.products[i].Clone()
	}
	return out, nil
}

// GetProduct (nil, nil) si no existe.
func (s *InventoryStore) GetProduct(_ context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, nil
	}
	p := s.products[i].Clone()
	return &p, nil
}

func (s *InventoryStore) FindProductsByBarcode(_ context.Context, barcode string) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.Product{}
	for i := range s.products {
		if s.products[i].Barcode == barcode {
			out = append(out, s.products[i].Clone())
		}
	}
	return out, nil
}

// CreateProduct devuelve domain.ErrDuplicate si el id ya existe.
func (s *InventoryStore) CreateProduct(_ context.Context, p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[p.ID]; ok {
		return domain.ErrDuplicate
	}
	s.index[p.ID] = len(s.products)
	s.products = append(s.products, p.Clone())
	return nil
}

// ReplaceStocks calcula las variaciones bajo el mismo lock que la escritura.
func (s *InventoryStore) ReplaceStocks(_ context.Context, productID string, stocks []entity.Stock, event entity.EditEvent) (*entity.Product, []entity.StockMovement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[productID]
	if !ok {
		return nil, nil, nil
	}
	p := &s.products[i]
	movements := event.MovementsFor(productID, p.Stocks, stocks)
	p.Stocks = append([]entity.Stock(nil), stocks...)
	p.EditedBy = append(p.EditedBy, event)
	s.movements = append(s.movements, movements...)

	out := p.Clone()
	return &out, movements, nil
}

func (s *InventoryStore) ListMovements(_ context.Context) ([]entity.StockMovement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.StockMovement(nil), s.movements...), nil
}

func (s *InventoryStore) FindWarehousemenBySecret(_ context.Context, secretKey string) ([]entity.Warehouseman, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []entity.Warehouseman{}
	for _, w := range s.warehousemen {
		if w.SecretKey == secretKey {
			out = append(out, w)
		}
	}
	return out, nil
}

// CreateWarehouseman devuelve domain.ErrDuplicate si el id ya existe.
func (s *InventoryStore) CreateWarehouseman(_ context.Context, w *entity.Warehouseman) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.warehousemen {
		if existing.ID == w.ID {
			return domain.ErrDuplicate
		}
	}
	s.warehousemen = append(s.warehousemen, *w)
	return nil
}
