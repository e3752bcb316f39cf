package backend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/inventory"
	"github.com/jhoicas/invex/internal/domain/repository"
	"github.com/jhoicas/invex/pkg/logger"
)

// InventoryService lógica del backend de desarrollo que sirve la API REST del cliente.
type InventoryService struct {
	store repository.InventoryStore
	log   *logger.Logger
	now   func() time.Time
	newID func() string
}

// NewInventoryService construye el servicio sobre un almacén (memoria o PostgreSQL).
func NewInventoryService(store repository.InventoryStore, log *logger.Logger) *InventoryService {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryService{
		store: store,
		log:   log,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// WithClock reemplaza el reloj (tests).
func (s *InventoryService) WithClock(now func() time.Time) *InventoryService {
	s.now = now
	return s
}

// FindWarehousemen filtro json-server: lista (posiblemente vacía) de operarios con ese código.
func (s *InventoryService) FindWarehousemen(ctx context.Context, secretKey string) ([]entity.Warehouseman, error) {
	if secretKey == "" {
		return []entity.Warehouseman{}, nil
	}
	list, err := s.store.FindWarehousemenBySecret(ctx, secretKey)
	if err != nil {
		return nil, fmt.Errorf("buscar almaceneros: %w", err)
	}
	if list == nil {
		list = []entity.Warehouseman{}
	}
	return list, nil
}

// ListProducts todos los productos, o solo los de ese código de barras si barcode no está vacío.
func (s *InventoryService) ListProducts(ctx context.Context, barcode string) ([]entity.Product, error) {
	var (
		list []entity.Product
		err  error
	)
	if barcode != "" {
		list, err = s.store.FindProductsByBarcode(ctx, barcode)
	} else {
		list, err = s.store.ListProducts(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	if list == nil {
		list = []entity.Product{}
	}
	return list, nil
}

// GetProduct devuelve domain.ErrNotFound si no existe.
func (s *InventoryService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// CreateProduct valida y persiste un producto. Asigna ids a producto y stocks si faltan.
func (s *InventoryService) CreateProduct(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: name", domain.ErrMissingField)
	}
	if p.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if err := validateStocks(p.Stocks); err != nil {
		return nil, err
	}

	out := p.Clone()
	if out.ID == "" {
		out.ID = s.newID()
	}
	for i := range out.Stocks {
		if out.Stocks[i].ID == "" {
			out.Stocks[i].ID = s.newID()
		}
	}
	if out.Stocks == nil {
		out.Stocks = []entity.Stock{}
	}
	if out.EditedBy == nil {
		out.EditedBy = []entity.EditEvent{}
	}

	if err := s.store.CreateProduct(ctx, &out); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	s.log.Info().Str("product_id", out.ID).Str("barcode", out.Barcode).Msg("producto creado")
	return &out, nil
}

// PatchStocks sustituye el array de stocks, añade el evento de edición y registra las variaciones.
func (s *InventoryService) PatchStocks(ctx context.Context, productID string, stocks []entity.Stock, warehousemanID string) (*entity.Product, error) {
	if warehousemanID == "" {
		return nil, fmt.Errorf("%w: warehousemanId", domain.ErrMissingField)
	}
	if stocks == nil {
		return nil, fmt.Errorf("%w: stocks", domain.ErrMissingField)
	}
	if err := validateStocks(stocks); err != nil {
		return nil, err
	}

	event := entity.EditEvent{WarehousemanID: warehousemanID, At: s.now().UTC()}
	updated, movements, err := s.store.ReplaceStocks(ctx, productID, stocks, event)
	if err != nil {
		return nil, fmt.Errorf("actualizar stocks: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	s.log.Info().
		Str("product_id", productID).
		Str("warehouseman_id", warehousemanID).
		Int("movements", len(movements)).
		Msg("stocks actualizados")
	return updated, nil
}

// Statistics agregados calculados a partir de productos y movimientos registrados.
func (s *InventoryService) Statistics(ctx context.Context) (*entity.Statistics, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("estadísticas: listar productos: %w", err)
	}
	movements, err := s.store.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("estadísticas: listar movimientos: %w", err)
	}
	stats := inventory.Summarize(products, movements)
	return &stats, nil
}

func validateStocks(stocks []entity.Stock) error {
	seen := make(map[string]bool, len(stocks))
	for _, st := range stocks {
		if st.Quantity < 0 {
			return fmt.Errorf("%w: stock %q con cantidad negativa", domain.ErrInvalidQuantity, st.ID)
		}
		if st.ID != "" {
			if seen[st.ID] {
				return fmt.Errorf("%w: stock %q repetido", domain.ErrInvalidInput, st.ID)
			}
			seen[st.ID] = true
		}
	}
	return nil
}
