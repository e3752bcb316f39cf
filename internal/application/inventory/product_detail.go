package inventory

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/inventory"
	"github.com/jhoicas/invex/internal/domain/repository"
	"github.com/jhoicas/invex/pkg/logger"
)

// ProductDetailViewModel detalle de un producto con ajuste de cantidades por stock.
// Cada stock tiene un texto pendiente ("cantidad a aplicar") que se vacía tras un ajuste correcto.
// No hay reintentos: el ajuste no es idempotente y un envío en curso bloquea los demás (ErrBusy).
type ProductDetailViewModel struct {
	repo    repository.ProductRepository
	session *entity.Session
	log     *logger.Logger

	mu      sync.Mutex
	product entity.Product
	pending map[string]string
	busy    bool
}

// NewProductDetailViewModel enlaza el producto con la sesión del operario.
func NewProductDetailViewModel(repo repository.ProductRepository, session *entity.Session, product entity.Product, log *logger.Logger) *ProductDetailViewModel {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductDetailViewModel{
		repo:    repo,
		session: session,
		log:     log,
		product: product.Clone(),
		pending: make(map[string]string),
	}
}

// Product copia del estado actual.
func (vm *ProductDetailViewModel) Product() entity.Product {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.product.Clone()
}

// SetPendingQuantity guarda el texto tecleado para un stock.
func (vm *ProductDetailViewModel) SetPendingQuantity(stockID, text string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.pending[stockID] = text
}

// PendingQuantity texto pendiente de un stock ("" si no hay).
func (vm *ProductDetailViewModel) PendingQuantity(stockID string) string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.pending[stockID]
}

// Restock suma la cantidad pendiente del stock.
func (vm *ProductDetailViewModel) Restock(ctx context.Context, stockID string) (entity.Product, error) {
	return vm.Adjust(ctx, stockID, ParseAmount(vm.PendingQuantity(stockID)))
}

// Unload resta la cantidad pendiente del stock.
func (vm *ProductDetailViewModel) Unload(ctx context.Context, stockID string) (entity.Product, error) {
	return vm.Adjust(ctx, stockID, -ParseAmount(vm.PendingQuantity(stockID)))
}

// Adjust aplica amount al stock, recortando a 0, y persiste el array completo con el autor.
// Solo tras la respuesta correcta del backend cambia el estado local.
func (vm *ProductDetailViewModel) Adjust(ctx context.Context, stockID string, amount float64) (entity.Product, error) {
	if !vm.session.Active() {
		return entity.Product{}, domain.ErrNoSession
	}

	vm.mu.Lock()
	if vm.busy {
		vm.mu.Unlock()
		return entity.Product{}, domain.ErrBusy
	}
	updated, err := inventory.AdjustStocks(vm.product.Stocks, stockID, amount)
	if err != nil {
		vm.mu.Unlock()
		return entity.Product{}, err
	}
	productID := vm.product.ID
	vm.busy = true
	vm.mu.Unlock()

	err = vm.repo.PatchStocks(ctx, productID, updated, vm.session.WarehousemanID())

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.busy = false
	if err != nil {
		vm.log.Error().Err(err).Str("product_id", productID).Str("stock_id", stockID).Msg("actualización de stock fallida")
		return entity.Product{}, fmt.Errorf("actualizar stock: %w", err)
	}
	vm.product.Stocks = updated
	vm.pending[stockID] = ""
	vm.log.Info().
		Str("product_id", productID).
		Str("stock_id", stockID).
		Float64("amount", amount).
		Str("warehouseman_id", vm.session.WarehousemanID()).
		Msg("stock actualizado")
	return vm.product.Clone(), nil
}

// ParseAmount interpreta el texto de cantidad: vacío = 0, no numérico = NaN (ambos se rechazan al ajustar).
func ParseAmount(text string) float64 {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
