package inventory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/language"

	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/inventory"
	"github.com/jhoicas/invex/internal/domain/repository"
)

// ProductListViewModel listado de productos con búsqueda libre y ordenación por criterio.
// El filtro se aplica siempre sobre la última ordenación. Seguro para uso concurrente.
type ProductListViewModel struct {
	repo repository.ProductRepository

	mu     sync.Mutex
	sorter *inventory.Sorter
	all    []entity.Product
	query  string
}

// NewProductListViewModel construye el view-model; lang define la colación de nombres.
func NewProductListViewModel(repo repository.ProductRepository, lang language.Tag) *ProductListViewModel {
	return &ProductListViewModel{repo: repo, sorter: inventory.NewSorter(lang)}
}

// Load trae todos los productos. Si falla se conserva la lista anterior.
func (vm *ProductListViewModel) Load(ctx context.Context) error {
	list, err := vm.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargar productos: %w", err)
	}
	vm.mu.Lock()
	vm.all = list
	vm.mu.Unlock()
	return nil
}

// Search fija la consulta de búsqueda ("" = sin filtro).
func (vm *ProductListViewModel) Search(query string) {
	vm.mu.Lock()
	vm.query = query
	vm.mu.Unlock()
}

// Query consulta actual.
func (vm *ProductListViewModel) Query() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.query
}

// SortBy reordena con el sentido actual del criterio y lo invierte para la próxima vez.
func (vm *ProductListViewModel) SortBy(key inventory.SortKey) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	sorted, err := vm.sorter.Sort(vm.all, key)
	if err != nil {
		return err
	}
	vm.all = sorted
	return nil
}

// NextDirection sentido que aplicará el próximo SortBy(key).
func (vm *ProductListViewModel) NextDirection(key inventory.SortKey) inventory.Direction {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.sorter.Direction(key)
}

// Items productos visibles: base ordenada filtrada por la consulta.
func (vm *ProductListViewModel) Items() []entity.Product {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return inventory.FilterProducts(vm.all, vm.query)
}

// All copia de la lista completa sin filtrar.
func (vm *ProductListViewModel) All() []entity.Product {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return slices.Clone(vm.all)
}

// Replace sustituye un producto por id (p.ej. tras ajustar su stock en el detalle).
func (vm *ProductListViewModel) Replace(p entity.Product) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	for i := range vm.all {
		if vm.all[i].ID == p.ID {
			vm.all[i] = p
			return true
		}
	}
	return false
}
