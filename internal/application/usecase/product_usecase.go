package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invex/internal/application/dto"
	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/domain/inventory"
	"github.com/jhoicas/invex/internal/domain/repository"
)

const (
	// DefaultProductType tipo preseleccionado en el formulario.
	DefaultProductType = "Type1"
	// DefaultProductImage imagen asignada cuando el operario no indica otra.
	DefaultProductImage = "./assets/images/Invex__1_-removebg-preview.png"
)

// ProductUseCase alta de productos y almacenes disponibles para el formulario.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// WithClock sustituye el reloj (tests).
func (uc *ProductUseCase) WithClock(now func() time.Time) *ProductUseCase {
	uc.now = now
	return uc
}

// ListWarehouses almacenes distintos presentes en los stocks de todos los productos.
func (uc *ProductUseCase) ListWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar almacenes: %w", err)
	}
	return inventory.DistinctWarehouses(list), nil
}

// FindWarehouse busca un almacén por id entre los disponibles.
func (uc *ProductUseCase) FindWarehouse(ctx context.Context, id string) (*entity.Warehouse, error) {
	list, err := uc.ListWarehouses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("almacén %s: %w", id, domain.ErrNotFound)
}

// Create valida el formulario y crea el producto con un único stock en el almacén elegido.
// El alta queda atribuida al operario de la sesión en editedBy.
func (uc *ProductUseCase) Create(ctx context.Context, session *entity.Session, in dto.CreateProductForm) (*entity.Product, error) {
	if !session.Active() {
		return nil, domain.ErrNoSession
	}
	if missing := missingFields(in); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingField, strings.Join(missing, ", "))
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("precio %q: %w", in.Price, domain.ErrInvalidInput)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil || qty < 0 {
		return nil, fmt.Errorf("cantidad %q: %w", in.Quantity, domain.ErrInvalidQuantity)
	}
	if in.Type == "" {
		in.Type = DefaultProductType
	}
	if in.Image == "" {
		in.Image = DefaultProductImage
	}

	product := &entity.Product{
		Name:     strings.TrimSpace(in.Name),
		Type:     in.Type,
		Barcode:  in.Barcode,
		Price:    price,
		Supplier: strings.TrimSpace(in.Supplier),
		Image:    in.Image,
		Stocks: []entity.Stock{{
			ID:           in.Warehouse.ID,
			Name:         in.Warehouse.Name,
			Quantity:     qty,
			Localisation: in.Warehouse.Localisation,
		}},
		EditedBy: []entity.EditEvent{{
			WarehousemanID: session.WarehousemanID(),
			At:             uc.now().UTC(),
		}},
	}
	created, err := uc.repo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return created, nil
}

func missingFields(in dto.CreateProductForm) []string {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Price) == "" {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(in.Supplier) == "" {
		missing = append(missing, "supplier")
	}
	if in.Warehouse == nil {
		missing = append(missing, "warehouse")
	}
	if strings.TrimSpace(in.Quantity) == "" {
		missing = append(missing, "quantity")
	}
	return missing
}
