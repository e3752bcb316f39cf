package inventory_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invex/internal/domain/entity"
)

// fakeProducts implementación en memoria de repository.ProductRepository.
type fakeProducts struct {
	mu       sync.Mutex
	products []entity.Product
	listErr  error
	patchErr error
	patches  []patchCall
	created  []entity.Product
	// entered avisa de que PatchStocks empezó; block lo retiene hasta que se cierre.
	entered chan struct{}
	block   chan struct{}
}

type patchCall struct {
	productID      string
	stocks         []entity.Stock
	warehousemanID string
}

func (f *fakeProducts) List(context.Context) ([]entity.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]entity.Product(nil), f.products...), nil
}

func (f *fakeProducts) FindByBarcode(_ context.Context, code string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].Barcode == code {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	out := *p
	out.ID = "generated"
	f.created = append(f.created, out)
	return &out, nil
}

func (f *fakeProducts) PatchStocks(_ context.Context, id string, stocks []entity.Stock, who string) error {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.patchErr != nil {
		return f.patchErr
	}
	f.patches = append(f.patches, patchCall{productID: id, stocks: stocks, warehousemanID: who})
	return nil
}

func sampleProducts() []entity.Product {
	return []entity.Product{
		{
			ID: "p1", Name: "Stylo", Type: "Type1", Supplier: "Bic", Barcode: "111",
			Price: decimal.NewFromInt(12),
			Stocks: []entity.Stock{
				{ID: "s1", Name: "Central", Quantity: 3, Localisation: entity.Localisation{City: "Rabat"}},
				{ID: "s2", Name: "Nord", Quantity: 10, Localisation: entity.Localisation{City: "Tanger"}},
			},
		},
		{
			ID: "p2", Name: "Agrafeuse", Type: "Type2", Supplier: "Rapid", Barcode: "222",
			Price:  decimal.NewFromInt(45),
			Stocks: []entity.Stock{{ID: "s1", Name: "Central", Quantity: 1, Localisation: entity.Localisation{City: "Rabat"}}},
		},
	}
}
