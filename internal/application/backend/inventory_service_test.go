package backend_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invex/internal/application/backend"
	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/infrastructure/memory"
)

var fixed = time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

const seedJSON = `{
  "warehousemans": [
    {"id": "w1", "warehouseId": "wh1", "secretKey": "AB12", "name": "Amina"},
    {"id": "w2", "warehouseId": "wh2", "secretKey": "ZZ99"}
  ],
  "products": [
    {"id": "p1", "name": "Stylo", "type": "Type1", "barcode": "111", "price": 2.5, "supplier": "Bic",
     "stocks": [{"id": "s1", "name": "Central", "quantity": 4, "localisation": {"city": "Rabat"}}], "editedBy": []},
    {"id": "p2", "name": "Cahier", "type": "Type2", "barcode": "222", "price": 3, "supplier": "Clairefontaine",
     "stocks": [{"id": "s1", "name": "Central", "quantity": 0, "localisation": {"city": "Rabat"}}], "editedBy": []}
  ]
}`

func seeded(t *testing.T) (*backend.InventoryService, *memory.InventoryStore) {
	t.Helper()
	store := memory.NewInventoryStore()
	svc := backend.NewInventoryService(store, nil).WithClock(func() time.Time { return fixed })
	seed, err := backend.DecodeSeed(strings.NewReader(seedJSON))
	require.NoError(t, err)
	require.NoError(t, svc.ApplySeed(context.Background(), seed))
	return svc, store
}

func TestApplySeed_EsRepetible(t *testing.T) {
	svc, _ := seeded(t)
	seed, err := backend.DecodeSeed(strings.NewReader(seedJSON))
	require.NoError(t, err)
	require.NoError(t, svc.ApplySeed(context.Background(), seed))

	list, err := svc.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestFindWarehousemen(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	got, err := svc.FindWarehousemen(ctx, "AB12")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].ID)

	got, err = svc.FindWarehousemen(ctx, "ab12")
	require.NoError(t, err)
	assert.Empty(t, got, "coincidencia exacta")
	assert.NotNil(t, got, "lista vacía, no nil")

	got, err = svc.FindWarehousemen(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListProducts_FiltroPorCodigo(t *testing.T) {
	svc, _ := seeded(t)

	got, err := svc.ListProducts(context.Background(), "222")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cahier", got[0].Name)

	got, err = svc.ListProducts(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateProduct_AsignaIDs(t *testing.T) {
	svc, _ := seeded(t)

	created, err := svc.CreateProduct(context.Background(), &entity.Product{
		Name:   "Gomme",
		Price:  decimal.RequireFromString("1.2"),
		Stocks: []entity.Stock{{Name: "Central", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Stocks[0].ID)
	assert.NotNil(t, created.EditedBy)

	got, err := svc.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gomme", got.Name)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, &entity.Product{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = svc.CreateProduct(ctx, &entity.Product{Name: "X", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateProduct(ctx, &entity.Product{Name: "X", Stocks: []entity.Stock{{ID: "a", Quantity: -2}}})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.CreateProduct(ctx, &entity.Product{ID: "p1", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPatchStocks_RegistraEdicionYMovimientos(t *testing.T) {
	svc, store := seeded(t)
	ctx := context.Background()

	stocks := []entity.Stock{{ID: "s1", Name: "Central", Quantity: 9}}
	updated, err := svc.PatchStocks(ctx, "p1", stocks, "w1")
	require.NoError(t, err)

	assert.Equal(t, 9, updated.Stocks[0].Quantity)
	require.Len(t, updated.EditedBy, 1)
	assert.Equal(t, entity.EditEvent{WarehousemanID: "w1", At: fixed}, updated.EditedBy[0])

	moves, err := store.ListMovements(ctx)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, 5, moves[0].Delta)
	assert.Equal(t, "w1", moves[0].WarehousemanID)
	assert.Equal(t, entity.MovementTypeIn, moves[0].Type())
}

func TestPatchStocks_ConcurrentesCuadranConElStockFinal(t *testing.T) {
	svc, store := seeded(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(q int) {
			defer wg.Done()
			_, err := svc.PatchStocks(ctx, "p1", []entity.Stock{{ID: "s1", Name: "Central", Quantity: q}}, "w1")
			assert.NoError(t, err)
		}(i % 3 * 5)
	}
	wg.Wait()

	moves, err := store.ListMovements(ctx)
	require.NoError(t, err)
	total := 4
	for _, m := range moves {
		total += m.Delta
	}
	p, err := svc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p.Stocks[0].Quantity, total, "la suma de variaciones reproduce el stock final")
}

func TestPatchStocks_Errores(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()
	ok := []entity.Stock{{ID: "s1", Quantity: 1}}

	_, err := svc.PatchStocks(ctx, "p1", ok, "")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = svc.PatchStocks(ctx, "p1", nil, "w1")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = svc.PatchStocks(ctx, "p1", []entity.Stock{{ID: "s1", Quantity: -1}}, "w1")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.PatchStocks(ctx, "nope", ok, "w1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, err := svc.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Stocks[0].Quantity, "sin cambios tras errores")
	assert.Empty(t, p.EditedBy)
}

func TestStatistics(t *testing.T) {
	svc, _ := seeded(t)
	ctx := context.Background()

	_, err := svc.PatchStocks(ctx, "p1", []entity.Stock{{ID: "s1", Name: "Central", Quantity: 1}}, "w1")
	require.NoError(t, err)
	_, err = svc.PatchStocks(ctx, "p2", []entity.Stock{{ID: "s1", Name: "Central", Quantity: 6}}, "w2")
	require.NoError(t, err)

	stats, err := svc.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 0, stats.OutOfStock)
	assert.True(t, decimal.RequireFromString("20.5").Equal(stats.TotalStockValue))
	assert.Equal(t, []string{"Cahier"}, stats.MostAddedProducts)
	assert.Equal(t, []string{"Stylo"}, stats.MostRemovedProducts)
}
