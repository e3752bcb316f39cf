package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/invex/internal/application/auth"
	"github.com/jhoicas/invex/internal/application/report"
	"github.com/jhoicas/invex/internal/application/usecase"
	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/infrastructure/localstore"
	"github.com/jhoicas/invex/internal/infrastructure/restapi"
	"github.com/jhoicas/invex/internal/interfaces/cli"
)

func TestMain(m *testing.M) {
	text.DisableColors()
	os.Exit(m.Run())
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeWarehousemen struct{}

func (fakeWarehousemen) FindBySecretKey(_ context.Context, key string) (*entity.Warehouseman, error) {
	if key == "AB12" {
		return &entity.Warehouseman{ID: "w1", WarehouseID: "wh1", SecretKey: key, Name: "Amina"}, nil
	}
	return nil, domain.ErrWarehousemanNotFound
}

type fakeProducts struct {
	products []entity.Product
	patches  int
}

func (f *fakeProducts) List(context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(f.products))
	for i := range f.products {
		out[i] = f.products[i].Clone()
	}
	return out, nil
}

func (f *fakeProducts) FindByBarcode(_ context.Context, code string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].Barcode == code {
			p := f.products[i].Clone()
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) (*entity.Product, error) {
	out := p.Clone()
	out.ID = fmt.Sprintf("p%d", len(f.products)+1)
	f.products = append(f.products, out)
	return &out, nil
}

func (f *fakeProducts) PatchStocks(_ context.Context, id string, stocks []entity.Stock, _ string) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Stocks = stocks
			f.patches++
			return nil
		}
	}
	return &restapi.StatusError{Method: "PATCH", Path: "/products/" + id, Code: 404}
}

type fakeStats struct{}

func (fakeStats) Get(context.Context) (*entity.Statistics, error) {
	return &entity.Statistics{TotalProducts: 2, OutOfStock: 1, TotalStockValue: decimal.RequireFromString("10"),
		MostAddedProducts: []string{"Stylo"}}, nil
}

type fakeGenerator struct{}

func (fakeGenerator) GenerateProductReport(_ context.Context, r *report.ProductReport) ([]byte, error) {
	return []byte(fmt.Sprintf("%%PDF fake %d", len(r.Rows))), nil
}

var central = entity.Stock{ID: "s1", Name: "Central", Quantity: 4, Localisation: entity.Localisation{City: "Rabat"}}

func newDeps(t *testing.T) (cli.Deps, *fakeProducts, *localstore.FileStore) {
	t.Helper()
	products := &fakeProducts{products: []entity.Product{
		{ID: "p1", Name: "Stylo", Type: "Type1", Barcode: "111", Supplier: "Bic",
			Price: decimal.RequireFromString("2.5"), Stocks: []entity.Stock{central}},
		{ID: "p2", Name: "Cahier", Type: "Type2", Barcode: "222", Supplier: "Clairefontaine",
			Price: decimal.RequireFromString("3")},
	}}
	store := localstore.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	return cli.Deps{
		Auth:      auth.NewAuthUseCase(fakeWarehousemen{}, store, nil),
		Products:  products,
		ProductUC: usecase.NewProductUseCase(products),
		Stats:     usecase.NewStatisticsUseCase(fakeStats{}),
		Report:    report.NewReportUseCase(products, fakeGenerator{}),
		Lang:      language.French,
		In:        strings.NewReader(""),
	}, products, store
}

func run(deps cli.Deps, args ...string) (string, error) {
	var out bytes.Buffer
	deps.Out = &out
	root := cli.NewRootCommand(deps)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func login(t *testing.T, deps cli.Deps) {
	t.Helper()
	_, err := run(deps, "login", "AB12")
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GuardaSesionYWhoami(t *testing.T) {
	deps, _, store := newDeps(t)

	out, err := run(deps, "login", "ab-12")
	require.NoError(t, err, "la máscara elimina el guion y pasa a mayúsculas")
	assert.Contains(t, out, "operario w1, almacén wh1")

	cached, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "w1", cached.ID)

	out, err = run(deps, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Operario w1")
}

func TestLogin_DesdeEntradaEstandar(t *testing.T) {
	deps, _, _ := newDeps(t)
	deps.In = strings.NewReader("AB12\n")

	out, err := run(deps, "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión iniciada")
}

func TestLogin_Errores(t *testing.T) {
	deps, _, store := newDeps(t)

	_, err := run(deps, "login", "AB1")
	assert.ErrorIs(t, err, domain.ErrSecretTooShort)

	_, err = run(deps, "login", "ZZZZ")
	assert.ErrorIs(t, err, domain.ErrIncorrectCode)
	assert.Equal(t, "el código secreto es incorrecto", cli.Describe(err))

	cached, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestLogout(t *testing.T) {
	deps, _, _ := newDeps(t)
	login(t, deps)

	out, err := run(deps, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión cerrada")

	_, err = run(deps, "whoami")
	assert.ErrorIs(t, err, domain.ErrNoSession)

	_, err = run(deps, "logout")
	assert.NoError(t, err, "logout sin sesión no falla")
}

func TestLogout_CacheCorruptaSeBorra(t *testing.T) {
	deps, _, store := newDeps(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))

	out, err := run(deps, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión cerrada")

	_, statErr := os.Stat(store.Path())
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_OrdenYBusqueda(t *testing.T) {
	deps, _, _ := newDeps(t)

	out, err := run(deps, "products", "--sort", "price")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Stylo"), strings.Index(out, "Cahier"), "precio ascendente")

	out, err = run(deps, "products", "--sort", "price", "--sort", "price")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "Cahier"), strings.Index(out, "Stylo"), "segunda vez descendente")

	out, err = run(deps, "products", "-q", "clairef")
	require.NoError(t, err)
	assert.Contains(t, out, "Cahier")
	assert.NotContains(t, out, "Stylo")

	out, err = run(deps, "products", "-q", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "Sin resultados")

	_, err = run(deps, "products", "--sort", "color")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShow_PorIDOCodigo(t *testing.T) {
	deps, _, _ := newDeps(t)

	out, err := run(deps, "show", "111")
	require.NoError(t, err)
	assert.Contains(t, out, "Stylo")
	assert.Contains(t, out, "Rabat")

	_, err = run(deps, "show", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouses(t *testing.T) {
	deps, _, _ := newDeps(t)
	out, err := run(deps, "warehouses")
	require.NoError(t, err)
	assert.Contains(t, out, "Central")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRestockUnload(t *testing.T) {
	deps, products, _ := newDeps(t)

	_, err := run(deps, "restock", "p1", "s1", "5")
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Zero(t, products.patches)

	login(t, deps)

	out, err := run(deps, "restock", "p1", "s1", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Stylo / Central: 9 unidades")

	out, err = run(deps, "unload", "111", "s1", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "Central: 0 unidades", "recorta a cero")
	assert.Equal(t, 2, products.patches)

	_, err = run(deps, "unload", "p1", "s1", "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = run(deps, "restock", "p1", "s9", "1")
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
	assert.Equal(t, 2, products.patches)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escaneo
// ──────────────────────────────────────────────────────────────────────────────

func TestScan_Manual(t *testing.T) {
	deps, _, _ := newDeps(t)

	out, err := run(deps, "scan", "  111 ")
	require.NoError(t, err)
	assert.Contains(t, out, "Stylo")

	_, err = run(deps, "scan", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyBarcode)
}

func TestScan_BucleLector(t *testing.T) {
	deps, _, _ := newDeps(t)
	deps.In = strings.NewReader("111\n\n999\nexit\n222\n")

	out, err := run(deps, "scan")
	require.NoError(t, err)
	assert.Contains(t, out, "Stylo")
	assert.Contains(t, out, "Producto no encontrado: 999")
	assert.Contains(t, out, `invex add --barcode "999"`)
	assert.NotContains(t, out, "Cahier", "tras exit no se leen más códigos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta, estadísticas e informe
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd(t *testing.T) {
	deps, products, _ := newDeps(t)
	login(t, deps)

	out, err := run(deps, "add", "--name", "Gomme", "--price", "1.20", "--supplier", "Maped",
		"--warehouse", "s1", "--quantity", "7", "--barcode", "333")
	require.NoError(t, err)
	assert.Contains(t, out, "Producto creado: Gomme (p3)")

	created := products.products[2]
	assert.Equal(t, "Type1", created.Type)
	require.Len(t, created.Stocks, 1)
	assert.Equal(t, 7, created.Stocks[0].Quantity)
	assert.Equal(t, "Central", created.Stocks[0].Name)
	require.Len(t, created.EditedBy, 1)
	assert.Equal(t, "w1", created.EditedBy[0].WarehousemanID)

	_, err = run(deps, "add", "--name", "Sin precio")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = run(deps, "add", "--name", "X", "--price", "1", "--supplier", "Y", "--warehouse", "nope", "--quantity", "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStats(t *testing.T) {
	deps, _, _ := newDeps(t)
	out, err := run(deps, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "Stylo")
}

func TestReport(t *testing.T) {
	deps, _, _ := newDeps(t)
	path := filepath.Join(t.TempDir(), "inv.pdf")

	out, err := run(deps, "report", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF fake 2", string(raw))

	out, err = run(deps, "report", "-o", "-")
	require.NoError(t, err)
	assert.Equal(t, "%PDF fake 2", out)
}

func TestDescribe(t *testing.T) {
	err := fmt.Errorf("%w: %w", domain.ErrIncorrectCode, domain.ErrTransport)
	assert.Contains(t, cli.Describe(err), "no se pudo contactar")

	se := &restapi.StatusError{Method: "GET", Path: "/statistics", Code: 500}
	assert.Equal(t, "el servidor respondió HTTP 500 a GET /statistics", cli.Describe(fmt.Errorf("estadísticas: %w", se)))

	assert.Empty(t, cli.Describe(nil))
}
