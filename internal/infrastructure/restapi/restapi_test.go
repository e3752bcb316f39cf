package restapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invex/internal/domain"
	"github.com/jhoicas/invex/internal/domain/entity"
	"github.com/jhoicas/invex/internal/infrastructure/restapi"
)

// newServer levanta un backend falso y devuelve el cliente apuntando a él.
func newServer(t *testing.T, h http.HandlerFunc) *restapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return restapi.NewClient(srv.URL+"/", 0, nil)
}

func TestWarehousemanRepo_FindBySecretKey(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/warehousemans", r.URL.Path)
		if r.URL.Query().Get("secretKey") == "AB12" {
			_, _ = io.WriteString(w, `[{"id":"w1","warehouseId":"wh1","secretKey":"AB12"}]`)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	})
	repo := restapi.NewWarehousemanRepository(c)

	got, err := repo.FindBySecretKey(context.Background(), "AB12")
	require.NoError(t, err)
	assert.Equal(t, "w1", got.ID)
	assert.Equal(t, "wh1", got.WarehouseID)

	_, err = repo.FindBySecretKey(context.Background(), "ZZZZ")
	assert.ErrorIs(t, err, domain.ErrWarehousemanNotFound)
	assert.NotErrorIs(t, err, domain.ErrTransport)
}

func TestWarehousemanRepo_ServidorIgnoraElFiltro(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"w1","warehouseId":"wh1","secretKey":"AB12"},{"id":2,"warehouseId":"wh2","secretKey":"ZZ99"}]`)
	})
	repo := restapi.NewWarehousemanRepository(c)

	got, err := repo.FindBySecretKey(context.Background(), "ZZ99")
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)

	_, err = repo.FindBySecretKey(context.Background(), "QQQQ")
	assert.ErrorIs(t, err, domain.ErrWarehousemanNotFound, "un código desconocido no abre la sesión del primer operario")
}

func TestClient_ErroresDeTransporte(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := restapi.NewWarehousemanRepository(c).FindBySecretKey(context.Background(), "AB12")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.NotErrorIs(t, err, domain.ErrWarehousemanNotFound)

	var se *restapi.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "boom", se.Body)
}

func TestClient_ServidorCaido(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := restapi.NewProductRepository(restapi.NewClient(url, 0, nil)).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestProductRepo_ListYBarcode(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		// el servidor ignora el filtro ?barcode=
		_, _ = io.WriteString(w, `[
			{"id":"1","name":"Stylo","barcode":"abc","price":12.5,"stocks":[{"id":"s1","name":"Central","quantity":3,"localisation":{"city":"Rabat"}}]},
			{"id":"2","name":"Cahier","barcode":"ABC","price":"10","stocks":[]}
		]`)
	})
	repo := restapi.NewProductRepository(c)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, decimal.RequireFromString("12.5").Equal(list[0].Price))
	assert.Equal(t, "Rabat", list[0].Stocks[0].Localisation.City)

	got, err := repo.FindByBarcode(context.Background(), "ABC")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2", got.ID, "coincidencia exacta y sensible a mayúsculas")

	got, err = repo.FindByBarcode(context.Background(), "xyz")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepo_PatchStocks(t *testing.T) {
	var body map[string]json.RawMessage
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/products/p1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"id":"p1"}`)
	})

	stocks := []entity.Stock{{ID: "s1", Name: "Central", Quantity: 0}, {ID: "s2", Name: "Nord", Quantity: 7}}
	err := restapi.NewProductRepository(c).PatchStocks(context.Background(), "p1", stocks, "w1")
	require.NoError(t, err)

	assert.JSONEq(t, `"w1"`, string(body["warehousemanId"]))
	var sent []entity.Stock
	require.NoError(t, json.Unmarshal(body["stocks"], &sent))
	assert.Equal(t, stocks, sent, "se envía el array completo")
	assert.Len(t, body, 2, "actualización parcial: solo stocks y warehousemanId")
}

func TestProductRepo_Create(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		raw, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(raw), `"price":19.9`, "el precio viaja como número")
		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.NotContains(t, body, "id", "el servidor asigna el id")
		assert.Contains(t, body, "editedBy")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":5,"name":"Gomme","price":19.9}`)
	})

	in := &entity.Product{Name: "Gomme", Price: decimal.RequireFromString("19.9"), EditedBy: []entity.EditEvent{}}
	out, err := restapi.NewProductRepository(c).Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "5", out.ID, "json-server devuelve ids numéricos")
}

func TestStatisticsRepo_Get(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statistics", r.URL.Path)
		_, _ = io.WriteString(w, `{"totalProducts":4,"outOfStock":1,"totalStockValue":287.5,"mostAddedProducts":["a"],"mostRemovedProducts":[]}`)
	})

	got, err := restapi.NewStatisticsRepository(c).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, got.TotalProducts)
	assert.Equal(t, 1, got.OutOfStock)
	assert.Equal(t, "287.5", got.TotalStockValue.String())
	assert.Equal(t, []string{"a"}, got.MostAddedProducts)
}
