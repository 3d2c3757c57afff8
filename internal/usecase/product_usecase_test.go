package usecase

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/sahil00000001/SMFurnishAdmin/internal/clients"
	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestBackend(t *testing.T, handler http.Handler) (clients.BackendClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return clients.NewBackendHTTPClient(server.URL, 5*time.Second, testLogger()), server
}

const (
	sofaJSON       = `{"_id":"p1","name":"Sofa","price":199.5,"categoryId":"c1","stock":3}`
	categoriesJSON = `{"data":[{"_id":"c1","name":"Living Room"}]}`
)

func TestProductGetAllResolvesCategories(t *testing.T) {
	backend, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			w.Write([]byte(`{"data":[` + sofaJSON + `]}`))
		case "/api/categories":
			w.Write([]byte(categoriesJSON))
		default:
			http.NotFound(w, r)
		}
	}))

	uc := NewProductUseCase(backend, testLogger())
	products, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	got := products[0]
	require.Equal(t, "p1", got.ID)
	require.Equal(t, "Sofa", got.Name)
	require.Equal(t, "199.5", got.Price)
	require.Equal(t, "c1", got.CategoryID)
	require.Equal(t, "Living Room", got.CategoryName)
	require.Equal(t, 3, got.Stock)
	require.Equal(t, domain.ProductActive, got.Status)
}

func TestProductGetAllFailsWhenCategoriesFail(t *testing.T) {
	backend, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			w.Write([]byte(`{"data":[` + sofaJSON + `]}`))
		case "/api/categories":
			http.Error(w, "categories unavailable", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))

	uc := NewProductUseCase(backend, testLogger())
	products, err := uc.GetAll(context.Background())
	require.Error(t, err)
	require.Nil(t, products)
}

func TestProductCreateSendsNumericPrice(t *testing.T) {
	var created map[string]any
	backend, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/products" && r.Method == http.MethodPost:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":` + sofaJSON + `}`))
		case r.URL.Path == "/api/categories":
			w.Write([]byte(categoriesJSON))
		default:
			http.NotFound(w, r)
		}
	}))

	uc := NewProductUseCase(backend, testLogger())
	desc := "Three-seater"
	product, err := uc.Create(context.Background(), domain.ProductInput{
		Name:        "Sofa",
		Description: &desc,
		Price:       "199.5",
		Stock:       3,
		CategoryID:  "c1",
	})
	require.NoError(t, err)

	require.Equal(t, 199.5, created["price"])
	require.Equal(t, float64(3), created["stock"])
	require.Equal(t, "Living Room", product.CategoryName)
}

func TestProductCreateRejectsBadPrice(t *testing.T) {
	backend, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no backend call expected for an invalid price")
	}))

	uc := NewProductUseCase(backend, testLogger())
	_, err := uc.Create(context.Background(), domain.ProductInput{Name: "Sofa", Price: "not-a-number"})
	require.Error(t, err)
}

func TestProductUpdateRenormalizes(t *testing.T) {
	backend, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/products/p1" && r.Method == http.MethodPut:
			w.Write([]byte(`{"data":` + sofaJSON + `}`))
		case r.URL.Path == "/api/categories":
			w.Write([]byte(categoriesJSON))
		default:
			http.NotFound(w, r)
		}
	}))

	uc := NewProductUseCase(backend, testLogger())
	product, err := uc.Update(context.Background(), "p1", domain.ProductInput{Name: "Sofa", Price: "199.5", Stock: 3, CategoryID: "c1"})
	require.NoError(t, err)
	require.Equal(t, "Living Room", product.CategoryName)
	require.Equal(t, "199.5", product.Price)
}

func TestProductDeleteReturnsBody(t *testing.T) {
	backend, _ := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/products/p1", r.URL.Path)
		w.Write([]byte(`{"message":"deleted"}`))
	}))

	uc := NewProductUseCase(backend, testLogger())
	body, err := uc.Delete(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "deleted", body["message"])
}
