package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/transport"
)

func seedShirtsAndMugs(env *testEnv) {
	env.seedProduct(models.Product{Name: "red shirt", Price: 15, CategoryID: 1, Color: "red"})
	env.seedProduct(models.Product{Name: "blue shirt", Price: 25, CategoryID: 1, Color: "blue"})
	env.seedProduct(models.Product{Name: "plain mug", Price: 8, CategoryID: 2, Color: ""})
}

func TestListProductsPublic(t *testing.T) {
	env := newTestEnv(t)
	seedShirtsAndMugs(env)

	rec := env.doJSON(http.MethodGet, "/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeJSON[[]models.Product](t, rec)
	assert.Len(t, items, 3)
}

func TestListProductsFilterParsing(t *testing.T) {
	env := newTestEnv(t)
	seedShirtsAndMugs(env)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "no filters", query: "", want: 3},
		{name: "category", query: "?category=1", want: 2},
		{name: "price window", query: "?minPrice=10&maxPrice=20", want: 1},
		{name: "color", query: "?color=red", want: 1},
		{name: "present but empty color filters for empty color", query: "?color=", want: 1},
		{name: "inverted range is empty", query: "?minPrice=20&maxPrice=10", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.doJSON(http.MethodGet, "/products"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, rec.Code)

			items := decodeJSON[[]models.Product](t, rec)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestListProductsRejectsBadFilter(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/products?minPrice=cheap", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)
	shirt := env.seedProduct(models.Product{Name: "red shirt", Price: 15, CategoryID: 1, Color: "red"})

	rec := env.doJSON(http.MethodGet, fmt.Sprintf("/products/%d", shirt.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeJSON[models.Product](t, rec)
	assert.Equal(t, shirt.ID, got.ID)
	assert.Equal(t, "red shirt", got.Name)

	rec = env.doJSON(http.MethodGet, "/products/9999", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductWritesRequireAdmin(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("ada", "user")
	body := transport.ProductRequest{Name: "shirt", Price: 10, CategoryID: 1}

	rec := env.doJSON(http.MethodPost, "/products", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doJSON(http.MethodPost, "/products", body, env.tokenFor(user))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminProductLifecycle(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser("root", "admin")
	token := env.tokenFor(admin)

	rec := env.doJSON(http.MethodPost, "/products", transport.ProductRequest{Name: "shirt", Price: 10, CategoryID: 1, Color: "red"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON[models.Product](t, rec)

	path := fmt.Sprintf("/products/%d", created.ID)

	rec = env.doJSON(http.MethodPut, path, transport.ProductRequest{Name: "crimson shirt", Price: 12, CategoryID: 1, Color: "crimson"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[models.Product](t, rec)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "crimson shirt", updated.Name)

	rec = env.doJSON(http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.doJSON(http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser("root", "admin")

	rec := env.doJSON(http.MethodPut, "/products/9999", transport.ProductRequest{Name: "ghost", Price: 1}, env.tokenFor(admin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
