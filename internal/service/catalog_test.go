package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/repo"
)

func TestCatalogServiceValidation(t *testing.T) {
	svc := &CatalogService{Repo: newTestDB(t)}
	ctx := context.Background()

	tests := []struct {
		name    string
		product models.Product
	}{
		{name: "empty name", product: models.Product{Price: 5}},
		{name: "negative price", product: models.Product{Name: "shirt", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prod := tt.product
			_, err := svc.CreateProduct(ctx, &prod)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestCatalogServiceUpdateNotFound(t *testing.T) {
	svc := &CatalogService{Repo: newTestDB(t)}

	_, err := svc.UpdateProduct(context.Background(), 9999, models.Product{Name: "ghost", Price: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalogServiceProductsByCategoryNotFound(t *testing.T) {
	svc := &CatalogService{Repo: newTestDB(t)}

	_, err := svc.ProductsByCategory(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCatalogServiceCreateAndSearch(t *testing.T) {
	r := newTestDB(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	category := models.Category{Name: "clothing"}
	require.NoError(t, r.DB.Create(&category).Error)

	prod := models.Product{Name: "shirt", Price: 10, CategoryID: category.ID, Color: "red"}
	created, err := svc.CreateProduct(ctx, &prod)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	items, err := svc.SearchProducts(ctx, repo.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	byCategory, err := svc.ProductsByCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)
}
