package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/mykafka"
	"github.com/easyshop/backend/internal/repo"
	"github.com/easyshop/backend/internal/search"
	"github.com/easyshop/backend/pkg/logging"
)

// CatalogService owns product and category persistence plus the write-path
// side effects: domain events on kafka and index maintenance in elasticsearch.
// Both side effects are best effort and never fail the request.
type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	Search   *search.Client
}

func (s *CatalogService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return product, err
}

func (s *CatalogService) SearchProducts(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	return s.Repo.SearchProducts(ctx, f)
}

func (s *CatalogService) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := validateProduct(prod); err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "product_created", created.ID, created.Name)
	s.index(ctx, *created)
	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id int, prod models.Product) (*models.Product, error) {
	if err := validateProduct(&prod); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateProduct(ctx, id, prod)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	s.publish(ctx, "product_updated", updated.ID, updated.Name)
	s.index(ctx, *updated)
	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return err
	}

	s.publish(ctx, "product_deleted", id, "")
	if s.Search != nil {
		if err := s.Search.DeleteProduct(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search delete failed", "product_id", id, "error", err)
		}
	}
	return nil
}

// SearchText is the free-text search path backed by elasticsearch.
func (s *CatalogService) SearchText(ctx context.Context, q string, from, size int) (int64, []models.Product, error) {
	if s.Search == nil {
		return 0, nil, errors.New("search backend not configured")
	}
	return s.Search.Search(ctx, q, from, size)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	category, err := s.Repo.GetCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return category, err
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.Repo.ProductsByCategory(ctx, categoryID)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if category.Name == "" {
		return nil, fmt.Errorf("category name required: %w", ErrValidation)
	}
	return s.Repo.CreateCategory(ctx, category)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int, category models.Category) (*models.Category, error) {
	if category.Name == "" {
		return nil, fmt.Errorf("category name required: %w", ErrValidation)
	}
	updated, err := s.Repo.UpdateCategory(ctx, id, category)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return updated, err
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id int) error {
	err := s.Repo.DeleteCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return err
}

func validateProduct(prod *models.Product) error {
	if prod.Name == "" {
		return fmt.Errorf("product name required: %w", ErrValidation)
	}
	if prod.Price < 0 {
		return fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}
	return nil
}

func (s *CatalogService) publish(ctx context.Context, eventType string, productID int, name string) {
	if s.Producer == nil {
		return
	}
	event := map[string]any{
		"type":      eventType,
		"productID": productID,
	}
	if name != "" {
		event["name"] = name
	}
	if err := s.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(productID), event); err != nil {
		logging.FromContext(ctx).Warn("kafka publish failed", "type", eventType, "error", err)
	}
}

func (s *CatalogService) index(ctx context.Context, prod models.Product) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexProduct(ctx, prod); err != nil {
		logging.FromContext(ctx).Warn("search index failed", "product_id", prod.ID, "error", err)
	}
}
