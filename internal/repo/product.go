package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
)

// ProductFilter describes an optional predicate per field. A nil field means
// unconstrained; a non-nil pointer is always applied, so an explicitly empty
// color or a negative price bound is a real filter, never an "unset" marker.
type ProductFilter struct {
	CategoryID *int
	MinPrice   *float64
	MaxPrice   *float64
	Color      *string
}

func (r *GormRepo) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) SearchProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{}).Order("id ASC")

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Color != nil {
		q = q.Where("color = ?", *f.Color)
	}

	items := make([]models.Product, 0)
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	return r.SearchProducts(ctx, ProductFilter{CategoryID: &categoryID})
}

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) (*models.Product, error) {
	if err := r.DB.WithContext(ctx).Create(prod).Error; err != nil {
		return nil, err
	}
	return prod, nil
}

// UpdateProduct mutates exactly the row matching id. Zero rows affected means
// the product does not exist; the update never inserts.
func (r *GormRepo) UpdateProduct(ctx context.Context, id int, prod models.Product) (*models.Product, error) {
	res := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        prod.Name,
		"price":       prod.Price,
		"category_id": prod.CategoryID,
		"description": prod.Description,
		"color":       prod.Color,
		"image_url":   prod.ImageURL,
		"stock":       prod.Stock,
		"featured":    prod.Featured,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetProduct(ctx, id)
}

func (r *GormRepo) DeleteProduct(ctx context.Context, id int) error {
	res := r.DB.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
