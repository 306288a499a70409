package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/easyshop/backend/internal/models"
)

func (r *GormRepo) CartItems(ctx context.Context, userID int) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("product_id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem inserts the line or increments its quantity in a single upsert.
// The unique (user_id, product_id) index makes concurrent adds for the same
// pair accumulate instead of duplicating rows.
func (r *GormRepo) AddCartItem(ctx context.Context, item *models.CartItem) error {
	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
		}),
	}).Create(item).Error
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).
		First(item).Error
}

// UpdateCartItem overwrites the stored quantity. A quantity of zero or less
// removes the row instead of persisting a non-positive quantity.
func (r *GormRepo) UpdateCartItem(ctx context.Context, userID, productID, quantity int) error {
	if quantity <= 0 {
		return r.RemoveCartItem(ctx, userID, productID)
	}
	return r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

func (r *GormRepo) RemoveCartItem(ctx context.Context, userID, productID int) error {
	return r.DB.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

func (r *GormRepo) ClearCart(ctx context.Context, userID int) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
