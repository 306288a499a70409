package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

// GetCart materializes the cart view from the stored line items and the
// current catalog. Line items whose product no longer exists are dropped from
// the view. A user with no rows gets an empty cart, not an error.
func (s *CartService) GetCart(ctx context.Context, userID int) (models.ShoppingCart, error) {
	cart := models.NewShoppingCart()

	items, err := s.Repo.CartItems(ctx, userID)
	if err != nil {
		return cart, err
	}

	for _, item := range items {
		product, err := s.Repo.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return cart, err
		}
		cart.Add(models.ShoppingCartItem{Product: *product, Quantity: item.Quantity})
	}

	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return nil, err
	}

	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := s.Repo.AddCartItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) UpdateItem(ctx context.Context, userID, productID, quantity int) error {
	return s.Repo.UpdateCartItem(ctx, userID, productID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) error {
	return s.Repo.RemoveCartItem(ctx, userID, productID)
}

func (s *CartService) ClearCart(ctx context.Context, userID int) error {
	return s.Repo.ClearCart(ctx, userID)
}
