package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/easyshop/backend/internal/repo"
	"github.com/easyshop/backend/internal/service"
	"github.com/easyshop/backend/internal/transport"
	"github.com/easyshop/backend/pkg/logging"
)

type CartHTTP struct {
	Svc   *service.CartService
	Users *repo.GormRepo
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	user, err := currentUser(c, h.Users)
	if err != nil {
		return err
	}

	cart, err := h.Svc.GetCart(ctx, user.ID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, cart)
}

// AddItem adds the product from the path to the caller's own cart. A missing
// body means quantity 1; adding an already present product accumulates.
func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	user, err := currentUser(c, h.Users)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("add_item_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id must be an integer")
	}

	req := transport.CartItemRequest{Quantity: 1}
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			l.Warn("add_item_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
	}

	item, err := h.Svc.AddItem(ctx, user.ID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_item_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_item_not_found", "status", 404, "product_id", productID)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		default:
			l.Error("add_item_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	l.Info("item added to cart", "user_id", user.ID, "product_id", productID)
	return c.JSON(http.StatusCreated, item)
}

// UpdateItem sets the absolute quantity for the line; zero or negative
// removes it.
func (h *CartHTTP) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	user, err := currentUser(c, h.Users)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_item_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id must be an integer")
	}

	var req transport.CartItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_item_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateItem(ctx, user.ID, productID, req.Quantity); err != nil {
		l.Error("update_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart item updated", "user_id", user.ID, "product_id", productID, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, echo.Map{"product_id": productID, "quantity": req.Quantity})
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	user, err := currentUser(c, h.Users)
	if err != nil {
		return err
	}

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("remove_item_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id must be an integer")
	}

	if err := h.Svc.RemoveItem(ctx, user.ID, productID); err != nil {
		l.Error("remove_item_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	user, err := currentUser(c, h.Users)
	if err != nil {
		return err
	}

	if err := h.Svc.ClearCart(ctx, user.ID); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("cart cleared", "user_id", user.ID)
	return c.NoContent(http.StatusNoContent)
}
