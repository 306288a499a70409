package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/repo"
	middleware "github.com/easyshop/backend/pkg/middleware/auth"
)

// currentUser resolves the verified principal placed in the context by the
// auth guard into its User row. Every profile and cart operation addresses
// data by this row's id; ids supplied by the client are never used.
func currentUser(c echo.Context, r *repo.GormRepo) (*models.User, error) {
	v := c.Get(middleware.ContextKeyUsername)
	username, ok := v.(string)
	if !ok || username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := r.GetUserByUsername(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return user, nil
}
