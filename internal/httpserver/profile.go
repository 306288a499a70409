package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/easyshop/backend/internal/models"
	"github.com/easyshop/backend/internal/repo"
	"github.com/easyshop/backend/internal/service"
	"github.com/easyshop/backend/internal/transport"
	"github.com/easyshop/backend/pkg/logging"
)

type ProfileHTTP struct {
	Svc   *service.ProfileService
	Users *repo.GormRepo
}

func (h *ProfileHTTP) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.get")

	user, err := currentUser(c, h.Users)
	if err != nil {
		return err
	}

	profile, err := h.Svc.Get(ctx, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_profile_not_found", "status", 404, "user_id", user.ID)
			return echo.NewHTTPError(http.StatusNotFound, "profile not found")
		}
		l.Error("get_profile_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "profile.update")

	user, err := currentUser(c, h.Users)
	if err != nil {
		return err
	}

	var req transport.ProfileRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_profile_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	profile := models.Profile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
	}

	updated, err := h.Svc.Update(ctx, user.ID, profile)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("update_profile_not_found", "status", 404, "user_id", user.ID)
			return echo.NewHTTPError(http.StatusNotFound, "profile not found")
		}
		l.Error("update_profile_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("profile updated", "user_id", user.ID)
	return c.JSON(http.StatusOK, updated)
}
