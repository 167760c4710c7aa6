package clinic

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/platform/auth"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/clinic-about", h.About)

	admin := api.Group("", auth.RequireRole(workflow.RoleSuperadmin))
	admin.PUT("/clinic-about", h.UpdateAbout)
}

func (h *Handler) About(c echo.Context) error {
	about, err := h.svc.About(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "clinic settings not found")
	}
	return c.JSON(http.StatusOK, about)
}

func (h *Handler) UpdateAbout(c echo.Context) error {
	var a About
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateAbout(c.Request().Context(), &a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
