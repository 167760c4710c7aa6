package billing

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/platform/auth"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/internal/workflow"
	"github.com/jamshid-zayniyev/brosmedcrm-sub000/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Home-screen counts are shared across roles.
	api.GET("/stats", h.DashboardStats)

	cashier := api.Group("", auth.RequireRole(workflow.RoleCashier))
	cashier.GET("/cashier/stats", h.CashierStats)
	cashier.GET("/payment", h.ListPayments)
	cashier.GET("/patient/:id/payments", h.PaymentsForPatient)
}

func (h *Handler) CashierStats(c echo.Context) error {
	stats, err := h.svc.CashierStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) DashboardStats(c echo.Context) error {
	stats, err := h.svc.DashboardStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListPayments(c echo.Context) error {
	pg := pagination.FromContext(c)
	payments, total, err := h.svc.ListPayments(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(payments, total, pg.Limit, pg.Offset))
}

func (h *Handler) PaymentsForPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	payments, err := h.svc.PaymentsForPatient(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, payments)
}
