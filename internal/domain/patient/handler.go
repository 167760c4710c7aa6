package patient

import (
	"errors"
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
	api.GET("/patient", h.List)
	api.GET("/patient/search", h.Search)
	api.GET("/patient/for-doctor", h.ForDoctor, auth.RequireRole(workflow.RoleDoctor))
	api.GET("/patient/:id", h.Get)
	api.GET("/patient/:id/status-history", h.StatusHistory)

	// Any authenticated role may request a move; the workflow machine is
	// the authority on which edges the role may take.
	api.PATCH("/patient/:id/status", h.TransitionStatus)

	desk := api.Group("", auth.RequireRole(workflow.RoleReception))
	desk.POST("/patient/register", h.Register)
	desk.PUT("/patient/:id", h.Update)

	cashier := api.Group("", auth.RequireRole(workflow.RoleCashier))
	cashier.PATCH("/patient/:id/payment-status", h.SetPaymentStatus)

	admin := api.Group("", auth.RequireRole(workflow.RoleSuperadmin))
	admin.DELETE("/patient/:id", h.Delete)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	result, err := h.svc.Register(ctx, auth.UserIDFromContext(ctx), auth.RoleFromContext(ctx), &in)
	if err != nil {
		return workflowHTTPError(err)
	}
	return c.JSON(http.StatusCreated, result)
}

type statusRequest struct {
	Status workflow.PatientStatus `json:"status"`
}

func (h *Handler) TransitionStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !req.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status: "+string(req.Status))
	}
	ctx := c.Request().Context()
	p, err := h.svc.TransitionStatus(ctx, id, req.Status, auth.UserIDFromContext(ctx), auth.RoleFromContext(ctx))
	if err != nil {
		return workflowHTTPError(err)
	}
	return c.JSON(http.StatusOK, p)
}

type paymentStatusRequest struct {
	PaymentStatus workflow.PaymentStatus `json:"payment_status"`
}

func (h *Handler) SetPaymentStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req paymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.SetPaymentStatus(c.Request().Context(), id, req.PaymentStatus)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = id
	if err := h.svc.Update(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	status := workflow.PatientStatus(c.QueryParam("status"))
	patients, total, err := h.svc.List(c.Request().Context(), status, pg.Limit, pg.Offset)
	if err != nil {
		if errors.Is(err, workflow.ErrUnknownStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(patients, total, pg.Limit, pg.Offset))
}

func (h *Handler) Search(c echo.Context) error {
	pg := pagination.FromContext(c)
	patients, total, err := h.svc.Search(c.Request().Context(), c.QueryParam("q"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(patients, total, pg.Limit, pg.Offset))
}

func (h *Handler) ForDoctor(c echo.Context) error {
	doctorID := auth.UserIDFromContext(c.Request().Context())
	if doctorID == uuid.Nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}
	patients, err := h.svc.ForDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) StatusHistory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	history, err := h.svc.StatusHistory(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, history)
}

// workflowHTTPError maps workflow policy failures onto HTTP: an edge that
// exists for no role is 422, a role outside the edge's set is 403, an
// unknown code is 400.
func workflowHTTPError(err error) error {
	var (
		transitionErr *workflow.TransitionError
		authzErr      *workflow.AuthorizationError
	)
	switch {
	case errors.Is(err, workflow.ErrUnknownStatus):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &authzErr):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.As(err, &transitionErr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
