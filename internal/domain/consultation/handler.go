package consultation

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
	api.GET("/consultation/:id", h.Get)
	api.GET("/patient/:id/consultation", h.HistoryForPatient)

	doctor := api.Group("", auth.RequireRole(workflow.RoleDoctor))
	doctor.POST("/consultation", h.Create)
	doctor.GET("/consultation", h.ListMine)
}

func (h *Handler) Create(c echo.Context) error {
	var con Consultation
	if err := c.Bind(&con); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	err := h.svc.Create(ctx, &con, auth.UserIDFromContext(ctx), auth.RoleFromContext(ctx))
	if err != nil {
		var (
			transitionErr *workflow.TransitionError
			authzErr      *workflow.AuthorizationError
		)
		switch {
		case errors.As(err, &authzErr):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.As(err, &transitionErr):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, con)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	con, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) HistoryForPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	consultations, err := h.svc.HistoryForPatient(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, consultations)
}

func (h *Handler) ListMine(c echo.Context) error {
	pg := pagination.FromContext(c)
	doctorID := auth.UserIDFromContext(c.Request().Context())
	consultations, total, err := h.svc.ListByDoctor(c.Request().Context(), doctorID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(consultations, total, pg.Limit, pg.Offset))
}
