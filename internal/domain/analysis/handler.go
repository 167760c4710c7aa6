package analysis

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
	api.GET("/analysis", h.List)
	api.GET("/analysis/:id", h.Get)
	api.GET("/analysis/:id/results", h.Results)
	api.GET("/analysis/:id/files", h.Files)
	api.GET("/patient/:id/analysis", h.ListByPatient)

	lab := api.Group("", auth.RequireRole(workflow.RoleReception, workflow.RoleLaboratory))
	lab.POST("/analysis", h.CreateOrder)

	// Only the lab asserts where an order stands.
	results := api.Group("", auth.RequireRole(workflow.RoleLaboratory))
	results.PATCH("/analysis/:id/status", h.SetStatus)
	results.POST("/analysis-result", h.SubmitResults)
	results.POST("/analysis/:id/files", h.AttachFile)

	admin := api.Group("", auth.RequireRole(workflow.RoleSuperadmin))
	admin.DELETE("/analysis/:id", h.Delete)
}

type orderRequest struct {
	PatientID        uuid.UUID `json:"patient_id"`
	DepartmentTypeID uuid.UUID `json:"department_type_id"`
}

func (h *Handler) CreateOrder(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	a := &Analysis{
		PatientID:        req.PatientID,
		DepartmentTypeID: req.DepartmentTypeID,
		OrderedBy:        auth.UserIDFromContext(ctx),
	}
	if err := h.svc.CreateOrder(ctx, a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

type analysisStatusRequest struct {
	Status workflow.AnalysisStatus `json:"status"`
}

func (h *Handler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req analysisStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.SetStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}

type resultsRequest struct {
	AnalysisID uuid.UUID     `json:"analysis_id"`
	Results    []ResultInput `json:"results"`
}

func (h *Handler) SubmitResults(c echo.Context) error {
	var req resultsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	results, err := h.svc.SubmitResults(c.Request().Context(), req.AnalysisID, req.Results)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, results)
}

func (h *Handler) AttachFile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var f File
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.AnalysisID = id
	if err := h.svc.AttachFile(c.Request().Context(), &f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "analysis not found")
	}
	return c.JSON(http.StatusOK, a)
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
	status := workflow.AnalysisStatus(c.QueryParam("status"))
	analyses, total, err := h.svc.List(c.Request().Context(), status, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(analyses, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	analyses, err := h.svc.ListByPatient(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, analyses)
}

func (h *Handler) Results(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	results, err := h.svc.Results(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, results)
}

func (h *Handler) Files(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	files, err := h.svc.Files(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, files)
}
