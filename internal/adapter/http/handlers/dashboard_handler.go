package handlers

import (
	"errors"
	"net/http"

	request "novo_seguros/internal/adapter/http/dto/request"
	response "novo_seguros/internal/adapter/http/dto/response"
	"novo_seguros/internal/domain/entities"
	"novo_seguros/internal/usecase"
	"novo_seguros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// DashboardHandler exposes the dashboard session transitions over HTTP. Every
// mutation answers with the freshly derived view so clients never have to
// stitch partial state together.

type DashboardHandler struct {
	usecase usecase.IDashboardSessionUseCase
}

func NewDashboardHandler(uc usecase.IDashboardSessionUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) CreateSession(c *gin.Context) {
	view, err := h.usecase.CreateSession(c.Request.Context())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) GetView(c *gin.Context) {
	view, err := h.usecase.View(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) UpdateFilters(c *gin.Context) {
	var payload request.FilterUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	update := usecase.FilterUpdate{
		SearchTerm:   payload.SearchTerm,
		Make:         payload.Make,
		Model:        payload.Model,
		Year:         payload.Year,
		Status:       payload.Status,
		LicensePlate: payload.LicensePlate,
		PolicyNumber: payload.PolicyNumber,
	}

	view, err := h.usecase.UpdateFilters(c.Request.Context(), c.Param("session_id"), update)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) ClearFilters(c *gin.Context) {
	view, notifications, err := h.usecase.ClearFilters(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, notifications))
}

func (h *DashboardHandler) ClearFilter(c *gin.Context) {
	field := entities.FilterField(c.Param("field"))
	view, err := h.usecase.ClearFilter(c.Request.Context(), c.Param("session_id"), field)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) SetSort(c *gin.Context) {
	var payload request.SortRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SetSort(
		c.Request.Context(),
		c.Param("session_id"),
		entities.SortField(payload.SortBy),
		entities.SortOrder(payload.SortOrder),
	)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) SetTab(c *gin.Context) {
	var payload request.TabRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SetTab(c.Request.Context(), c.Param("session_id"), entities.Tab(payload.Tab))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) SelectVehicle(c *gin.Context) {
	var payload request.VehicleSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SelectVehicle(c.Request.Context(), c.Param("session_id"), payload.VehicleID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) SelectSlip(c *gin.Context) {
	view, err := h.usecase.SelectSlip(c.Request.Context(), c.Param("session_id"), c.Param("slip_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) ToggleGroup(c *gin.Context) {
	view, err := h.usecase.ToggleGroup(c.Request.Context(), c.Param("session_id"), c.Param("vehicle_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func (h *DashboardHandler) ExpandAll(c *gin.Context) {
	view, notifications, err := h.usecase.ExpandAll(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, notifications))
}

func (h *DashboardHandler) CollapseAll(c *gin.Context) {
	view, notifications, err := h.usecase.CollapseAll(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, notifications))
}

func (h *DashboardHandler) SetPage(c *gin.Context) {
	var payload request.PageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SetPage(c.Request.Context(), c.Param("session_id"), c.Param("key"), payload.Page)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardView(view, nil))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidFilterField),
		errors.Is(err, usecase.ErrInvalidSortSpec),
		errors.Is(err, usecase.ErrInvalidTab),
		errors.Is(err, usecase.ErrInvalidPage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
