package handlers

import (
	"errors"
	"net/http"

	request "novo_seguros/internal/adapter/http/dto/request"
	response "novo_seguros/internal/adapter/http/dto/response"
	"novo_seguros/internal/usecase"
	"novo_seguros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPixPayload = pkg.NewDomainErrorSimple("INVALID_PIX_INPUT", "Invalid PIX payload", http.StatusBadRequest)
)

// PixHandler exposes the PIX payment flow: payload generation for the
// payment modal and the clipboard copy action.

type PixHandler struct {
	usecase usecase.IPixUseCase
}

func NewPixHandler(uc usecase.IPixUseCase) *PixHandler {
	return &PixHandler{usecase: uc}
}

func (h *PixHandler) CreatePayload(c *gin.Context) {
	payload, err := h.usecase.CreatePayload(c.Request.Context(), c.Param("slip_id"))
	if err != nil {
		appErr := mapPixError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPixPayload(payload))
}

// CopyCode writes the code to the host clipboard. Copy failure is not an
// HTTP error: the contract is the notification, and the client keeps its
// state and may retry.
func (h *PixHandler) CopyCode(c *gin.Context) {
	var payload request.PixCopyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return
	}

	copied, notifications, err := h.usecase.CopyCode(c.Request.Context(), payload.Code)
	if err != nil && errors.Is(err, usecase.ErrInvalidPixCode) {
		c.JSON(errInvalidPixPayload.HTTPStatus, errInvalidPixPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PixCopyResponse{
		Copied:                 copied,
		CopiedIndicatorSeconds: h.usecase.CopiedIndicatorSeconds(),
		Notifications:          response.FromNotifications(notifications),
	})
}

func mapPixError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlipID), errors.Is(err, usecase.ErrInvalidPixCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlipNotFound):
		return pkg.NewDomainErrorSimple("SLIP_NOT_FOUND", "Payment slip not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
