package handlers

import (
	"errors"
	"fmt"
	"net/http"

	response "novo_seguros/internal/adapter/http/dto/response"
	"novo_seguros/internal/usecase"
	"novo_seguros/pkg"

	"github.com/gin-gonic/gin"
)

// ReceiptHandler streams slip receipts (comprovantes) and reports the
// in-flight download set.

type ReceiptHandler struct {
	usecase usecase.IReceiptDownloadUseCase
}

func NewReceiptHandler(uc usecase.IReceiptDownloadUseCase) *ReceiptHandler {
	return &ReceiptHandler{usecase: uc}
}

// Download streams the receipt with the save-as filename. On failure the
// body carries the destructive notification the client should toast; the
// data views on the client stay untouched and the user may retry.
func (h *ReceiptHandler) Download(c *gin.Context) {
	file, notifications, err := h.usecase.Download(c.Request.Context(), c.Param("slip_id"))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSlipID) {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusBadGateway, response.DownloadFailureResponse{
			Code:          "DOWNLOAD_FAILED",
			Message:       "Could not download the receipt",
			Notifications: response.FromNotifications(notifications),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func (h *ReceiptHandler) PendingDownloads(c *gin.Context) {
	c.JSON(http.StatusOK, response.PendingDownloadsResponse{Pending: h.usecase.PendingDownloads()})
}
