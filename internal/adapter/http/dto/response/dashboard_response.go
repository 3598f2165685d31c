package response

import (
	"novo_seguros/internal/domain/entities"
	"novo_seguros/internal/usecase"
)

// DashboardViewResponse is the full derived session state plus whatever
// notifications the transition produced.
type DashboardViewResponse struct {
	usecase.DashboardView
	Notifications []NotificationResponse `json:"notifications,omitempty"`
}

func FromDashboardView(view usecase.DashboardView, notifications []entities.Notification) DashboardViewResponse {
	return DashboardViewResponse{
		DashboardView: view,
		Notifications: FromNotifications(notifications),
	}
}

type PendingDownloadsResponse struct {
	Pending []string `json:"pending"`
}

// DownloadFailureResponse carries the error plus the destructive notification
// the client should toast.
type DownloadFailureResponse struct {
	Code          string                 `json:"code"`
	Message       string                 `json:"message"`
	Notifications []NotificationResponse `json:"notifications,omitempty"`
}
