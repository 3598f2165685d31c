package routes

import (
	"novo_seguros/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions  = "/sessions"
	PathSlips     = "/slips"
	PathPix       = "/pix"
	PathDownloads = "/downloads"
)

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, receiptHandler *handlers.ReceiptHandler, pixHandler *handlers.PixHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", dashboardHandler.CreateSession)
		sessions.GET("/:session_id/view", dashboardHandler.GetView)
		sessions.PATCH("/:session_id/filters", dashboardHandler.UpdateFilters)
		sessions.DELETE("/:session_id/filters", dashboardHandler.ClearFilters)
		sessions.DELETE("/:session_id/filters/:field", dashboardHandler.ClearFilter)
		sessions.PATCH("/:session_id/sort", dashboardHandler.SetSort)
		sessions.PATCH("/:session_id/tab", dashboardHandler.SetTab)
		sessions.PATCH("/:session_id/vehicle", dashboardHandler.SelectVehicle)
		sessions.POST("/:session_id/slips/:slip_id/select", dashboardHandler.SelectSlip)
		sessions.PATCH("/:session_id/groups/:vehicle_id/toggle", dashboardHandler.ToggleGroup)
		sessions.POST("/:session_id/groups/expand-all", dashboardHandler.ExpandAll)
		sessions.POST("/:session_id/groups/collapse-all", dashboardHandler.CollapseAll)
		sessions.PATCH("/:session_id/pages/:key", dashboardHandler.SetPage)
	}

	slips := rg.Group(PathSlips)
	{
		slips.GET("/:slip_id/receipt", receiptHandler.Download)
		slips.POST("/:slip_id/pix", pixHandler.CreatePayload)
	}

	rg.POST(PathPix+"/copy", pixHandler.CopyCode)
	rg.GET(PathDownloads+"/pending", receiptHandler.PendingDownloads)
}
