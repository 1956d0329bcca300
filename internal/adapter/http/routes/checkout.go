package routes

import (
	"paypal_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout     = "/checkout"
	PathTransactions = "/transactions"
	PathOrders       = "/orders"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/direct", h.ChargeDirect)
		checkout.POST("/express", h.StartExpress)
		checkout.GET("/express/callback/success", h.CallbackSuccess)
		checkout.GET("/express/callback/cancel", h.CallbackCancel)
	}

	rg.GET(PathTransactions+"/:id", h.GetTransaction)

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id/transactions", h.ListOrderTransactions)
		orders.GET("/:order_id/transactions/latest", h.GetLatestOrderTransaction)
	}
}
