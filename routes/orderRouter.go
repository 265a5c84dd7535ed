package routes

import (
	"shawon-burger/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(api *gin.RouterGroup, deps Deps, authenticated gin.HandlerFunc) {
	orders := api.Group("/orders")
	orders.POST("/webhook", controllers.PaymentWebhook(deps.Orders))
	orders.POST("", authenticated, controllers.CreateOrder(deps.Orders))
	orders.GET("/my-orders", authenticated, controllers.GetMyOrders(deps.Orders))
	orders.GET("/:id", authenticated, controllers.GetOrder(deps.Orders))
}
