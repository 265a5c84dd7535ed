package routes

import (
	"shawon-burger/controllers"

	"github.com/gin-gonic/gin"
)

// AdminRoutes expects admin to already carry authentication and the admin check.
func AdminRoutes(admin *gin.RouterGroup, deps Deps) {
	admin.GET("/dashboard", controllers.GetDashboard(deps.Dashboard))
	admin.GET("/dashboard/export", controllers.ExportDashboard(deps.Dashboard))

	admin.GET("/menu", controllers.GetMenuItems(deps.Catalog))
	admin.POST("/menu", controllers.CreateMenuItem(deps.Catalog))
	admin.PATCH("/menu/:id", controllers.UpdateMenuItem(deps.Catalog))
	admin.PATCH("/menu/:id/stock", controllers.UpdateMenuStock(deps.Catalog))
	admin.PATCH("/menu/:id/price", controllers.UpdateMenuPrice(deps.Catalog))
	admin.DELETE("/menu/:id", controllers.DeleteMenuItem(deps.Catalog))

	admin.GET("/combos", controllers.GetCombos(deps.Catalog))
	admin.POST("/combos", controllers.CreateCombo(deps.Catalog))
	admin.PATCH("/combos/:id", controllers.UpdateCombo(deps.Catalog))
	admin.DELETE("/combos/:id", controllers.DeleteCombo(deps.Catalog))

	admin.GET("/orders", controllers.GetOrders(deps.Orders))
	admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus(deps.Orders))

	admin.GET("/users", controllers.GetUsers(deps.Users))

	admin.GET("/reviews", controllers.GetReviews(deps.Reviews))
	admin.GET("/reviews/export", controllers.ExportReviews(deps.Reviews, deps.Timezone))
	admin.POST("/reviews/:id/respond", controllers.RespondToReview(deps.Reviews))
	admin.DELETE("/reviews/:id", controllers.DeleteReview(deps.Reviews))

	admin.GET("/notifications", controllers.GetNotifications(deps.Notifications))
	admin.PATCH("/notifications/:id/read", controllers.MarkNotificationRead(deps.Notifications))
}
