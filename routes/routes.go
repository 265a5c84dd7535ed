package routes

import (
	"net/http"
	"time"

	"shawon-burger/controllers"
	"shawon-burger/middleware"
	"shawon-burger/notify"
	"shawon-burger/services"

	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP layer needs from main.
type Deps struct {
	Auth          *services.AuthService
	Users         *services.UserService
	Catalog       *services.CatalogService
	Orders        *services.OrderService
	Reviews       *services.ReviewService
	Dashboard     *services.DashboardService
	Notifications *services.NotificationService
	Hub           *notify.Hub
	Tokens        middleware.TokenValidator
	DB            controllers.Pinger
	Timezone      *time.Location
}

// Register mounts every API route under /api.
func Register(router *gin.Engine, deps Deps) {
	api := router.Group("/api")
	api.GET("/health", controllers.Health(deps.DB))

	authenticated := middleware.Authentication(deps.Tokens)
	AuthRoutes(api, deps, authenticated)
	MenuRoutes(api, deps)
	OrderRoutes(api, deps, authenticated)
	ReviewRoutes(api, deps, authenticated)

	api.GET("/admin/ws", middleware.WebSocketAuthentication(deps.Tokens), middleware.AdminOnly(), controllers.HandleWebSocket(deps.Hub))
	admin := api.Group("/admin", authenticated, middleware.AdminOnly())
	AdminRoutes(admin, deps)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
