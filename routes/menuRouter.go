package routes

import (
	"shawon-burger/controllers"

	"github.com/gin-gonic/gin"
)

// MenuRoutes are the public storefront catalog routes.
func MenuRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/menu", controllers.GetMenu(deps.Catalog))
	api.GET("/combos", controllers.GetActiveCombos(deps.Catalog))
}
