package routes

import (
	"shawon-burger/controllers"

	"github.com/gin-gonic/gin"
)

func ReviewRoutes(api *gin.RouterGroup, deps Deps, authenticated gin.HandlerFunc) {
	api.GET("/orders/:id/reviews", authenticated, controllers.GetOrderReviews(deps.Reviews))
	api.POST("/orders/:id/reviews", authenticated, controllers.CreateReview(deps.Reviews))
	api.PATCH("/reviews/:id", authenticated, controllers.UpdateReview(deps.Reviews))
}
