package routes

import (
	"shawon-burger/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(api *gin.RouterGroup, deps Deps, authenticated gin.HandlerFunc) {
	auth := api.Group("/auth")
	auth.POST("/register", controllers.SignUp(deps.Auth))
	auth.POST("/verify-otp", controllers.VerifyOTP(deps.Auth))
	auth.POST("/resend-otp", controllers.ResendOTP(deps.Auth))
	auth.POST("/login", controllers.Login(deps.Auth))
	auth.GET("/profile", authenticated, controllers.GetProfile(deps.Auth))
	auth.PATCH("/profile", authenticated, controllers.UpdateProfile(deps.Auth))
}
