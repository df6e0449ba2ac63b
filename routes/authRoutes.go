package routes

import (
	"github.com/Abtahee-2104089/hackathon-CUET/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController, authenticate gin.HandlerFunc) {
	group := server.Group("/auth")
	{
		group.POST("/register", auth.Register)
		group.POST("/login", auth.Login)
		group.GET("/me", authenticate, auth.Me)
	}
}
