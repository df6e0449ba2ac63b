package routes

import (
	"github.com/Abtahee-2104089/hackathon-CUET/controllers"
	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine, menu *controllers.MenuController, authenticate gin.HandlerFunc) {
	group := server.Group("/menu")
	{
		group.GET("/vendor/:vendorId", menu.GetVendorMenu)
		group.GET("/my-menu", authenticate, middlewares.RequireVendor(), menu.GetMyMenu)
		group.POST("", authenticate, middlewares.RequireVendor(), menu.CreateMenuItem)
		group.POST("/upload-image", authenticate, middlewares.RequireVendor(), menu.UploadMenuImages)
		group.PUT("/:id", authenticate, middlewares.RequireVendor(), menu.UpdateMenuItem)
		group.DELETE("/:id", authenticate, middlewares.RequireVendor(), menu.DeleteMenuItem)
		group.PATCH("/toggle-availability/:id", authenticate, middlewares.RequireVendor(), menu.ToggleItemAvailability)
	}
}
