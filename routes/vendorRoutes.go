package routes

import (
	"github.com/Abtahee-2104089/hackathon-CUET/controllers"
	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/gin-gonic/gin"
)

func VendorRoutes(server *gin.Engine, vendors *controllers.VendorController, authenticate gin.HandlerFunc) {
	group := server.Group("/vendors")
	{
		group.GET("", vendors.GetVendors)
		group.GET("/profile/me", authenticate, middlewares.RequireVendor(), vendors.GetMyProfile)
		group.PUT("/profile", authenticate, middlewares.RequireVendor(), vendors.UpdateProfile)
		group.PATCH("/toggle-availability", authenticate, middlewares.RequireVendor(), vendors.ToggleAvailability)
		group.GET("/:id", vendors.GetVendor)
	}
}
