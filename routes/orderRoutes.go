package routes

import (
	"github.com/Abtahee-2104089/hackathon-CUET/controllers"
	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController, authenticate gin.HandlerFunc) {
	group := server.Group("/orders")
	group.Use(authenticate)
	{
		group.POST("", middlewares.RequireStudent(), orders.CreateOrder)
		group.GET("/my-orders", middlewares.RequireStudent(), orders.GetMyOrders)
		group.GET("/vendor-orders", middlewares.RequireVendor(), orders.GetVendorOrders)
		group.GET("/:id", orders.GetOrder)
		group.PATCH("/update-status/:id", middlewares.RequireVendor(), orders.UpdateOrderStatus)
		group.PATCH("/cancel/:id", middlewares.RequireStudent(), orders.CancelOrder)
	}
}
