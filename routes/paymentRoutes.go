package routes

import (
	"github.com/Abtahee-2104089/hackathon-CUET/controllers"
	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/gin-gonic/gin"
)

func PaymentRoutes(server *gin.Engine, payments *controllers.PaymentController, authenticate gin.HandlerFunc) {
	group := server.Group("/payments")
	{
		group.POST("/process/:orderId", authenticate, middlewares.RequireStudent(), payments.ProcessPayment)

		// Gateway callbacks arrive from SSLCommerz, not from a logged-in
		// client, so they carry no bearer token.
		group.POST("/success", payments.PaymentSuccess)
		group.POST("/fail", payments.PaymentFail)
		group.POST("/cancel", payments.PaymentCancel)
	}
}
