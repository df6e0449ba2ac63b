package main

import (
	"os"
	"time"

	"github.com/Abtahee-2104089/hackathon-CUET/controllers"
	"github.com/Abtahee-2104089/hackathon-CUET/gateway"
	"github.com/Abtahee-2104089/hackathon-CUET/initializers"
	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/Abtahee-2104089/hackathon-CUET/routes"
	"github.com/Abtahee-2104089/hackathon-CUET/stores"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
}

func main() {
	server := gin.Default()
	server.Use(middlewares.RequestID())

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	userStore := stores.NewMongoUserStore(initializers.DB)
	vendorStore := stores.NewMongoVendorStore(initializers.DB)
	menuStore := stores.NewMongoMenuStore(initializers.DB)
	orderStore := stores.NewMongoOrderStore(initializers.DB)

	paymentGateway := gateway.NewSSLCommerzClient()

	authController := controllers.NewAuthController(userStore, vendorStore)
	vendorController := controllers.NewVendorController(vendorStore)
	menuController := controllers.NewMenuController(menuStore, vendorStore)
	orderController := controllers.NewOrderController(orderStore, menuStore, vendorStore)
	paymentController := controllers.NewPaymentController(orderStore, vendorStore, paymentGateway)

	authenticate := middlewares.Authenticate(userStore)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, authController, authenticate)
	routes.VendorRoutes(server, vendorController, authenticate)
	routes.MenuRoutes(server, menuController, authenticate)
	routes.OrderRoutes(server, orderController, authenticate)
	routes.PaymentRoutes(server, paymentController, authenticate)

	server.Run()
}
