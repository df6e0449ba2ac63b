package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the CUET Campus Eats API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create user account
- POST "/auth/login" - Access user account
- GET "/auth/me" - Get the authenticated user

VENDORS
- GET "/vendors" - Browse open vendors
- GET "/vendors/{id}" - Get vendor by ID
- GET "/vendors/profile/me" - Get own vendor profile
- PUT "/vendors/profile" - Update own vendor profile
- PATCH "/vendors/toggle-availability" - Open or close the storefront

MENU
- GET "/menu/vendor/{vendorId}" - Browse a vendor's available items
- GET "/menu/my-menu" - Get own menu
- POST "/menu" - Add a menu item
- PUT "/menu/{id}" - Update a menu item
- DELETE "/menu/{id}" - Delete a menu item
- PATCH "/menu/toggle-availability/{id}" - Toggle item availability
- POST "/menu/upload-image" - Upload menu item images

ORDERS
- POST "/orders" - Place an order
- GET "/orders/my-orders" - Get own orders
- GET "/orders/vendor-orders" - Get orders for own storefront
- GET "/orders/{id}" - Get order by ID
- PATCH "/orders/update-status/{id}" - Move an order along the workflow
- PATCH "/orders/cancel/{id}" - Cancel a pending order

PAYMENTS
- POST "/payments/process/{orderId}" - Start a checkout session
- POST "/payments/success" - Gateway success callback
- POST "/payments/fail" - Gateway failure callback
- POST "/payments/cancel" - Gateway cancel callback`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "Server is running"})
}
