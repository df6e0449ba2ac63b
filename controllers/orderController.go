package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"github.com/Abtahee-2104089/hackathon-CUET/stores"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgOrderNotFound       = "Order not found"
	msgVendorClosed        = "This vendor is currently closed"
	msgInvalidQuantity     = "Invalid quantity"
	msgOrderNotYours       = "Not authorized to view this order"
	msgOrderUpdateDenied   = "Not authorized to update this order"
	msgOrderCancelDenied   = "Not authorized to cancel this order"
	msgOrderNotCancellable = "Cannot cancel order. Order is already being processed"
)

type OrderController struct {
	orders  stores.OrderStore
	menu    stores.MenuStore
	vendors stores.VendorStore
}

func NewOrderController(orders stores.OrderStore, menu stores.MenuStore, vendors stores.VendorStore) *OrderController {
	return &OrderController{orders: orders, menu: menu, vendors: vendors}
}

type CreateOrderItem struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity"`
}

type CreateOrderData struct {
	VendorID            string            `json:"vendorId" binding:"required"`
	Items               []CreateOrderItem `json:"items" binding:"required,min=1"`
	SpecialInstructions string            `json:"specialInstructions"`
}

// CreateOrder validates the cart against the vendor's live menu and
// persists the order with a snapshot of names and prices, so later menu
// edits never alter historical orders.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var orderData CreateOrderData
	if err := ctx.ShouldBindJSON(&orderData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Vendor ID and at least one item are required")
		return
	}

	vendorID, err := primitive.ObjectIDFromHex(orderData.VendorID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	vendor, err := oc.vendors.GetByID(ctx.Request.Context(), vendorID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgVendorNotFound)
		return
	}

	if !vendor.IsOpen {
		sendErrorResponse(ctx, http.StatusBadRequest, msgVendorClosed)
		return
	}

	var orderItems []models.OrderItem
	var totalAmount float64

	for _, item := range orderData.Items {
		menuItemID, err := primitive.ObjectIDFromHex(item.MenuItemID)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menu item ID")
			return
		}

		menuItem, err := oc.menu.GetByID(ctx.Request.Context(), menuItemID)
		if err != nil {
			sendErrorResponse(ctx, http.StatusNotFound, fmt.Sprintf("Menu item with ID %s not found", item.MenuItemID))
			return
		}

		if !menuItem.IsAvailable {
			sendErrorResponse(ctx, http.StatusBadRequest, fmt.Sprintf("%s is currently unavailable", menuItem.Name))
			return
		}

		if item.Quantity < 1 {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidQuantity)
			return
		}

		subtotal := menuItem.Price * float64(item.Quantity)
		totalAmount += subtotal

		orderItems = append(orderItems, models.OrderItem{
			MenuItem: menuItem.ID,
			Name:     menuItem.Name,
			Price:    menuItem.Price,
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
	}

	user, _ := middlewares.CurrentUser(ctx)

	order := models.Order{
		User:                user.ID,
		Vendor:              vendor.ID,
		Items:               orderItems,
		TotalAmount:         totalAmount,
		PaymentStatus:       models.PaymentPending,
		PaymentMethod:       models.PaymentMethodOnline,
		SpecialInstructions: orderData.SpecialInstructions,
	}
	order.AppendStatus(models.OrderPending)

	if err := oc.orders.Create(ctx.Request.Context(), &order); err != nil {
		log.Println("Create order error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order": gin.H{
			"id":          order.ID.Hex(),
			"totalAmount": order.TotalAmount,
			"status":      order.Status,
			"items":       order.Items,
		},
	})
}

// GetMyOrders returns the buyer's own orders, newest first.
func (oc *OrderController) GetMyOrders(ctx *gin.Context) {
	user, _ := middlewares.CurrentUser(ctx)

	orders, err := oc.orders.ListByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		log.Println("Get student orders error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetVendorOrders returns the orders addressed to the caller's vendor
// profile, optionally filtered by a valid status.
func (oc *OrderController) GetVendorOrders(ctx *gin.Context) {
	user, _ := middlewares.CurrentUser(ctx)

	vendor, err := oc.vendors.GetByUserID(ctx.Request.Context(), user.ID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgVendorProfileNotFound)
		return
	}

	status := ctx.Query("status")
	if !models.ValidOrderStatus(status) {
		status = ""
	}

	orders, err := oc.orders.ListByVendor(ctx.Request.Context(), vendor.ID, status)
	if err != nil {
		log.Println("Get vendor orders error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order to its buyer, its vendor, or an admin.
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := oc.orders.GetByID(ctx.Request.Context(), orderID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	user, _ := middlewares.CurrentUser(ctx)

	isOwner := order.User == user.ID
	isAdmin := user.Role == models.RoleAdmin
	isOrderVendor := false
	if user.Role == models.RoleVendor {
		if vendor, err := oc.vendors.GetByUserID(ctx.Request.Context(), user.ID); err == nil {
			isOrderVendor = vendor.ID == order.Vendor
		}
	}

	if !isOwner && !isOrderVendor && !isAdmin {
		sendErrorResponse(ctx, http.StatusForbidden, msgOrderNotYours)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

type UpdateStatusData struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order along the vendor workflow. Illegal
// transitions are rejected.
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var statusData UpdateStatusData
	if err := ctx.ShouldBindJSON(&statusData); err != nil || !models.ValidOrderStatus(statusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Valid status is required")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	user, _ := middlewares.CurrentUser(ctx)

	vendor, err := oc.vendors.GetByUserID(ctx.Request.Context(), user.ID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgVendorProfileNotFound)
		return
	}

	order, err := oc.orders.GetByID(ctx.Request.Context(), orderID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	if order.Vendor != vendor.ID {
		sendErrorResponse(ctx, http.StatusForbidden, msgOrderUpdateDenied)
		return
	}

	if !models.CanTransition(order.Status, statusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("Cannot change order status from %s to %s", order.Status, statusData.Status))
		return
	}

	order.AppendStatus(statusData.Status)
	entry := order.StatusHistory[len(order.StatusHistory)-1]

	if err := oc.orders.UpdateStatus(ctx.Request.Context(), order.ID, order.Status, entry); err != nil {
		log.Println("Update order status error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"status":  order.Status,
	})
}

// CancelOrder lets the buyer cancel an order that has not yet been
// picked up by the vendor.
func (oc *OrderController) CancelOrder(ctx *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := oc.orders.GetByID(ctx.Request.Context(), orderID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	user, _ := middlewares.CurrentUser(ctx)
	if order.User != user.ID {
		sendErrorResponse(ctx, http.StatusForbidden, msgOrderCancelDenied)
		return
	}

	if order.Status != models.OrderPending {
		sendErrorResponse(ctx, http.StatusBadRequest, msgOrderNotCancellable)
		return
	}

	order.AppendStatus(models.OrderCancelled)
	entry := order.StatusHistory[len(order.StatusHistory)-1]

	if err := oc.orders.UpdateStatus(ctx.Request.Context(), order.ID, order.Status, entry); err != nil {
		log.Println("Cancel order error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"status":  order.Status,
	})
}
