package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Abtahee-2104089/hackathon-CUET/gateway"
	"github.com/Abtahee-2104089/hackathon-CUET/middlewares"
	"github.com/Abtahee-2104089/hackathon-CUET/models"
	"github.com/Abtahee-2104089/hackathon-CUET/stores"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgOrderAlreadyPaid    = "This order is already paid"
	msgPaymentNotYours     = "Not authorized to pay for this order"
	msgInvalidPaymentData  = "Invalid payment data"
	msgPaymentInitFailed   = "Payment initialization failed"
	msgGatewayUnreachable  = "Failed to reach payment gateway"
	msgValidationFailed    = "Payment validation failed"
	defaultCustomerPhone   = "01700000000"
)

type PaymentController struct {
	orders  stores.OrderStore
	vendors stores.VendorStore
	gateway gateway.Client
}

func NewPaymentController(orders stores.OrderStore, vendors stores.VendorStore, gw gateway.Client) *PaymentController {
	return &PaymentController{orders: orders, vendors: vendors, gateway: gw}
}

// ProcessPayment opens a gateway checkout session for an unpaid order.
// The transaction reference is persisted on the order before the
// redirect URL is returned, so a later callback can be correlated even
// if the client never comes back.
func (pc *PaymentController) ProcessPayment(ctx *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := pc.orders.GetByID(ctx.Request.Context(), orderID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	user, _ := middlewares.CurrentUser(ctx)
	if order.User != user.ID {
		sendErrorResponse(ctx, http.StatusForbidden, msgPaymentNotYours)
		return
	}

	if order.PaymentStatus == models.PaymentPaid {
		sendErrorResponse(ctx, http.StatusBadRequest, msgOrderAlreadyPaid)
		return
	}

	// Order id plus timestamp keeps the reference unique across retries.
	transactionID := fmt.Sprintf("SCORDER-%s-%d", order.ID.Hex(), time.Now().UnixMilli())

	if err := pc.orders.SetPaymentID(ctx.Request.Context(), order.ID, transactionID); err != nil {
		log.Println("Failed to save transaction reference:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	productName := "Campus Eats order"
	if vendor, err := pc.vendors.GetByID(ctx.Request.Context(), order.Vendor); err == nil {
		productName = fmt.Sprintf("Order from %s", vendor.Name)
	}

	phone := user.Phone
	if phone == "" {
		phone = defaultCustomerPhone
	}

	clientURL := os.Getenv("CLIENT_URL")
	session := gateway.PaymentSession{
		TransactionID: transactionID,
		Amount:        order.TotalAmount,
		Currency:      "BDT",
		SuccessURL:    fmt.Sprintf("%s/payment/success/%s", clientURL, order.ID.Hex()),
		FailURL:       fmt.Sprintf("%s/payment/fail/%s", clientURL, order.ID.Hex()),
		CancelURL:     fmt.Sprintf("%s/payment/cancel/%s", clientURL, order.ID.Hex()),
		ProductName:   productName,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		CustomerPhone: phone,
		OrderRef:      order.ID.Hex(),
	}

	initResp, err := pc.gateway.InitiatePayment(ctx.Request.Context(), session)
	if err != nil {
		log.Println("Payment initiation error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgGatewayUnreachable)
		return
	}

	if initResp.GatewayPageURL == "" {
		log.Println("Payment initialization failed:", initResp.FailedReason)
		sendErrorResponse(ctx, http.StatusBadRequest, msgPaymentInitFailed)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"url": initResp.GatewayPageURL})
}

type PaymentCallbackData struct {
	ValidationID  string `json:"val_id" form:"val_id"`
	TransactionID string `json:"tran_id" form:"tran_id"`
	OrderRef      string `json:"value_a" form:"value_a"`
}

// PaymentSuccess handles the gateway success callback. The transaction
// is re-validated server-to-server before the order is marked paid; the
// callback alone is never trusted. Marking an already-paid order paid
// again is a no-op, so replays are harmless.
func (pc *PaymentController) PaymentSuccess(ctx *gin.Context) {
	var callbackData PaymentCallbackData
	if err := ctx.ShouldBind(&callbackData); err != nil ||
		callbackData.ValidationID == "" || callbackData.TransactionID == "" || callbackData.OrderRef == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidPaymentData)
		return
	}

	validation, err := pc.gateway.ValidateTransaction(ctx.Request.Context(), callbackData.ValidationID)
	if err != nil {
		log.Println("Payment validation error:", err)
		sendErrorResponse(ctx, http.StatusBadGateway, msgGatewayUnreachable)
		return
	}

	if !validation.Valid() {
		sendErrorResponse(ctx, http.StatusBadRequest, msgValidationFailed)
		return
	}

	orderID, err := primitive.ObjectIDFromHex(callbackData.OrderRef)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidPaymentData)
		return
	}

	order, err := pc.orders.GetByID(ctx.Request.Context(), orderID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	if err := pc.orders.SetPaymentStatus(ctx.Request.Context(), order.ID, models.PaymentPaid); err != nil {
		log.Println("Failed to update payment status:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment successful",
		"orderId": order.ID.Hex(),
	})
}

// PaymentFail marks the correlated order's payment as failed. The
// gateway reports failures directly, so no re-validation happens here.
func (pc *PaymentController) PaymentFail(ctx *gin.Context) {
	var callbackData PaymentCallbackData
	if err := ctx.ShouldBind(&callbackData); err != nil ||
		callbackData.TransactionID == "" || callbackData.OrderRef == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidPaymentData)
		return
	}

	orderID, err := primitive.ObjectIDFromHex(callbackData.OrderRef)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidPaymentData)
		return
	}

	order, err := pc.orders.GetByID(ctx.Request.Context(), orderID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	if err := pc.orders.SetPaymentStatus(ctx.Request.Context(), order.ID, models.PaymentFailed); err != nil {
		log.Println("Failed to update payment status:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment failed",
		"orderId": order.ID.Hex(),
	})
}

// PaymentCancel acknowledges a cancelled checkout without touching the
// order.
func (pc *PaymentController) PaymentCancel(ctx *gin.Context) {
	var callbackData PaymentCallbackData
	if err := ctx.ShouldBind(&callbackData); err != nil ||
		callbackData.TransactionID == "" || callbackData.OrderRef == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidPaymentData)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Payment cancelled",
		"orderId": callbackData.OrderRef,
	})
}
