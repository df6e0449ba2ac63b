package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"
)

// PaymentSession carries everything SSLCommerz needs to open a hosted
// checkout page for one order.
type PaymentSession struct {
	TransactionID string
	Amount        float64
	Currency      string
	SuccessURL    string
	FailURL       string
	CancelURL     string
	ProductName   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	// OrderRef is passed through the gateway unchanged (value_a) so the
	// callbacks can be correlated with the order.
	OrderRef string
}

type InitResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

type ValidationResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"tran_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	ValidationID  string `json:"val_id"`
}

// Valid reports whether the gateway confirmed the transaction.
func (v *ValidationResponse) Valid() bool {
	return v.Status == "VALID" || v.Status == "VALIDATED"
}

// Client is the surface the payment controller depends on, so tests can
// substitute a fake gateway.
type Client interface {
	InitiatePayment(ctx context.Context, session PaymentSession) (*InitResponse, error)
	ValidateTransaction(ctx context.Context, validationID string) (*ValidationResponse, error)
}

type SSLCommerzClient struct {
	storeID       string
	storePassword string
	baseURL       string
	client        *resty.Client
}

func NewSSLCommerzClient() *SSLCommerzClient {
	baseURL := sandboxBaseURL
	if os.Getenv("SSLCOMMERZ_IS_LIVE") == "true" {
		baseURL = liveBaseURL
	}
	return &SSLCommerzClient{
		storeID:       os.Getenv("SSLCOMMERZ_STORE_ID"),
		storePassword: os.Getenv("SSLCOMMERZ_STORE_PASSWORD"),
		baseURL:       baseURL,
		client:        resty.New().SetTimeout(30 * time.Second),
	}
}

func (c *SSLCommerzClient) InitiatePayment(ctx context.Context, session PaymentSession) (*InitResponse, error) {
	if c.storeID == "" || c.storePassword == "" {
		return nil, fmt.Errorf("sslcommerz store credentials are not set")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"store_id":        c.storeID,
			"store_passwd":    c.storePassword,
			"total_amount":    fmt.Sprintf("%.2f", session.Amount),
			"currency":        session.Currency,
			"tran_id":         session.TransactionID,
			"success_url":     session.SuccessURL,
			"fail_url":        session.FailURL,
			"cancel_url":      session.CancelURL,
			"shipping_method": "NO",
			"product_name":    session.ProductName,
			"product_category": "Food",
			"product_profile": "general",
			"cus_name":        session.CustomerName,
			"cus_email":       session.CustomerEmail,
			"cus_add1":        "CUET Campus",
			"cus_city":        "Chittagong",
			"cus_country":     "Bangladesh",
			"cus_phone":       session.CustomerPhone,
			"value_a":         session.OrderRef,
		}).
		Post(c.baseURL + "/gwprocess/v4/api.php")

	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("sslcommerz session request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var initResp InitResponse
	if err := json.Unmarshal(resp.Body(), &initResp); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}
	return &initResp, nil
}

func (c *SSLCommerzClient) ValidateTransaction(ctx context.Context, validationID string) (*ValidationResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"val_id":       validationID,
			"store_id":     c.storeID,
			"store_passwd": c.storePassword,
			"format":       "json",
		}).
		Get(c.baseURL + "/validator/api/validationserverAPI.php")

	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("sslcommerz validation request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var validation ValidationResponse
	if err := json.Unmarshal(resp.Body(), &validation); err != nil {
		return nil, fmt.Errorf("failed to parse validation response: %w", err)
	}
	return &validation, nil
}
