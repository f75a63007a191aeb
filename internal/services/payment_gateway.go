package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// PaymentGateway opens hosted payment sessions with an external provider
// and reports their settlement status.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*PaymentOrder, error)
	FetchOrder(ctx context.Context, orderID string) (*PaymentOrder, error)
}

type CreateOrderInput struct {
	OrderID       string
	Amount        float64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type PaymentOrder struct {
	OrderID          string `json:"order_id"`
	CFOrderID        string `json:"cf_order_id"`
	PaymentSessionID string `json:"payment_session_id"`
	OrderStatus      string `json:"order_status"`
}

const cashfreeAPIVersion = "2023-08-01"

// OrderStatusPaid is the gateway status that settles an order successfully.
const OrderStatusPaid = "PAID"

type CashfreeGateway struct {
	baseURL    string
	appID      string
	secretKey  string
	returnBase string
	httpClient *http.Client
}

func NewCashfreeGateway(baseURL, appID, secretKey, returnBase string) *CashfreeGateway {
	return &CashfreeGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		appID:      appID,
		secretKey:  secretKey,
		returnBase: strings.TrimRight(returnBase, "/"),
		httpClient: http.DefaultClient,
	}
}

var customerIDSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

func (g *CashfreeGateway) CreateOrder(ctx context.Context, input CreateOrderInput) (*PaymentOrder, error) {
	payload := map[string]any{
		"order_id":       input.OrderID,
		"order_amount":   input.Amount,
		"order_currency": "INR",
		"customer_details": map[string]any{
			"customer_id":    customerIDSanitizer.ReplaceAllString(input.CustomerEmail, "_"),
			"customer_name":  input.CustomerName,
			"customer_email": input.CustomerEmail,
			"customer_phone": input.CustomerPhone,
		},
		"order_meta": map[string]any{
			"return_url": g.returnBase + "/booking/success?order_id={order_id}",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/pg/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	g.setHeaders(req)

	return g.do(req, "create order")
}

func (g *CashfreeGateway) FetchOrder(ctx context.Context, orderID string) (*PaymentOrder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/pg/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}
	g.setHeaders(req)

	return g.do(req, "fetch order")
}

func (g *CashfreeGateway) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", cashfreeAPIVersion)
	req.Header.Set("x-client-id", g.appID)
	req.Header.Set("x-client-secret", g.secretKey)
}

func (g *CashfreeGateway) do(req *http.Request, action string) (*PaymentOrder, error) {
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("%s: gateway returned %d: %s", action, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var order PaymentOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", action, err)
	}
	return &order, nil
}
