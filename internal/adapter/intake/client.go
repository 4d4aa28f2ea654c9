package intake

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"path"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ErrOrderUnknown indicates the intake system doesn't know the order yet.
var ErrOrderUnknown = errors.New("order unknown to intake")

// ErrReturnUnknown indicates the intake system doesn't know the return request.
var ErrReturnUnknown = errors.New("return unknown to intake")

// Failure is a submission rejection reported by the intake system. The code
// is stable and machine-readable; the message is for operators.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return fmt.Sprintf("intake rejected submission: %s (%s)", e.Code, e.Message)
}

// Client exposes operations against the order intake system.
type Client interface {
	Submit(ctx context.Context, userID int64, payload model.OrderPayload) (*model.Order, error)
	OrderStatus(ctx context.Context, number string) (*model.OrderStatusUpdate, error)
	ReturnStatus(ctx context.Context, id string) (*model.ReturnStatusUpdate, error)
}

// HTTPClient implements Client via the intake HTTP API. Outbound calls share
// a token-bucket limiter so the refresh worker cannot starve submissions.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type submitRequest struct {
	UserID  int64              `json:"user_id"`
	Payload model.OrderPayload `json:"payload"`
}

type orderResponse struct {
	Number      string     `json:"number"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

type returnResponse struct {
	ID              string    `json:"id"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewHTTPClient creates an intake client with a default timeout and the
// given requests-per-second budget. Fractional budgets are allowed; the
// burst rounds up so a sub-1 rps limiter still admits a request.
func NewHTTPClient(baseURL string, rps float64, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse intake url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("intake url must be absolute")
	}
	if rps <= 0 {
		rps = 1
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(rps), max(1, int(math.Ceil(rps)))),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Submit dispatches an assembled order payload. A 2xx answer yields the
// created order; a 422 carries a structured Failure.
func (c *HTTPClient) Submit(ctx context.Context, userID int64, payload model.OrderPayload) (*model.Order, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(submitRequest{UserID: userID, Payload: payload})
	if err != nil {
		return nil, err
	}

	endpoint := c.endpoint("/api/orders")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		var data orderResponse
		if err := decode(resp.Body, &data); err != nil {
			return nil, err
		}
		order := &model.Order{
			UserID:          userID,
			Number:          data.Number,
			Status:          model.OrderStatus(data.Status),
			ShippingCarrier: payload.Carrier,
			Subtotal:        payload.Subtotal,
			Discount:        payload.Discount,
			Tax:             payload.Tax,
			Total:           payload.Total,
			CreatedAt:       data.CreatedAt,
			UpdatedAt:       data.UpdatedAt,
			CancelledAt:     data.CancelledAt,
		}
		for _, item := range payload.Items {
			order.Items = append(order.Items, model.OrderItem{
				ProductID: item.ProductID,
				VariantID: item.VariantID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			})
		}
		return order, nil
	case http.StatusUnprocessableEntity:
		var failure Failure
		if err := decode(resp.Body, &failure); err != nil {
			return nil, err
		}
		return nil, &failure
	default:
		return nil, c.unexpected("submit", resp)
	}
}

// OrderStatus queries the intake system for the current state of an order.
func (c *HTTPClient) OrderStatus(ctx context.Context, number string) (*model.OrderStatusUpdate, error) {
	resp, err := c.get(ctx, "/api/orders", number)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data orderResponse
		if err := decode(resp.Body, &data); err != nil {
			return nil, err
		}
		return &model.OrderStatusUpdate{
			Number:      data.Number,
			Status:      model.OrderStatus(data.Status),
			UpdatedAt:   data.UpdatedAt,
			CancelledAt: data.CancelledAt,
		}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, ErrOrderUnknown
	default:
		return nil, c.unexpected("order status", resp)
	}
}

// ReturnStatus queries the intake system for the current state of a return.
func (c *HTTPClient) ReturnStatus(ctx context.Context, id string) (*model.ReturnStatusUpdate, error) {
	resp, err := c.get(ctx, "/api/returns", id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data returnResponse
		if err := decode(resp.Body, &data); err != nil {
			return nil, err
		}
		return &model.ReturnStatusUpdate{
			ID:              data.ID,
			Status:          model.ReturnStatus(data.Status),
			RejectionReason: data.RejectionReason,
			UpdatedAt:       data.UpdatedAt,
		}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, ErrReturnUnknown
	default:
		return nil, c.unexpected("return status", resp)
	}
}

func (c *HTTPClient) get(ctx context.Context, base, id string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path.Join(base, id)), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

func (c *HTTPClient) endpoint(p string) string {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)
	return endpoint.String()
}

func (c *HTTPClient) unexpected(op string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	c.logger.Error("intake request failed",
		slog.String("op", op),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)))
	return fmt.Errorf("intake error: %s", resp.Status)
}

func decode(r io.Reader, dst any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}
