package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"stylestore/internal/model"
)

// DefaultProbeTimeout bounds the reachability probe; a probe slower than this
// counts as unavailable.
const DefaultProbeTimeout = 2 * time.Second

// RemoteSource implements Source against the storefront HTTP API.
type RemoteSource struct {
	baseURL     string
	client      *http.Client
	probeClient *http.Client
	logger      zerolog.Logger
}

// NewRemoteSource creates a remote source for the API rooted at baseURL
// (e.g. "http://localhost:5000/api"). A nil client uses http.DefaultClient.
func NewRemoteSource(baseURL string, client *http.Client, logger zerolog.Logger) *RemoteSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteSource{
		baseURL:     baseURL,
		client:      client,
		probeClient: &http.Client{Timeout: DefaultProbeTimeout},
		logger:      logger.With().Str("component", "remote-source").Logger(),
	}
}

// Available probes the products endpoint with a HEAD request. Any failure,
// including a non-success status, reads as unavailable.
func (r *RemoteSource) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, r.baseURL+"/products", nil)
	if err != nil {
		return false
	}

	resp, err := r.probeClient.Do(req)
	if err != nil {
		r.logger.Debug().Err(err).Msg("reachability probe failed")
		return false
	}
	resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Products returns every product from the remote API.
func (r *RemoteSource) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID returns the product with the given id.
func (r *RemoteSource) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	if err := r.get(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductsByCategory returns the products in the given category.
func (r *RemoteSource) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	if err := r.get(ctx, "/products/category/"+url.PathEscape(category), &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FeaturedProducts returns the featured products.
func (r *RemoteSource) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.get(ctx, "/featured-products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Orders returns every order from the remote API.
func (r *RemoteSource) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderByID returns the order with the given id.
func (r *RemoteSource) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := r.get(ctx, "/orders/"+url.PathEscape(id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder submits the line items, a locally computed total and the
// customer details and returns the order the server created.
func (r *RemoteSource) CreateOrder(ctx context.Context, items []model.CartItem, customer model.CustomerDetails) (*model.Order, error) {
	payload := model.OrderRequest{
		Items:           items,
		Total:           model.OrderTotal(items),
		CustomerDetails: customer,
	}

	var order model.Order
	if err := r.send(ctx, http.MethodPost, "/orders", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus submits a status change for the given order and returns
// the updated order.
func (r *RemoteSource) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	payload := model.StatusRequest{Status: status}

	var order model.Order
	if err := r.send(ctx, http.MethodPut, "/orders/"+url.PathEscape(id)+"/status", payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// get issues a GET request and decodes the JSON response into out.
func (r *RemoteSource) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	return r.do(req, out)
}

// send issues a request with a JSON body and decodes the JSON response into
// out.
func (r *RemoteSource) send(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return r.do(req, out)
}

func (r *RemoteSource) do(req *http.Request, out any) error {
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request to %s returned status %d", req.URL.Path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}
