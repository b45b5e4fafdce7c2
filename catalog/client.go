package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
)

// Client consumes the remote shop API. Every piece of data the storefront
// shows comes through here; nothing is cached or persisted locally, and a
// failed call is never retried automatically.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type productListPayload struct {
	Data []models.Product `json:"data"`
}

type productPayload struct {
	Data models.Product `json:"data"`
}

type categoryListPayload struct {
	Data []models.Category `json:"data"`
}

type orderListPayload struct {
	Data []models.Order `json:"data"`
}

type countPayload struct {
	Data int `json:"data"`
}

type loginPayload struct {
	Data struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	} `json:"data"`
}

// ListProducts fetches the product listing for a filter selection. A missing
// data array in the payload yields an empty list, never nil dereferences.
func (c *Client) ListProducts(ctx context.Context, filter FilterState) ([]models.Product, error) {
	var payload productListPayload
	if err := c.getJSON(ctx, "/products", filter.QueryValues(), &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return []models.Product{}, nil
	}
	return payload.Data, nil
}

// FeaturedProducts fetches the products flagged for the home page's primary
// carousel.
func (c *Client) FeaturedProducts(ctx context.Context) ([]models.Product, error) {
	values := url.Values{}
	values.Set("featured", "true")
	var payload productListPayload
	if err := c.getJSON(ctx, "/products", values, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return []models.Product{}, nil
	}
	return payload.Data, nil
}

// SearchProducts fetches products matching a keyword
func (c *Client) SearchProducts(ctx context.Context, keyword string) ([]models.Product, error) {
	values := url.Values{}
	values.Set("search", keyword)
	var payload productListPayload
	if err := c.getJSON(ctx, "/products", values, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return []models.Product{}, nil
	}
	return payload.Data, nil
}

// GetProduct fetches one product by its slug. A 404 from the API maps to a
// not-found error so callers can render the inline missing-product state.
func (c *Client) GetProduct(ctx context.Context, slug string) (models.Product, error) {
	var payload productPayload
	err := c.getJSON(ctx, "/products/"+url.PathEscape(slug), nil, &payload)
	if err != nil {
		return models.Product{}, err
	}
	return payload.Data, nil
}

// GetProductByID fetches one product by its numeric identifier. The products
// endpoint resolves ids the same way it resolves slugs.
func (c *Client) GetProductByID(ctx context.Context, id uint) (models.Product, error) {
	var payload productPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), nil, &payload); err != nil {
		return models.Product{}, err
	}
	return payload.Data, nil
}

// ListCategories fetches the category names used for the listing filter
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var payload categoryListPayload
	if err := c.getJSON(ctx, "/categories", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// CategoriesWithProducts fetches categories with their products embedded for
// the home page's per-category carousels.
func (c *Client) CategoriesWithProducts(ctx context.Context) ([]models.Category, error) {
	var payload categoryListPayload
	if err := c.getJSON(ctx, "/categories/with-products", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// AddToCart adds a product to the customer's cart via the remote cart API.
// The API answers 200 or 201 on success.
func (c *Client) AddToCart(ctx context.Context, userID, productID uint, quantity int) error {
	body := map[string]interface{}{
		"userId":    userID,
		"productId": productID,
		"quantity":  quantity,
	}
	resp, err := c.do(ctx, http.MethodPost, "/carts/add", nil, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.statusError(resp)
	}
	return nil
}

// CartCount fetches the cart badge value for a user. Cart count is shared
// across pages and is always pulled fresh after any cart mutation.
func (c *Client) CartCount(ctx context.Context, userID uint) (int, error) {
	var payload countPayload
	path := fmt.Sprintf("/carts/user/%d/count", userID)
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return 0, err
	}
	return payload.Data, nil
}

// UserOrders fetches a user's full order history with items embedded
func (c *Client) UserOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var payload orderListPayload
	path := fmt.Sprintf("/orders/user/%d/details", userID)
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return []models.Order{}, nil
	}
	return payload.Data, nil
}

// Login forwards credentials to the remote auth endpoint and returns the
// authenticated user plus their API token.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body)
	if err != nil {
		return models.User{}, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return models.User{}, "", utils.UnauthorizedError("Invalid email or password", nil)
	}
	if resp.StatusCode != http.StatusOK {
		return models.User{}, "", c.statusError(resp)
	}
	var payload loginPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.User{}, "", utils.UpstreamError("Malformed login response", err)
	}
	return payload.Data.User, payload.Data.Token, nil
}

// getJSON performs a GET and decodes the JSON payload into out
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return utils.NotFoundError("Resource not found", nil)
	}
	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return utils.UpstreamError("Malformed API response", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, utils.WrapError(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, utils.WrapError(err, "failed to build API request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, utils.UpstreamError("Shop API unreachable", err)
	}
	return resp, nil
}

func (c *Client) statusError(resp *http.Response) error {
	return utils.UpstreamError(
		fmt.Sprintf("Shop API returned %d for %s", resp.StatusCode, resp.Request.URL.Path),
		nil,
	)
}
